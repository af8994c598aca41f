package domain

import "time"

// Session is the authenticated state of the application: one opaque access
// token and the login it was issued for. Presence of a session implies
// authenticated; absence implies unauthenticated. There is no expiry
// tracking; a session lives until explicit logout.
type Session struct {
	// ID is the session row identifier.
	ID string

	// Token is the opaque OAuth access token.
	Token string

	// Login is the GitHub username the token belongs to.
	Login string

	// CreatedAt is when the token was obtained.
	CreatedAt time.Time
}

// Authenticated reports whether the session carries a usable token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}
