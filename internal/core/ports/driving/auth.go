package driving

import (
	"context"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
)

// AuthService manages the OAuth login flow and the stored session.
type AuthService interface {
	// AuthorizeURL builds the provider authorization URL for the given
	// redirect URI, CSRF state, and PKCE challenge.
	AuthorizeURL(redirectURI, state, codeChallenge string) string

	// ExchangeCode trades an authorization code for a token, resolves the
	// token's owner, persists the session, and returns it. On failure
	// nothing is persisted and the application stays unauthenticated.
	ExchangeCode(ctx context.Context, code, redirectURI, codeVerifier string) (*domain.Session, error)

	// Session returns the stored session, or domain.ErrNoSession.
	Session(ctx context.Context) (*domain.Session, error)

	// CurrentUser fetches the authenticated user's profile. When no
	// session is stored it returns domain.ErrNotAuthenticated without
	// issuing a network call.
	CurrentUser(ctx context.Context) (*domain.User, error)

	// Logout destroys the stored session.
	Logout(ctx context.Context) error
}
