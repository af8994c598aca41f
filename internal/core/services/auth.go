package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driving"
	"github.com/oatfield-labs/octoview-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// GitHub OAuth constants.
const (
	// DefaultAuthURL is the GitHub authorization endpoint.
	DefaultAuthURL = "https://github.com/login/oauth/authorize"
)

// defaultScopes are the OAuth scopes requested on login.
var defaultScopes = []string{"repo", "read:user"}

// UserReaderFactory builds a UserReader for a freshly obtained token. The
// auth service uses it to resolve the token's owner right after exchange,
// before any client has been wired for the new session.
type UserReaderFactory func(token string) driven.UserReader

// AuthService implements the login flow: authorize URL construction, the
// one-shot code exchange, session persistence, and logout. It holds no
// global mutable auth flag; the stored session is the single source of
// truth, read on demand. The OAuth app client ID is read from config at
// call time so a login that has just configured it sees the new value.
type AuthService struct {
	config    driven.ConfigStore
	exchanger driven.CodeExchanger
	sessions  driven.SessionStore
	users     UserReaderFactory

	authURL string
	scopes  []string
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithAuthURL overrides the authorization endpoint (tests, GitHub Enterprise).
func WithAuthURL(u string) AuthOption {
	return func(s *AuthService) { s.authURL = u }
}

// WithScopes overrides the requested OAuth scopes.
func WithScopes(scopes []string) AuthOption {
	return func(s *AuthService) { s.scopes = scopes }
}

// NewAuthService creates an auth service.
func NewAuthService(
	config driven.ConfigStore,
	exchanger driven.CodeExchanger,
	sessions driven.SessionStore,
	users UserReaderFactory,
	opts ...AuthOption,
) *AuthService {
	s := &AuthService{
		config:    config,
		exchanger: exchanger,
		sessions:  sessions,
		users:     users,
		authURL:   DefaultAuthURL,
		scopes:    defaultScopes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AuthorizeURL constructs the GitHub OAuth authorization URL.
func (s *AuthService) AuthorizeURL(redirectURI, state, codeChallenge string) string {
	params := url.Values{
		"client_id":    {s.config.GetString(driven.ConfigClientID)},
		"redirect_uri": {redirectURI},
		"scope":        {strings.Join(s.scopes, " ")},
		"state":        {state},
	}
	if codeChallenge != "" {
		params.Set("code_challenge", codeChallenge)
		params.Set("code_challenge_method", "S256")
	}
	return s.authURL + "?" + params.Encode()
}

// ExchangeCode trades the authorization code for a token, resolves its
// owner, and persists the session. Any failure leaves the stored state
// untouched and the application unauthenticated.
func (s *AuthService) ExchangeCode(ctx context.Context, code, redirectURI, codeVerifier string) (*domain.Session, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}

	token, err := s.exchanger.ExchangeCode(ctx, code, redirectURI, codeVerifier)
	if err != nil {
		return nil, err
	}

	login := ""
	if s.users != nil {
		user, err := s.users(token).GetAuthenticatedUser(ctx)
		if err != nil {
			// Token works but the profile fetch failed; keep the session
			// usable and fill the login in lazily via CurrentUser.
			logger.Warn("resolve token owner: %v", err)
		} else {
			login = user.Login
		}
	}

	session := domain.Session{
		ID:        uuid.NewString(),
		Token:     token,
		Login:     login,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("logged in as %s", login)
	return &session, nil
}

// Session returns the stored session.
func (s *AuthService) Session(ctx context.Context) (*domain.Session, error) {
	return s.sessions.Get(ctx)
}

// CurrentUser fetches the authenticated user's profile. With no stored
// session it short-circuits to domain.ErrNotAuthenticated; no request is
// issued.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil || !session.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return s.users(session.Token).GetAuthenticatedUser(ctx)
}

// Logout destroys the stored session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Delete(ctx)
}
