package services

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oatfield-labs/octoview-cli/internal/adapters/driven/storage/memory"
	"github.com/oatfield-labs/octoview-cli/internal/core/domain"
	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
)

type fakeExchanger struct {
	token string
	err   error

	gotCode     string
	gotRedirect string
	gotVerifier string
}

func (f *fakeExchanger) ExchangeCode(_ context.Context, code, redirectURI, codeVerifier string) (string, error) {
	f.gotCode = code
	f.gotRedirect = redirectURI
	f.gotVerifier = codeVerifier
	return f.token, f.err
}

type fakeUserReader struct {
	user *domain.User
	err  error
}

func (f *fakeUserReader) GetUser(_ context.Context, _ string) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserReader) GetAuthenticatedUser(_ context.Context) (*domain.User, error) {
	return f.user, f.err
}

func newTestAuth(t *testing.T, exchanger driven.CodeExchanger, sessions driven.SessionStore, users UserReaderFactory) *AuthService {
	t.Helper()
	config := memory.NewConfigStore()
	require.NoError(t, config.Set(driven.ConfigClientID, "client-abc"))
	return NewAuthService(config, exchanger, sessions, users)
}

func TestAuthService_AuthorizeURL(t *testing.T) {
	svc := newTestAuth(t, &fakeExchanger{}, memory.NewSessionStore(), nil)

	raw := svc.AuthorizeURL("http://localhost:8137/callback", "state-123", "challenge-xyz")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "github.com", u.Host)
	assert.Equal(t, "/login/oauth/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "client-abc", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8137/callback", q.Get("redirect_uri"))
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "repo read:user", q.Get("scope"))
	assert.Equal(t, "challenge-xyz", q.Get("code_challenge"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
}

func TestAuthService_AuthorizeURL_WithoutPKCE(t *testing.T) {
	svc := newTestAuth(t, &fakeExchanger{}, memory.NewSessionStore(), nil)

	raw := svc.AuthorizeURL("http://localhost:8137/callback", "state-123", "")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Empty(t, u.Query().Get("code_challenge"))
	assert.Empty(t, u.Query().Get("code_challenge_method"))
}

func TestAuthService_ExchangeCode_PersistsSession(t *testing.T) {
	exchanger := &fakeExchanger{token: "gho_token"}
	sessions := memory.NewSessionStore()
	svc := newTestAuth(t, exchanger, sessions, func(token string) driven.UserReader {
		assert.Equal(t, "gho_token", token)
		return &fakeUserReader{user: &domain.User{Login: "octocat"}}
	})

	session, err := svc.ExchangeCode(context.Background(), "the-code", "http://localhost:1/cb", "verifier")

	require.NoError(t, err)
	assert.Equal(t, "gho_token", session.Token)
	assert.Equal(t, "octocat", session.Login)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "the-code", exchanger.gotCode)
	assert.Equal(t, "http://localhost:1/cb", exchanger.gotRedirect)
	assert.Equal(t, "verifier", exchanger.gotVerifier)

	stored, err := sessions.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gho_token", stored.Token)
	assert.Equal(t, "octocat", stored.Login)
}

func TestAuthService_ExchangeCode_EmptyCode(t *testing.T) {
	svc := newTestAuth(t, &fakeExchanger{}, memory.NewSessionStore(), nil)

	_, err := svc.ExchangeCode(context.Background(), "", "uri", "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuthService_ExchangeCode_FailureLeavesNoSession(t *testing.T) {
	sessions := memory.NewSessionStore()
	svc := newTestAuth(t, &fakeExchanger{err: errors.New("bad_verification_code")}, sessions, nil)

	_, err := svc.ExchangeCode(context.Background(), "expired", "uri", "")

	require.Error(t, err)
	_, err = sessions.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestAuthService_ExchangeCode_ProfileFailureKeepsSession(t *testing.T) {
	sessions := memory.NewSessionStore()
	svc := newTestAuth(t, &fakeExchanger{token: "gho_token"}, sessions, func(string) driven.UserReader {
		return &fakeUserReader{err: errors.New("503")}
	})

	session, err := svc.ExchangeCode(context.Background(), "the-code", "uri", "")

	require.NoError(t, err)
	assert.Equal(t, "gho_token", session.Token)
	assert.Empty(t, session.Login)

	stored, err := sessions.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gho_token", stored.Token)
}

func TestAuthService_CurrentUser_ShortCircuitsWithoutSession(t *testing.T) {
	svc := newTestAuth(t, &fakeExchanger{}, memory.NewSessionStore(), func(string) driven.UserReader {
		t.Fatal("no request may be issued without a session")
		return nil
	})

	_, err := svc.CurrentUser(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestAuthService_CurrentUser_UsesStoredToken(t *testing.T) {
	sessions := memory.NewSessionStore()
	require.NoError(t, sessions.Save(context.Background(), domain.Session{ID: "s1", Token: "gho_stored", Login: "octocat"}))

	var seenToken string
	svc := newTestAuth(t, &fakeExchanger{}, sessions, func(token string) driven.UserReader {
		seenToken = token
		return &fakeUserReader{user: &domain.User{Login: "octocat", Name: "The Octocat"}}
	})

	user, err := svc.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "gho_stored", seenToken)
	assert.Equal(t, "The Octocat", user.Name)
}

func TestAuthService_Logout(t *testing.T) {
	sessions := memory.NewSessionStore()
	require.NoError(t, sessions.Save(context.Background(), domain.Session{ID: "s1", Token: "gho"}))
	svc := newTestAuth(t, &fakeExchanger{}, sessions, nil)

	require.NoError(t, svc.Logout(context.Background()))

	_, err := sessions.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
