// Package oauth provides OAuth token exchange functionality for GitHub.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oatfield-labs/octoview-cli/internal/core/ports/driven"
)

// DefaultTokenURL is the GitHub token endpoint.
//
//nolint:gosec // G101: Not credentials, OAuth endpoint URL
const DefaultTokenURL = "https://github.com/login/oauth/access_token"

// exchangeTimeout bounds the one-shot token POST.
const exchangeTimeout = 30 * time.Second

// TokenResponse holds the response from a token exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
}

// Ensure Exchanger implements the port.
var _ driven.CodeExchanger = (*Exchanger)(nil)

// Exchanger performs the authorization-code exchange against a fixed token
// endpoint. App credentials come from the config store at call time.
type Exchanger struct {
	tokenURL string
	config   driven.ConfigStore
	client   *http.Client
}

// ExchangerOption configures an Exchanger.
type ExchangerOption func(*Exchanger)

// WithTokenURL overrides the token endpoint (tests, GitHub Enterprise).
func WithTokenURL(u string) ExchangerOption {
	return func(e *Exchanger) { e.tokenURL = u }
}

// WithHTTPClient replaces the HTTP client used for the exchange.
func WithHTTPClient(c *http.Client) ExchangerOption {
	return func(e *Exchanger) { e.client = c }
}

// NewExchanger creates an exchanger for a GitHub OAuth app.
func NewExchanger(config driven.ConfigStore, opts ...ExchangerOption) *Exchanger {
	e := &Exchanger{
		tokenURL: DefaultTokenURL,
		config:   config,
		client:   &http.Client{Timeout: exchangeTimeout},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExchangeCode exchanges an authorization code for an access token via a
// single form-encoded POST.
func (e *Exchanger) ExchangeCode(ctx context.Context, code, redirectURI, codeVerifier string) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", e.config.GetString(driven.ConfigClientID))
	data.Set("client_secret", e.config.GetString(driven.ConfigClientSecret))
	data.Set("code", code)
	data.Set("redirect_uri", redirectURI)
	if codeVerifier != "" {
		data.Set("code_verifier", codeVerifier)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return "", fmt.Errorf("token error: %s - %s", errResp.Error, errResp.Description)
		}
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	// GitHub reports bad codes as 200 with an error field, so decode both
	// shapes from the same body.
	var tokenResp struct {
		TokenResponse
		Error       string `json:"error"`
		Description string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tokenResp.Error != "" {
		return "", fmt.Errorf("token error: %s - %s", tokenResp.Error, tokenResp.Description)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}

	return tokenResp.AccessToken, nil
}
