package driven

import "context"

// CodeExchanger performs the one-shot OAuth authorization-code exchange.
type CodeExchanger interface {
	// ExchangeCode trades an authorization code for an access token via a
	// single form-encoded POST to the provider's token endpoint. There is
	// no refresh token handling; the returned token is treated as valid
	// until explicit logout.
	ExchangeCode(ctx context.Context, code, redirectURI, codeVerifier string) (accessToken string, err error)
}
