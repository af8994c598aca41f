package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// PKCE code verifier length (RFC 7636 recommends 43-128 characters).
const codeVerifierLength = 64

// GenerateCodeVerifier creates a cryptographically random code verifier for
// PKCE.
func GenerateCodeVerifier() (string, error) {
	bytes := make([]byte, codeVerifierLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	// Use base64url encoding without padding
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// GenerateCodeChallenge creates a S256 code challenge from the verifier.
func GenerateCodeChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(hash[:])
}
