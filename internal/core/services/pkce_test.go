package services

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCodeVerifier(t *testing.T) {
	t.Run("generates valid code verifier", func(t *testing.T) {
		verifier, err := GenerateCodeVerifier()

		require.NoError(t, err)
		require.NotEmpty(t, verifier)

		decoded, err := base64.RawURLEncoding.DecodeString(verifier)
		require.NoError(t, err, "verifier should be valid base64url")
		assert.Len(t, decoded, codeVerifierLength)

		// RFC 7636 bounds: 43-128 characters.
		assert.GreaterOrEqual(t, len(verifier), 43)
		assert.LessOrEqual(t, len(verifier), 128)
	})

	t.Run("uses base64url encoding without padding", func(t *testing.T) {
		verifier, err := GenerateCodeVerifier()
		require.NoError(t, err)

		assert.False(t, strings.Contains(verifier, "="), "should not contain padding")
		assert.False(t, strings.Contains(verifier, "+"), "should not contain +")
		assert.False(t, strings.Contains(verifier, "/"), "should not contain /")
	})

	t.Run("generates unique verifiers", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			verifier, err := GenerateCodeVerifier()
			require.NoError(t, err)
			assert.False(t, seen[verifier], "should not generate duplicate verifiers")
			seen[verifier] = true
		}
	})
}

func TestGenerateCodeChallenge(t *testing.T) {
	t.Run("is the base64url S256 of the verifier", func(t *testing.T) {
		verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"
		sum := sha256.Sum256([]byte(verifier))
		expected := base64.RawURLEncoding.EncodeToString(sum[:])

		assert.Equal(t, expected, GenerateCodeChallenge(verifier))
	})

	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, GenerateCodeChallenge("abc"), GenerateCodeChallenge("abc"))
		assert.NotEqual(t, GenerateCodeChallenge("abc"), GenerateCodeChallenge("abd"))
	})
}
