package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionToken(t *testing.T) {
	token, digest, err := NewSessionToken()
	require.NoError(t, err)

	// 32 random bytes, base64url without padding.
	assert.Len(t, token, 43)
	assert.False(t, strings.ContainsAny(token, "=+/"))
	assert.Equal(t, HashToken(token), digest)
	assert.NotEqual(t, token, digest)
}

func TestNewSessionTokenIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, _, err := NewSessionToken()
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestHashTokenIsDeterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	// sha256 digest, base64url: fixed length regardless of input.
	assert.Len(t, HashToken(""), 43)
	assert.Len(t, HashToken(strings.Repeat("x", 500)), 43)
}
