package cryptox_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tech2saini/portfolio/pkg/cryptox"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2"))

	require.True(t, cryptox.VerifyPassword("correct horse battery staple", hash))
	require.False(t, cryptox.VerifyPassword("Correct horse battery staple", hash))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	// A corrupted stored hash must read as a mismatch, never an error.
	require.False(t, cryptox.VerifyPassword("anything", "not-a-bcrypt-hash"))
	require.False(t, cryptox.VerifyPassword("anything", ""))
}

func TestHashesAreSalted(t *testing.T) {
	a, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}
