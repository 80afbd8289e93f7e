package cryptox_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tech2saini/portfolio/pkg/cryptox"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"128-bit token", cryptox.TokenSize128},
		{"256-bit token", cryptox.TokenSize256},
		{"custom size", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := cryptox.GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			token2, err := cryptox.GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}

	// 32 bytes encode to 43 base64url chars without padding.
	tok, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.Len(t, tok, 43)
	require.NotEqual(t, tok, cryptox.MustGenerateToken(cryptox.TokenSize256))
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := cryptox.GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestFingerprintToken(t *testing.T) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	fp := cryptox.FingerprintToken(token)
	require.NotEqual(t, token, fp, "fingerprint must not reveal the token")
	require.Equal(t, fp, cryptox.FingerprintToken(token), "fingerprint is deterministic")
	require.NotEqual(t, fp, cryptox.FingerprintToken(token+"x"))
}
