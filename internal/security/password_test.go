package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("S3cret-pass")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(hash), "$argon2id$"))
	require.NotContains(t, string(hash), "S3cret-pass")

	ok, err := VerifyPassword("S3cret-pass", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword("wrong-pass", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	h1, err := HashPassword("same")
	require.NoError(t, err)
	h2, err := HashPassword("same")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestVerifyPasswordMalformed(t *testing.T) {
	for _, bad := range []string{"", "plaintext", "$bcrypt$whatever", "$argon2id$v=19$m=x$salt$hash"} {
		_, err := VerifyPassword("any", []byte(bad))
		require.ErrorIs(t, err, ErrMalformedHash)
	}
}
