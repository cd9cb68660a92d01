package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := GenerateAccessToken("test-secret", "user-1", "sess-1", true, time.Hour)
	require.NoError(t, err)

	claims, err := ParseAccessToken(tok, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "sess-1", claims.SessionID)
	require.True(t, claims.IsAdmin)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	tok, err := GenerateAccessToken("secret-a", "user-1", "sess-1", true, time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken(tok, "secret-b")
	require.Error(t, err)
}

func TestAccessTokenExpired(t *testing.T) {
	tok, err := GenerateAccessToken("test-secret", "user-1", "sess-1", false, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(tok, "test-secret")
	require.Error(t, err)
}
