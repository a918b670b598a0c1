package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("admin@salonelegante.com", "Admin General", "Admin", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "admin@salonelegante.com", claims.Subject)
	require.Equal(t, "Admin General", claims.Name)
	require.Equal(t, "Admin", claims.Role)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("admin@salonelegante.com", "Admin General", "Admin", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("admin@salonelegante.com", "Admin General", "Admin", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
