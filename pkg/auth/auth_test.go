package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	secret := []byte("secret")

	token, err := NewToken(secret, 42, RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	require.Equal(t, 42, claims.Subject())
	require.Equal(t, RoleAdmin, claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()
	token, err := NewToken([]byte("secret"), 42, RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), token)
	require.Error(t, err)
}

func TestParseToken_LegacyClaim(t *testing.T) {
	t.Parallel()
	secret := []byte("secret")

	// older clients put the user id only under "userId"
	legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		LegacyUserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenStr, err := legacy.SignedString(secret)
	require.NoError(t, err)

	claims, err := ParseToken(secret, tokenStr)
	require.NoError(t, err)
	require.Equal(t, 7, claims.Subject())
}

func TestParseToken_NoSubject(t *testing.T) {
	t.Parallel()
	secret := []byte("secret")

	empty := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenStr, err := empty.SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(secret, tokenStr)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()
	secret := []byte("secret")

	token, err := NewToken(secret, 42, RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, token)
	require.Error(t, err)
}
