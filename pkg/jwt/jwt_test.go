package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("unit-test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, TypeAccess, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, TypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired), "got %v", err)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("other"), 1, TypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid), "got %v", err)
}

func TestParse_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "refresh", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestParse_Malformed(t *testing.T) {
	_, err := ParseToken(secret, TypeAccess, "not-a-token")
	assert.Error(t, err)
}

func TestParse_RejectsNoneAlg(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Type:   TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(secret, TypeAccess, token)
	assert.Error(t, err)
}
