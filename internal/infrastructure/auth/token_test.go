package auth

import (
	"testing"
	"time"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("alice", "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, entity.Principal("alice"), principal)
}

func TestParseToken(t *testing.T) {
	t.Run("Wrong secret", func(t *testing.T) {
		token, err := GenerateToken("alice", "secret", time.Hour)
		require.NoError(t, err)

		principal, err := ParseToken(token, "other-secret")
		assert.Empty(t, principal)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := GenerateToken("alice", "secret", -time.Minute)
		require.NoError(t, err)

		principal, err := ParseToken(token, "secret")
		assert.Empty(t, principal)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage input", func(t *testing.T) {
		principal, err := ParseToken("not-a-token", "secret")
		assert.Empty(t, principal)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Missing subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		principal, err := ParseToken(token, "secret")
		assert.Empty(t, principal)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unexpected signing method", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		principal, err := ParseToken(token, "secret")
		assert.Empty(t, principal)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
