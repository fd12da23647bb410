package auth

import (
	"errors"
	"time"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails validation or carries no
// principal
var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken mints an HS256 token whose subject is the caller principal
func GenerateToken(principal entity.Principal, secret string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   string(principal),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a token string and extracts the caller principal
func ParseToken(tokenStr, secret string) (entity.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return entity.Principal(claims.Subject), nil
}
