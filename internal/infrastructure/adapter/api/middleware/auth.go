package middleware

import (
	"net/http"
	"strings"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	domainerr "github.com/fitcore/workout-planner/internal/domain/error"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/api/dto"
	"github.com/fitcore/workout-planner/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
)

// principalKey is the gin context key the caller principal is stored under
const principalKey = "principal"

// RequirePrincipal validates the bearer token and stores the caller
// principal in the request context. Mutating routes sit behind it; queries
// stay open.
func RequirePrincipal(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeForbidden,
				Message: "Missing or invalid Authorization header",
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		principal, err := auth.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeForbidden,
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// CallerPrincipal extracts the principal stored by RequirePrincipal
func CallerPrincipal(c *gin.Context) entity.Principal {
	if v, ok := c.Get(principalKey); ok {
		if principal, ok := v.(entity.Principal); ok {
			return principal
		}
	}
	return ""
}
