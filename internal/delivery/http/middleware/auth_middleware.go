package middleware

import (
	"net/http"
	"strings"

	"candidate-management-api/internal/delivery/http/response"
	"candidate-management-api/internal/domain"
	"candidate-management-api/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards protected routes. It extracts the bearer token
// from the Authorization header and verifies it before any handler runs.
// Every failure mode gets the same 401 so nothing leaks about which check
// rejected the token.
func AuthMiddleware(tokenManager *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		var tokenString string
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			unauthorized(c)
			return
		}

		claims, err := tokenManager.Verify(tokenString)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(string(domain.KeyUserEmail), claims.Subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Error(c, http.StatusUnauthorized, "Could not validate credentials", nil)
	c.Abort()
}
