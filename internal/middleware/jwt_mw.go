package middleware

import (
	"net/http"
	"strings"

	"callpoint/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthSubjectKey is the context key holding the verified token subject
// (the user's email or phone number).
const AuthSubjectKey = "authSubject"

// BearerAuthMiddleware creates a middleware that verifies the Authorization
// bearer token and stores its subject in the request context.
func BearerAuthMiddleware(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		subject, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(AuthSubjectKey, subject)
		c.Next()
	}
}
