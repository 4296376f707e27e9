package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/EricAugusto93/Taste-Teste/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware denies by default: only a valid token whose session row is
// still alive passes. A recognized-but-expired session gets a distinct
// error code so the client knows to send the user back to login.
func AuthMiddleware(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			return
		}

		session, err := service.ResolveSession(c.Request.Context(), parts[1])
		if errors.Is(err, auth.ErrSessionExpired) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "session expired",
				"code":  "session_expired",
			})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("userID", session.UserID)
		c.Set("userEmail", session.Email)
		c.Next()
	}
}
