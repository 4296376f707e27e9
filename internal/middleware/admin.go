package middleware

import (
	"net/http"

	"github.com/EricAugusto93/Taste-Teste/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireAdmin admits only emails on the allow-list. Lookup failures count
// as not-admin, so a broken allow-list table locks the dashboard rather
// than opening it.
func RequireAdmin(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("userEmail")
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "email missing from session"})
			return
		}

		if !service.IsAdmin(c.Request.Context(), email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
