package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth/session"
)

// RequireAdmin gates mutating and administrative routes behind a valid
// session. Missing, unknown, and expired tokens are all rejected the same
// way; handlers never see the difference.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		principal, err := sessions.Lookup(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(auth.CtxAdminUser, principal.Username)

		c.Next()
	}
}
