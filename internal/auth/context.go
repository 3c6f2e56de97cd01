package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie is the name of the cookie carrying the session token.
	SessionCookie = "vh_session"

	CtxAdminUser = "admin_user"
)

// AdminUsername extracts the authenticated admin username from the Gin
// context. This is set by middleware.RequireAdmin.
func AdminUsername(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxAdminUser))
}
