package http

import "github.com/gin-gonic/gin"

// Register attaches the auth routes to the given router group. The login
// route takes an extra middleware chain so the caller can rate limit it.
func (h *Handler) Register(rg *gin.RouterGroup, loginMiddleware ...gin.HandlerFunc) {
	handlers := append(loginMiddleware, h.login)
	rg.POST("/login", handlers...)
	rg.POST("/logout", h.logout)
	rg.GET("/auth/status", h.status)
}
