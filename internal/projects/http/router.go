package http

import "github.com/gin-gonic/gin"

// Register attaches project routes. Listing is public; creation and deletion
// go behind the admin guard.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.POST("", requireAdmin, h.create)
	rg.DELETE("/:id", requireAdmin, h.delete)
}
