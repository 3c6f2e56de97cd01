package http

import "github.com/gin-gonic/gin"

// Register attaches application routes. Submission is public; listing,
// fetching and deciding are admin-only.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.POST("", h.submit)
	rg.GET("", requireAdmin, h.list)
	rg.GET("/:id", requireAdmin, h.get)
	rg.PATCH("/:id/status", requireAdmin, h.updateStatus)
}
