package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to a session-gated group. Role checks
// beyond the session happen inside the handlers via the access policy.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("/add", h.add)
	rg.DELETE("", h.delete)
	rg.GET("/export", h.exportFile)
	rg.GET("/stats", h.stats)
	rg.GET("/user-sheet", h.userSheet)
}
