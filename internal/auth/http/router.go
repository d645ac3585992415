package http

import "github.com/gin-gonic/gin"

// Register attaches the login flow to rg (mounted at /auth) and the session
// info route to authed (a group already behind RequireSession).
func (h *Handler) Register(rg *gin.RouterGroup, authed *gin.RouterGroup) {
	rg.GET("/google/login", h.login)
	rg.GET("/google/callback", h.callback)
	rg.POST("/logout", h.logout)

	authed.GET("/me", h.me)
}
