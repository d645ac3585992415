package http

import "github.com/gin-gonic/gin"

// Register attaches the report and email routes. api is the bare /api group
// (the cron POST authenticates with its own bearer secret); hr is a group
// already behind RequireSession + RequireHR.
func (h *Handler) Register(api, hr *gin.RouterGroup) {
	api.POST("/cron/send-reports", h.sendScheduled)

	hr.GET("/cron/send-reports", h.sendManual)
	hr.GET("/email/test", h.emailVerify)
	hr.POST("/email/test", h.emailSend)
}
