package http

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamtrack-hr/teamtrack-backend/internal/export"
	"github.com/teamtrack-hr/teamtrack-backend/internal/mail"
	"github.com/teamtrack-hr/teamtrack-backend/internal/reports"
)

type Handler struct {
	svc        *reports.Service
	sender     *mail.Sender
	source     reports.ProjectSource
	cronSecret string
}

func New(svc *reports.Service, sender *mail.Sender, source reports.ProjectSource, cronSecret string) *Handler {
	return &Handler{svc: svc, sender: sender, source: source, cronSecret: cronSecret}
}

// sendScheduled is the POST cron trigger; it authenticates with the shared
// bearer secret instead of a session.
func (h *Handler) sendScheduled(c *gin.Context) {
	if h.cronSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "cron secret not configured"})
		return
	}

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.cronSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid cron token"})
		return
	}

	if err := h.svc.SendWeekly(c.Request.Context()); err != nil {
		log.Printf("[reports] cron-triggered report failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "sending the weekly report failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// sendManual is the HR-gated GET variant of the same report.
func (h *Handler) sendManual(c *gin.Context) {
	if err := h.svc.SendWeekly(c.Request.Context()); err != nil {
		log.Printf("[reports] manual report failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "sending the weekly report failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// emailVerify reports whether the sender configuration is complete.
func (h *Handler) emailVerify(c *gin.Context) {
	if err := h.sender.Verify(); err != nil {
		c.JSON(http.StatusOK, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "recipients": h.sender.Recipients()})
}

type emailTestReq struct {
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	AttachFormat string `json:"attachFormat,omitempty"`
}

// emailSend sends a freeform message to the HR list, optionally with a
// rendered export attached.
func (h *Handler) emailSend(c *gin.Context) {
	var req emailTestReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "message is required"})
		return
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = "TeamTrack test message"
	}

	var attachments []mail.Attachment
	if req.AttachFormat != "" {
		format, err := export.ParseFormat(req.AttachFormat)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}

		file, err := export.Render(format, h.source.ListAll(c.Request.Context()), time.Now())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "rendering the attachment failed"})
			return
		}
		attachments = append(attachments, mail.Attachment{
			Filename:    file.Name,
			ContentType: file.ContentType,
			Data:        file.Bytes,
		})
	}

	if err := h.sender.Send(c.Request.Context(), subject, req.Message, attachments); err != nil {
		log.Printf("[reports] test email failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "sending the email failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
