package http

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamtrack-hr/teamtrack-backend/internal/export"
	"github.com/teamtrack-hr/teamtrack-backend/internal/mail"
	projectsdomain "github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
	"github.com/teamtrack-hr/teamtrack-backend/internal/sheets"
)

// Handler exposes spreadsheet diagnostics and direct Drive exports.
type Handler struct {
	client *sheets.Client
	sender *mail.Sender
}

func New(client *sheets.Client, sender *mail.Sender) *Handler {
	return &Handler{client: client, sender: sender}
}

// Register attaches the routes to an HR-gated group.
func (h *Handler) Register(hr *gin.RouterGroup) {
	hr.GET("/sheets/test", h.test)
	hr.GET("/sheets/download", h.download)
	hr.POST("/sheets/download", h.downloadAndEmail)
}

// test probes spreadsheet connectivity; no business logic.
func (h *Handler) test(c *gin.Context) {
	info, err := h.client.Probe(c.Request.Context())
	if err != nil {
		log.Printf("[sheets] connectivity probe failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "spreadsheet is unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "spreadsheet": info})
}

func (h *Handler) export(c *gin.Context) (*export.File, bool) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return nil, false
	}

	data, err := h.client.Export(c.Request.Context(), export.DriveMIME(format))
	if err != nil {
		log.Printf("[sheets] drive export failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "exporting the spreadsheet failed"})
		return nil, false
	}

	name := "projects-" + time.Now().Format(projectsdomain.DateLayout)
	switch format {
	case export.FormatExcel:
		name += ".xlsx"
	case export.FormatPDF:
		name += ".pdf"
	default:
		name += ".csv"
	}

	return &export.File{Name: name, ContentType: export.DriveMIME(format), Bytes: data}, true
}

// download streams the Drive-exported spreadsheet back to the caller.
func (h *Handler) download(c *gin.Context) {
	file, ok := h.export(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Bytes)
}

// downloadAndEmail exports the spreadsheet and mails it to the HR list.
func (h *Handler) downloadAndEmail(c *gin.Context) {
	file, ok := h.export(c)
	if !ok {
		return
	}

	subject := "Spreadsheet export - " + time.Now().Format(projectsdomain.DateLayout)
	body := "The requested spreadsheet export is attached.\n"
	att := []mail.Attachment{{Filename: file.Name, ContentType: file.ContentType, Data: file.Bytes}}

	if err := h.sender.Send(c.Request.Context(), subject, body, att); err != nil {
		log.Printf("[sheets] export email failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "emailing the export failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "file": file.Name})
}
