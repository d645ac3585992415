package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authdomain "github.com/teamtrack-hr/teamtrack-backend/internal/auth/domain"
	authmw "github.com/teamtrack-hr/teamtrack-backend/internal/auth/middleware"
	"github.com/teamtrack-hr/teamtrack-backend/internal/export"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/policy"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/repository"
)

type Handler struct {
	store    *repository.RecordStore
	sheetURL string
}

func New(store *repository.RecordStore, sheetURL string) *Handler {
	return &Handler{store: store, sheetURL: sheetURL}
}

// list returns every record for HR and only the caller's own records for
// employees. A backing-sheet outage surfaces as an empty list, never a 5xx.
func (h *Handler) list(c *gin.Context) {
	user := authmw.CurrentUser(c)

	var items []domain.ProjectRecord
	if user.Role == authdomain.RoleHR {
		items = h.store.ListAll(c.Request.Context())
	} else {
		items = h.store.ListByOwner(c.Request.Context(), user.Email)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) add(c *gin.Context) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	user := authmw.CurrentUser(c)

	// Employees may only write as themselves; a foreign email is replaced
	// with the authenticated identity rather than rejected.
	rec := policy.Sanitize(user, req.record())

	if err := domain.ValidateRecord(rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if !policy.Allow(user, rec.Email, policy.OpWrite) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "access denied"})
		return
	}

	saved, err := h.store.Upsert(c.Request.Context(), rec)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		log.Printf("[projects] upsert failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "saving the project failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": saved})
}

func (h *Handler) delete(c *gin.Context) {
	user := authmw.CurrentUser(c)
	if !policy.Allow(user, "", policy.OpDelete) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "access denied"})
		return
	}

	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.ProjectTitle) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "email and projectTitle are required"})
		return
	}

	if err := h.store.DeleteByKey(c.Request.Context(), req.Email, req.ProjectTitle); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		log.Printf("[projects] delete failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "deleting the project failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// exportFile renders listAll in the requested format. Format validation
// happens before any sheet access.
func (h *Handler) exportFile(c *gin.Context) {
	user := authmw.CurrentUser(c)
	if !policy.Allow(user, "", policy.OpExport) {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "access denied"})
		return
	}

	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	records := h.store.ListAll(c.Request.Context())
	file, err := export.Render(format, records, time.Now())
	if err != nil {
		log.Printf("[projects] export render failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "rendering the export failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Bytes)
}

func (h *Handler) stats(c *gin.Context) {
	if authmw.CurrentUser(c).Role != authdomain.RoleHR {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "access denied"})
		return
	}

	records := h.store.ListAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": domain.ComputeStats(records, time.Now())})
}

// userSheet returns the backing spreadsheet URL. The document is shared;
// no per-user filtering is applied server-side.
func (h *Handler) userSheet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "url": h.sheetURL})
}
