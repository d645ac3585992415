package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/teamtrack-hr/teamtrack-backend/internal/auth/domain"
	authmw "github.com/teamtrack-hr/teamtrack-backend/internal/auth/middleware"
	"github.com/teamtrack-hr/teamtrack-backend/internal/auth/service"
	"github.com/teamtrack-hr/teamtrack-backend/internal/auth/session"
)

const stateCookie = "teamtrack_oauth_state"

type Handler struct {
	svc      *service.AuthService
	sessions *session.Store
	baseURL  string
	secure   bool
}

func New(svc *service.AuthService, sessions *session.Store, baseURL string, secure bool) *Handler {
	return &Handler{svc: svc, sessions: sessions, baseURL: baseURL, secure: secure}
}

func (h *Handler) login(c *gin.Context) {
	state := uuid.New().String()
	c.SetCookie(stateCookie, state, 600, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, h.svc.AuthURL(state))
}

func (h *Handler) callback(c *gin.Context) {
	wantState, err := c.Cookie(stateCookie)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrInvalidState.Error()})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.secure, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing authorization code"})
		return
	}

	user, err := h.svc.Exchange(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrDomainNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": err.Error()})
			return
		}
		log.Printf("[auth] oauth exchange failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "sign-in failed"})
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user)
	if err != nil {
		log.Printf("[auth] session create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "session creation failed"})
		return
	}

	c.SetCookie(authmw.CookieName, token, int((24 * 60 * 60)), "/", "", h.secure, true)
	c.Redirect(http.StatusFound, h.baseURL)
}

func (h *Handler) logout(c *gin.Context) {
	if token, err := c.Cookie(authmw.CookieName); err == nil && token != "" {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			log.Printf("[auth] session delete failed: %v", err)
		}
	}
	c.SetCookie(authmw.CookieName, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": authmw.CurrentUser(c)})
}
