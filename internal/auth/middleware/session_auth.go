package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamtrack-hr/teamtrack-backend/internal/auth/domain"
	"github.com/teamtrack-hr/teamtrack-backend/internal/auth/session"
)

const (
	// CookieName carries the session token.
	CookieName = "teamtrack_session"
	// CtxUser is the gin context key holding the session User.
	CtxUser = "session_user"
)

// RequireSession resolves the session cookie into a typed User and aborts
// with 401 when there is none.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
			c.Abort()
			return
		}

		user, err := store.Get(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
			c.Abort()
			return
		}

		c.Set(CtxUser, *user)
		c.Next()
	}
}

// RequireHR gates a route to the hr role. Must run after RequireSession.
func RequireHR() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c).Role != domain.RoleHR {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user placed by RequireSession; the zero
// User when absent.
func CurrentUser(c *gin.Context) domain.User {
	v, ok := c.Get(CtxUser)
	if !ok {
		return domain.User{}
	}
	user, _ := v.(domain.User)
	return user
}
