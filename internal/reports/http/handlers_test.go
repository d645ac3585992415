package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack-hr/teamtrack-backend/internal/mail"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
	"github.com/teamtrack-hr/teamtrack-backend/internal/reports"
)

type emptySource struct{}

func (emptySource) ListAll(ctx context.Context) []domain.ProjectRecord { return nil }

type fakeSender struct {
	sent int
	err  error
}

func (f *fakeSender) Send(ctx context.Context, subject, body string, attachments []mail.Attachment) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	return nil
}

func (f *fakeSender) Recipients() []string { return []string{"hr@example.com"} }

func newRouter(t *testing.T, secret string) (*gin.Engine, *fakeSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sender := &fakeSender{}
	svc := reports.NewService(emptySource{}, sender)

	mailSender := mail.NewSender(mail.Config{
		Host:       "smtp.example.com",
		Port:       587,
		From:       "teamtrack@example.com",
		Recipients: []string{"hr@example.com"},
	})

	r := gin.New()
	api := r.Group("/api")
	hr := r.Group("/api")
	New(svc, mailSender, emptySource{}, secret).Register(api, hr)

	return r, sender
}

func do(r *gin.Engine, method, path, bearer string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendScheduled(t *testing.T) {
	t.Run("missing token is rejected", func(t *testing.T) {
		r, sender := newRouter(t, "topsecret")
		w := do(r, http.MethodPost, "/api/cron/send-reports", "", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, sender.sent)
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		r, sender := newRouter(t, "topsecret")
		w := do(r, http.MethodPost, "/api/cron/send-reports", "guess", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, sender.sent)
	})

	t.Run("matching token sends the report", func(t *testing.T) {
		r, sender := newRouter(t, "topsecret")
		w := do(r, http.MethodPost, "/api/cron/send-reports", "topsecret", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, sender.sent)
	})

	t.Run("unconfigured secret disables the trigger", func(t *testing.T) {
		r, sender := newRouter(t, "")
		w := do(r, http.MethodPost, "/api/cron/send-reports", "", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Zero(t, sender.sent)
	})
}

func TestSendManual(t *testing.T) {
	r, sender := newRouter(t, "topsecret")
	w := do(r, http.MethodGet, "/api/cron/send-reports", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, sender.sent)
}

func TestEmailVerify(t *testing.T) {
	r, _ := newRouter(t, "")
	w := do(r, http.MethodGet, "/api/email/test", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestEmailSendValidation(t *testing.T) {
	t.Run("missing message is rejected", func(t *testing.T) {
		r, _ := newRouter(t, "")
		w := do(r, http.MethodPost, "/api/email/test", "", map[string]any{"subject": "hi"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad attachment format is rejected before rendering", func(t *testing.T) {
		r, _ := newRouter(t, "")
		w := do(r, http.MethodPost, "/api/email/test", "", map[string]any{
			"message":      "hello",
			"attachFormat": "docx",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
