package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack-hr/teamtrack-backend/internal/mail"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
)

type staticSource struct {
	records []domain.ProjectRecord
}

func (s staticSource) ListAll(ctx context.Context) []domain.ProjectRecord {
	return s.records
}

type capturingSender struct {
	subject     string
	body        string
	attachments []mail.Attachment
	err         error
}

func (c *capturingSender) Send(ctx context.Context, subject, body string, attachments []mail.Attachment) error {
	if c.err != nil {
		return c.err
	}
	c.subject = subject
	c.body = body
	c.attachments = attachments
	return nil
}

func (c *capturingSender) Recipients() []string {
	return []string{"hr@example.com"}
}

func TestSendWeekly(t *testing.T) {
	records := []domain.ProjectRecord{
		{Email: "a@x.co", ProjectTitle: "One", Status: domain.StatusCompleted},
		{Email: "b@x.co", ProjectTitle: "Two", Status: domain.StatusInProgress},
	}

	t.Run("sends csv and excel attachments with a summary body", func(t *testing.T) {
		sender := &capturingSender{}
		svc := NewService(staticSource{records: records}, sender)

		require.NoError(t, svc.SendWeekly(context.Background()))

		assert.Contains(t, sender.subject, "Weekly Project Report")
		assert.Contains(t, sender.body, "Total projects:     2")
		assert.Contains(t, sender.body, "Completed:          1")

		require.Len(t, sender.attachments, 2)
		assert.Contains(t, sender.attachments[0].Filename, ".csv")
		assert.Contains(t, sender.attachments[1].Filename, ".xlsx")
		assert.NotEmpty(t, sender.attachments[0].Data)
		assert.NotEmpty(t, sender.attachments[1].Data)
	})

	t.Run("an empty store still produces a report", func(t *testing.T) {
		sender := &capturingSender{}
		svc := NewService(staticSource{}, sender)

		require.NoError(t, svc.SendWeekly(context.Background()))
		assert.Contains(t, sender.body, "Total projects:     0")
	})

	t.Run("send failures propagate", func(t *testing.T) {
		sender := &capturingSender{err: errors.New("smtp down")}
		svc := NewService(staticSource{records: records}, sender)

		err := svc.SendWeekly(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smtp down")
	})
}
