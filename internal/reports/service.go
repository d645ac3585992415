// Package reports composes the weekly snapshot email sent to the HR list.
package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teamtrack-hr/teamtrack-backend/internal/export"
	"github.com/teamtrack-hr/teamtrack-backend/internal/mail"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
)

// ProjectSource is the slice of the record store the report needs.
type ProjectSource interface {
	ListAll(ctx context.Context) []domain.ProjectRecord
}

// MailSender delivers a composed report.
type MailSender interface {
	Send(ctx context.Context, subject, body string, attachments []mail.Attachment) error
	Recipients() []string
}

type Service struct {
	source ProjectSource
	sender MailSender
	now    func() time.Time
}

func NewService(source ProjectSource, sender MailSender) *Service {
	return &Service{source: source, sender: sender, now: time.Now}
}

// SendWeekly renders the standard report (CSV + Excel attachments plus a
// summary body) and mails it to the HR distribution list.
func (s *Service) SendWeekly(ctx context.Context) error {
	now := s.now()
	records := s.source.ListAll(ctx)

	csvFile, err := export.Render(export.FormatCSV, records, now)
	if err != nil {
		return fmt.Errorf("render csv: %w", err)
	}

	excelFile, err := export.Render(export.FormatExcel, records, now)
	if err != nil {
		return fmt.Errorf("render excel: %w", err)
	}

	subject := "Weekly Project Report - " + now.Format(domain.DateLayout)
	body := summaryBody(records, now)

	attachments := []mail.Attachment{
		{Filename: csvFile.Name, ContentType: csvFile.ContentType, Data: csvFile.Bytes},
		{Filename: excelFile.Name, ContentType: excelFile.ContentType, Data: excelFile.Bytes},
	}

	if err := s.sender.Send(ctx, subject, body, attachments); err != nil {
		return fmt.Errorf("send weekly report: %w", err)
	}
	return nil
}

func summaryBody(records []domain.ProjectRecord, now time.Time) string {
	stats := domain.ComputeStats(records, now)

	var b strings.Builder
	fmt.Fprintf(&b, "Weekly project snapshot as of %s.\n\n", now.Format(domain.DateLayout))
	fmt.Fprintf(&b, "Total projects:     %d\n", stats.TotalProjects)
	fmt.Fprintf(&b, "Completed:          %d (%.1f%%)\n", stats.CompletedProjects, stats.CompletionRate)
	fmt.Fprintf(&b, "Overdue:            %d\n", stats.OverdueProjects)
	fmt.Fprintf(&b, "In progress:        %d\n", stats.ByStatus[string(domain.StatusInProgress)])
	fmt.Fprintf(&b, "Not started:        %d\n", stats.ByStatus[string(domain.StatusNotStarted)])
	fmt.Fprintf(&b, "On hold:            %d\n", stats.ByStatus[string(domain.StatusOnHold)])
	b.WriteString("\nThe full snapshot is attached as CSV and Excel.\n")
	return b.String()
}
