// Package export renders project records as downloadable report files.
package export

import (
	"fmt"
	"time"

	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

// File is a rendered report ready to be served or attached.
type File struct {
	Name        string
	ContentType string
	Bytes       []byte
}

// ParseFormat validates a query-string format value before any remote or
// rendering work happens. The empty string defaults to CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatExcel:
		return FormatExcel, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: unsupported export format %q", domain.ErrValidation, s)
}

// DriveMIME maps a format to the MIME type the Drive export endpoint takes.
func DriveMIME(f Format) string {
	switch f {
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/csv"
	}
}

// Render produces the report file for the given format. now only names the
// file; cell contents come straight from the records.
func Render(f Format, records []domain.ProjectRecord, now time.Time) (*File, error) {
	stamp := now.Format("2006-01-02")

	switch f {
	case FormatCSV:
		data, err := renderCSV(records)
		if err != nil {
			return nil, err
		}
		return &File{Name: "projects-" + stamp + ".csv", ContentType: "text/csv", Bytes: data}, nil
	case FormatExcel:
		data, err := renderExcel(records)
		if err != nil {
			return nil, err
		}
		return &File{
			Name:        "projects-" + stamp + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Bytes:       data,
		}, nil
	case FormatPDF:
		data, err := renderPDF(records, now)
		if err != nil {
			return nil, err
		}
		return &File{Name: "projects-" + stamp + ".pdf", ContentType: "application/pdf", Bytes: data}, nil
	}

	return nil, fmt.Errorf("%w: unsupported export format %q", domain.ErrValidation, string(f))
}

// recordCells renders a record for a report. Unlike the store's row mapper
// this keeps LastUpdated as stored; an export must not restamp it.
func recordCells(rec domain.ProjectRecord) []string {
	return []string{
		rec.Email,
		rec.Name,
		rec.ProjectTitle,
		rec.ProjectDescription,
		string(rec.Status),
		rec.Deadline,
		rec.LastUpdated,
		string(rec.Priority),
		rec.Department,
		hoursCell(rec.EstimatedHours),
		hoursCell(rec.ActualHours),
		rec.Notes,
	}
}

func hoursCell(h *int) string {
	if h == nil {
		return ""
	}
	return fmt.Sprintf("%d", *h)
}
