package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
)

// pdfColumns trims the full column set to what fits a landscape A4 table.
var pdfColumns = []struct {
	title string
	width float64
	cell  func(domain.ProjectRecord) string
}{
	{"Email", 50, func(r domain.ProjectRecord) string { return r.Email }},
	{"Name", 32, func(r domain.ProjectRecord) string { return r.Name }},
	{"Project Title", 55, func(r domain.ProjectRecord) string { return r.ProjectTitle }},
	{"Status", 25, func(r domain.ProjectRecord) string { return string(r.Status) }},
	{"Deadline", 24, func(r domain.ProjectRecord) string { return r.Deadline }},
	{"Updated", 24, func(r domain.ProjectRecord) string { return r.LastUpdated }},
	{"Priority", 20, func(r domain.ProjectRecord) string { return string(r.Priority) }},
	{"Department", 47, func(r domain.ProjectRecord) string { return r.Department }},
}

func renderPDF(records []domain.ProjectRecord, now time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Project Report "+now.Format(domain.DateLayout), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(221, 235, 247)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, rec := range records {
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, truncate(col.cell(rec), 40), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate cuts on rune boundaries; a byte slice could split a multi-byte
// character and corrupt the cell text.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
