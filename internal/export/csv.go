package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
)

func renderCSV(records []domain.ProjectRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(domain.ColumnHeaders[:]); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		if err := w.Write(recordCells(rec)); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
