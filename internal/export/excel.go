package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
)

const excelSheet = "Projects"

func renderExcel(records []domain.ProjectRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, title := range domain.ColumnHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(excelSheet, cell, title); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	if err := f.SetCellStyle(excelSheet, "A1", "L1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for r, rec := range records {
		for cIdx, value := range recordCells(rec) {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(excelSheet, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+2, err)
			}
		}
	}

	if err := f.SetColWidth(excelSheet, "A", "L", 20); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
