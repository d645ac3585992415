package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
)

var testRecords = []domain.ProjectRecord{
	{
		Email:        "a@example.com",
		Name:         "Alice",
		ProjectTitle: "Migration",
		Status:       domain.StatusInProgress,
		Deadline:     "2026-09-01",
		LastUpdated:  "2026-08-20",
		Priority:     domain.PriorityHigh,
		Department:   "Engineering",
	},
	{
		Email:        "b@example.com",
		Name:         "Bob",
		ProjectTitle: "Audit",
		Status:       domain.StatusCompleted,
		Priority:     domain.PriorityLow,
	},
}

var testNow = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func TestParseFormat(t *testing.T) {
	t.Run("known formats parse", func(t *testing.T) {
		for _, s := range []string{"csv", "excel", "pdf"} {
			f, err := ParseFormat(s)
			require.NoError(t, err)
			assert.Equal(t, Format(s), f)
		}
	})

	t.Run("empty defaults to csv", func(t *testing.T) {
		f, err := ParseFormat("")
		require.NoError(t, err)
		assert.Equal(t, FormatCSV, f)
	})

	t.Run("anything else is a validation error", func(t *testing.T) {
		for _, s := range []string{"docx", "xlsx", "CSV", "json"} {
			_, err := ParseFormat(s)
			assert.ErrorIs(t, err, domain.ErrValidation, s)
		}
	})
}

func TestRenderCSV(t *testing.T) {
	file, err := Render(FormatCSV, testRecords, testNow)
	require.NoError(t, err)
	assert.Equal(t, "projects-2026-08-23.csv", file.Name)
	assert.Equal(t, "text/csv", file.ContentType)

	rows, err := csv.NewReader(bytes.NewReader(file.Bytes)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.ColumnHeaders[:], rows[0])
	assert.Equal(t, "a@example.com", rows[1][0])
	// LastUpdated comes from the record, not from now
	assert.Equal(t, "2026-08-20", rows[1][6])
}

func TestRenderExcel(t *testing.T) {
	file, err := Render(FormatExcel, testRecords, testNow)
	require.NoError(t, err)
	assert.Equal(t, "projects-2026-08-23.xlsx", file.Name)

	f, err := excelize.OpenReader(bytes.NewReader(file.Bytes))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Projects")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, "Email", rows[0][0])
	assert.Equal(t, "Migration", rows[1][2])
	assert.Equal(t, "Audit", rows[2][2])
}

func TestRenderPDF(t *testing.T) {
	file, err := Render(FormatPDF, testRecords, testNow)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	require.NotEmpty(t, file.Bytes)
	assert.True(t, bytes.HasPrefix(file.Bytes, []byte("%PDF")))
}

func TestTruncate(t *testing.T) {
	t.Run("short strings pass through", func(t *testing.T) {
		assert.Equal(t, "hello", truncate("hello", 40))
	})

	t.Run("long strings are cut with an ellipsis", func(t *testing.T) {
		got := truncate(strings.Repeat("a", 50), 40)
		assert.Len(t, got, 40)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("multi-byte text is cut on rune boundaries", func(t *testing.T) {
		got := truncate(strings.Repeat("é", 50), 40)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, 40, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}

func TestRenderEmptyList(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatExcel, FormatPDF} {
		file, err := Render(format, nil, testNow)
		require.NoError(t, err, string(format))
		assert.NotEmpty(t, file.Bytes)
	}
}
