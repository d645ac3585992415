package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFromRow(t *testing.T) {
	t.Run("maps a full row positionally", func(t *testing.T) {
		rec := RecordFromRow([]string{
			"alice@example.com", "Alice", "Migration", "Move the wiki",
			"In Progress", "2026-09-01", "2026-08-20", "High",
			"Engineering", "40", "12", "halfway there",
		})

		assert.Equal(t, "alice@example.com", rec.Email)
		assert.Equal(t, "Alice", rec.Name)
		assert.Equal(t, "Migration", rec.ProjectTitle)
		assert.Equal(t, StatusInProgress, rec.Status)
		assert.Equal(t, "2026-09-01", rec.Deadline)
		assert.Equal(t, "2026-08-20", rec.LastUpdated)
		assert.Equal(t, PriorityHigh, rec.Priority)
		assert.Equal(t, "Engineering", rec.Department)
		require.NotNil(t, rec.EstimatedHours)
		assert.Equal(t, 40, *rec.EstimatedHours)
		require.NotNil(t, rec.ActualHours)
		assert.Equal(t, 12, *rec.ActualHours)
		assert.Equal(t, "halfway there", rec.Notes)
	})

	t.Run("is total over any 0..12 cell prefix", func(t *testing.T) {
		full := []string{
			"a@b.c", "A", "T", "D", "Completed", "2026-01-01",
			"2026-01-02", "Low", "Ops", "1", "2", "n",
		}
		for n := 0; n <= len(full); n++ {
			assert.NotPanics(t, func() {
				rec := RecordFromRow(full[:n])
				assert.NotEmpty(t, rec.Status)
				assert.NotEmpty(t, rec.Priority)
			}, "prefix length %d", n)
		}
	})

	t.Run("blank cells map to defaults", func(t *testing.T) {
		rec := RecordFromRow([]string{"a@b.c", "", "T"})
		assert.Equal(t, StatusNotStarted, rec.Status)
		assert.Equal(t, PriorityMedium, rec.Priority)
		assert.Nil(t, rec.EstimatedHours)
		assert.Nil(t, rec.ActualHours)
		assert.Empty(t, rec.Deadline)
	})

	t.Run("non-numeric hours map to nil instead of failing the row", func(t *testing.T) {
		rec := RecordFromRow([]string{"a@b.c", "A", "T", "", "", "", "", "", "", "forty", "12.5", ""})
		assert.Nil(t, rec.EstimatedHours)
		assert.Nil(t, rec.ActualHours)
	})

	t.Run("unrecognized enum values are carried through", func(t *testing.T) {
		rec := RecordFromRow([]string{"a@b.c", "A", "T", "", "Blocked", "", "", "Urgent"})
		assert.Equal(t, Status("Blocked"), rec.Status)
		assert.Equal(t, Priority("Urgent"), rec.Priority)
	})
}

func TestRowFromRecord(t *testing.T) {
	now := time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)

	t.Run("always renders twelve cells", func(t *testing.T) {
		row := RowFromRecord(ProjectRecord{}, now)
		assert.Len(t, row, NumColumns)
	})

	t.Run("stamps lastUpdated from now, ignoring the caller's value", func(t *testing.T) {
		row := RowFromRecord(ProjectRecord{LastUpdated: "1999-01-01"}, now)
		assert.Equal(t, "2026-08-23", row[6])
	})

	t.Run("absent optionals render as empty strings", func(t *testing.T) {
		row := RowFromRecord(ProjectRecord{Email: "a@b.c", ProjectTitle: "T"}, now)
		assert.Equal(t, "", row[3])
		assert.Equal(t, "", row[5])
		assert.Equal(t, "", row[9])
		assert.Equal(t, "", row[10])
		assert.Equal(t, "", row[11])
	})

	t.Run("round trip is stable on all fields except lastUpdated", func(t *testing.T) {
		cells := []string{
			"bob@example.com", "Bob", "Audit", "Annual audit",
			"On Hold", "2026-12-31", "2020-01-01", "Low",
			"Finance", "80", "3", "waiting on vendor",
		}

		rec := RecordFromRow(cells)
		row := RowFromRecord(rec, now)

		for i := range cells {
			if i == 6 {
				assert.Equal(t, now.Format(DateLayout), row[i])
				continue
			}
			assert.Equal(t, cells[i], row[i], fmt.Sprintf("column %d", i))
		}
	})
}
