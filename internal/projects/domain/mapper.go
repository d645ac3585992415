package domain

import (
	"strconv"
	"strings"
	"time"
)

// RecordFromRow maps one backing row onto a ProjectRecord. It is total over
// arbitrary partial input: trailing cells may be absent, blanks map to the
// field's default, and malformed numeric cells map to nil. The backing
// sheet's shape is not contractually guaranteed, so nothing here rejects.
//
// Enum cells are carried through as given; the defensive default applies
// only when the cell is empty.
func RecordFromRow(cells []string) ProjectRecord {
	get := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	rec := ProjectRecord{
		Email:              get(0),
		Name:               get(1),
		ProjectTitle:       get(2),
		ProjectDescription: get(3),
		Status:             Status(get(4)),
		Deadline:           get(5),
		LastUpdated:        get(6),
		Priority:           Priority(get(7)),
		Department:         get(8),
		EstimatedHours:     parseHours(get(9)),
		ActualHours:        parseHours(get(10)),
		Notes:              get(11),
	}

	if rec.Status == "" {
		rec.Status = StatusNotStarted
	}
	if rec.Priority == "" {
		rec.Priority = PriorityMedium
	}

	return rec
}

// RowFromRecord renders a record as exactly NumColumns cells in positional
// order. LastUpdated is always stamped from now; whatever the caller put in
// the record is discarded.
func RowFromRecord(rec ProjectRecord, now time.Time) []string {
	status := rec.Status
	if status == "" {
		status = StatusNotStarted
	}
	priority := rec.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	return []string{
		rec.Email,
		rec.Name,
		rec.ProjectTitle,
		rec.ProjectDescription,
		string(status),
		rec.Deadline,
		now.Format(DateLayout),
		string(priority),
		rec.Department,
		hoursCell(rec.EstimatedHours),
		hoursCell(rec.ActualHours),
		rec.Notes,
	}
}

func parseHours(cell string) *int {
	if cell == "" {
		return nil
	}
	n, err := strconv.Atoi(cell)
	if err != nil {
		return nil
	}
	return &n
}

func hoursCell(h *int) string {
	if h == nil {
		return ""
	}
	return strconv.Itoa(*h)
}
