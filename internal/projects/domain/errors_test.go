package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecord(t *testing.T) {
	valid := ProjectRecord{
		Email:        "a@b.c",
		ProjectTitle: "Title",
		Status:       StatusInProgress,
		Priority:     PriorityHigh,
		Deadline:     "2026-12-01",
	}

	t.Run("accepts a well-formed record", func(t *testing.T) {
		require.NoError(t, ValidateRecord(valid))
	})

	t.Run("accepts a minimal record", func(t *testing.T) {
		require.NoError(t, ValidateRecord(ProjectRecord{ProjectTitle: "T"}))
	})

	cases := []struct {
		name   string
		mutate func(*ProjectRecord)
	}{
		{"empty title", func(r *ProjectRecord) { r.ProjectTitle = "  " }},
		{"malformed deadline", func(r *ProjectRecord) { r.Deadline = "tomorrow" }},
		{"unknown status", func(r *ProjectRecord) { r.Status = "Blocked" }},
		{"unknown priority", func(r *ProjectRecord) { r.Priority = "Urgent" }},
		{"negative estimated hours", func(r *ProjectRecord) { r.EstimatedHours = intPtr(-1) }},
		{"negative actual hours", func(r *ProjectRecord) { r.ActualHours = intPtr(-5) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := valid
			tc.mutate(&rec)

			err := ValidateRecord(rec)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
