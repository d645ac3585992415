package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound   = errors.New("project record not found")
	ErrValidation = errors.New("validation failed")
)

// ValidateRecord checks a record at the write boundary. The mapper itself is
// total and never rejects; anything a caller submits is checked here before
// any remote call happens.
func ValidateRecord(rec ProjectRecord) error {
	if strings.TrimSpace(rec.ProjectTitle) == "" {
		return fmt.Errorf("%w: projectTitle is required", ErrValidation)
	}

	if rec.Deadline != "" {
		if _, err := time.Parse(DateLayout, rec.Deadline); err != nil {
			return fmt.Errorf("%w: deadline must be a %s date", ErrValidation, DateLayout)
		}
	}

	if rec.Status != "" && !ValidStatus(rec.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, rec.Status)
	}

	if rec.Priority != "" && !ValidPriority(rec.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, rec.Priority)
	}

	if rec.EstimatedHours != nil && *rec.EstimatedHours < 0 {
		return fmt.Errorf("%w: estimatedHours must be non-negative", ErrValidation)
	}

	if rec.ActualHours != nil && *rec.ActualHours < 0 {
		return fmt.Errorf("%w: actualHours must be non-negative", ErrValidation)
	}

	return nil
}
