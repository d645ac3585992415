// Package policy is the pure access decision applied by the HTTP layer
// around the record store. HR may do anything; employees may read and write
// their own records only, and may never delete or export.
package policy

import (
	authdomain "github.com/teamtrack-hr/teamtrack-backend/internal/auth/domain"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"
)

type Operation string

const (
	OpRead   Operation = "read"
	OpWrite  Operation = "write"
	OpDelete Operation = "delete"
	OpExport Operation = "export"
)

// Allow reports whether actor may perform op against a record owned by
// targetEmail. Ownership comparison is exact and case-sensitive.
func Allow(actor authdomain.User, targetEmail string, op Operation) bool {
	if actor.Role == authdomain.RoleHR {
		return true
	}

	switch op {
	case OpRead, OpWrite:
		return targetEmail == actor.Email
	default:
		return false
	}
}

// Sanitize forces the identity fields of an employee-submitted record to the
// authenticated identity. A foreign email is overwritten, not rejected; HR
// submissions pass through untouched.
func Sanitize(actor authdomain.User, rec domain.ProjectRecord) domain.ProjectRecord {
	if actor.Role == authdomain.RoleHR {
		return rec
	}

	rec.Email = actor.Email
	rec.Name = actor.Name
	return rec
}
