package domain

import "errors"

// Role is resolved once at login by HR-list membership and carried on the
// session user from then on; it is never re-derived per request.
type Role string

const (
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// User is the typed session identity produced by the authentication
// boundary and passed by value thereafter.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrDomainNotAllowed = errors.New("sign-in domain not allowed")
	ErrInvalidState     = errors.New("oauth state mismatch")
)
