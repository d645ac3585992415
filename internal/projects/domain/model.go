package domain

// Status is the lifecycle stage of a project as stored in the sheet.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"
)

// Priority is the project priority as stored in the sheet.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ProjectRecord is one row of the backing spreadsheet, identified by the
// (Email, ProjectTitle) pair. It is storage-agnostic and shared across the
// store and HTTP layers.
type ProjectRecord struct {
	Email              string   `json:"email"`
	Name               string   `json:"name"`
	ProjectTitle       string   `json:"projectTitle"`
	ProjectDescription string   `json:"projectDescription,omitempty"`
	Status             Status   `json:"status"`
	Deadline           string   `json:"deadline,omitempty"`
	LastUpdated        string   `json:"lastUpdated,omitempty"`
	Priority           Priority `json:"priority"`
	Department         string   `json:"department,omitempty"`
	EstimatedHours     *int     `json:"estimatedHours,omitempty"`
	ActualHours        *int     `json:"actualHours,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

// NumColumns is the fixed width of a backing row.
const NumColumns = 12

// DateLayout is the wire format for Deadline and LastUpdated cells.
const DateLayout = "2006-01-02"

// ColumnHeaders is the canonical header row, in positional order.
var ColumnHeaders = [NumColumns]string{
	"Email",
	"Name",
	"Project Title",
	"Project Description",
	"Status",
	"Deadline",
	"Last Updated",
	"Priority",
	"Department",
	"Estimated Hours",
	"Actual Hours",
	"Notes",
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
