package http

import "github.com/teamtrack-hr/teamtrack-backend/internal/projects/domain"

type upsertReq struct {
	Email              string `json:"email"`
	Name               string `json:"name"`
	ProjectTitle       string `json:"projectTitle"`
	ProjectDescription string `json:"projectDescription"`
	Status             string `json:"status"`
	Deadline           string `json:"deadline"`
	Priority           string `json:"priority"`
	Department         string `json:"department"`
	EstimatedHours     *int   `json:"estimatedHours"`
	ActualHours        *int   `json:"actualHours"`
	Notes              string `json:"notes"`
}

func (r upsertReq) record() domain.ProjectRecord {
	return domain.ProjectRecord{
		Email:              r.Email,
		Name:               r.Name,
		ProjectTitle:       r.ProjectTitle,
		ProjectDescription: r.ProjectDescription,
		Status:             domain.Status(r.Status),
		Deadline:           r.Deadline,
		Priority:           domain.Priority(r.Priority),
		Department:         r.Department,
		EstimatedHours:     r.EstimatedHours,
		ActualHours:        r.ActualHours,
		Notes:              r.Notes,
	}
}

type deleteReq struct {
	Email        string `json:"email"`
	ProjectTitle string `json:"projectTitle"`
}
