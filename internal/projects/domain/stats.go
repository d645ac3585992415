package domain

import (
	"math"
	"time"
)

// Stats is the aggregate view HR sees on the dashboard.
type Stats struct {
	TotalProjects       int            `json:"totalProjects"`
	CompletedProjects   int            `json:"completedProjects"`
	CompletionRate      float64        `json:"completionRate"`
	OverdueProjects     int            `json:"overdueProjects"`
	ByStatus            map[string]int `json:"byStatus"`
	ByPriority          map[string]int `json:"byPriority"`
	ByDepartment        map[string]int `json:"byDepartment"`
	TotalEstimatedHours int            `json:"totalEstimatedHours"`
	TotalActualHours    int            `json:"totalActualHours"`
}

// ComputeStats aggregates records in one pass. A project counts as overdue
// when its deadline parses, lies strictly before today, and the project is
// not completed. CompletionRate is completed/total*100 rounded to one
// decimal; zero records yield a zero rate.
func ComputeStats(records []ProjectRecord, today time.Time) Stats {
	stats := Stats{
		ByStatus:     make(map[string]int),
		ByPriority:   make(map[string]int),
		ByDepartment: make(map[string]int),
	}

	day := today.Truncate(24 * time.Hour)

	for _, rec := range records {
		stats.TotalProjects++
		stats.ByStatus[string(rec.Status)]++
		stats.ByPriority[string(rec.Priority)]++
		if rec.Department != "" {
			stats.ByDepartment[rec.Department]++
		}

		if rec.Status == StatusCompleted {
			stats.CompletedProjects++
		} else if rec.Deadline != "" {
			if deadline, err := time.Parse(DateLayout, rec.Deadline); err == nil && deadline.Before(day) {
				stats.OverdueProjects++
			}
		}

		if rec.EstimatedHours != nil {
			stats.TotalEstimatedHours += *rec.EstimatedHours
		}
		if rec.ActualHours != nil {
			stats.TotalActualHours += *rec.ActualHours
		}
	}

	if stats.TotalProjects > 0 {
		rate := float64(stats.CompletedProjects) / float64(stats.TotalProjects) * 100
		stats.CompletionRate = math.Round(rate*10) / 10
	}

	return stats
}
