package dto

import "time"

// DashboardSummaryResponse aggregates activity for the requesting user.
// Counts cover tasks the user created or is assigned to.
type DashboardSummaryResponse struct {
	TotalTasks  int64            `json:"totalTasks"`
	ByStatus    map[string]int64 `json:"byStatus"`
	ByPriority  map[string]int64 `json:"byPriority"`
	Overdue     int64            `json:"overdue"`
	Projects    int64            `json:"projects"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
