// Package model provides DTOs for statistics module.
package model

// TeamStatistics holds aggregate numbers over all teams.
type TeamStatistics struct {
	TotalTeams      int     `json:"total_teams"`
	FullTeams       int     `json:"full_teams"`
	TotalMembers    int     `json:"total_members"`
	AverageFillRate float64 `json:"average_fill_rate"`
}

// RequestStatistics holds aggregate numbers over membership requests.
type RequestStatistics struct {
	TotalRequests    int     `json:"total_requests"`
	PendingRequests  int     `json:"pending_requests"`
	AcceptedRequests int     `json:"accepted_requests"`
	RejectedRequests int     `json:"rejected_requests"`
	AcceptanceRate   float64 `json:"acceptance_rate"`
}

// TeamStatisticsResponse wraps team statistics.
type TeamStatisticsResponse struct {
	Statistics TeamStatistics `json:"statistics"`
}

// RequestStatisticsResponse wraps request statistics.
type RequestStatisticsResponse struct {
	Statistics RequestStatistics `json:"statistics"`
}
