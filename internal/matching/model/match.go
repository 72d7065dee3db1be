// Package model provides DTOs for the matching module.
package model

import (
	teamModel "github.com/festy23/teamup/internal/team/model"
)

// MatchResult pairs a team with the candidate's affinity score.
// Results are ephemeral and never persisted.
type MatchResult struct {
	Team  *teamModel.TeamResponse `json:"team"`
	Score int                     `json:"score"`
}

// RecommendationsResponse represents the recommendation feed for a candidate.
type RecommendationsResponse struct {
	Results []MatchResult `json:"results"`
	Total   int           `json:"total"`
}
