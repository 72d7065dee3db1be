// Package model provides domain models and DTOs for team module.
package model

import "time"

// CreateTeamRequest represents the request to create a team.
// The owner is inserted as the first member.
type CreateTeamRequest struct {
	TeamName       string   `json:"team_name" binding:"required"`
	EventName      string   `json:"event_name" binding:"required"`
	Category       string   `json:"category" binding:"required"`
	RequiredSkills []string `json:"required_skills"`
	Capacity       int      `json:"capacity" binding:"required"`
	OwnerID        string   `json:"owner_id" binding:"required"`
}

// MemberResponse represents a team member in API responses.
type MemberResponse struct {
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// TeamResponse represents a team with its members in API responses.
type TeamResponse struct {
	TeamID         string           `json:"team_id"`
	TeamName       string           `json:"team_name"`
	EventName      string           `json:"event_name"`
	Category       string           `json:"category"`
	RequiredSkills []string         `json:"required_skills"`
	Capacity       int              `json:"capacity"`
	MemberCount    int              `json:"member_count"`
	OwnerID        string           `json:"owner_id"`
	Members        []MemberResponse `json:"members,omitempty"`
}

// ToResponse converts a Team entity to its API representation.
func (t *Team) ToResponse(members []Member) *TeamResponse {
	resp := &TeamResponse{
		TeamID:         t.TeamID,
		TeamName:       t.TeamName,
		EventName:      t.EventName,
		Category:       t.Category,
		RequiredSkills: t.RequiredSkills,
		Capacity:       t.Capacity,
		MemberCount:    t.MemberCount,
		OwnerID:        t.OwnerID,
	}
	for _, m := range members {
		resp.Members = append(resp.Members, MemberResponse{
			UserID:   m.UserID,
			JoinedAt: m.JoinedAt,
		})
	}
	return resp
}
