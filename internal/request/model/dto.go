// Package model provides domain models and DTOs for request module.
package model

import "time"

// CreateJoinRequestRequest represents a candidate asking to join a team.
type CreateJoinRequestRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	TeamID  string `json:"team_id" binding:"required"`
	Message string `json:"message"`
}

// CreateInviteRequest represents a team owner inviting a candidate.
type CreateInviteRequest struct {
	OwnerID string `json:"owner_id" binding:"required"`
	TeamID  string `json:"team_id" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message"`
}

// ActionRequest identifies a request and the acting user for accept,
// reject, cancel and mark-read operations.
type ActionRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
}

// RecipientRequest identifies the recipient for bulk operations.
type RecipientRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// RequestResponse represents a membership request in API responses.
type RequestResponse struct {
	RequestID  string `json:"request_id"`
	Kind       Kind   `json:"kind"`
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	Message    string `json:"message"`
	Status     Status `json:"status"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"created_at"`
}

// IncomingResponse represents a recipient's incoming request feed.
type IncomingResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}

// ToResponse converts a MembershipRequest entity to its API representation.
func (r *MembershipRequest) ToResponse() *RequestResponse {
	return &RequestResponse{
		RequestID:  r.RequestID,
		Kind:       r.Kind,
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		TeamID:     r.TeamID,
		TeamName:   r.TeamName,
		Message:    r.Message,
		Status:     r.Status,
		Read:       r.Read,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}
