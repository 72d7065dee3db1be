package model

import (
	"time"
)

// Kind distinguishes the direction of a membership request.
type Kind string

// Membership request kinds. A join request flows candidate -> owner, an
// invite flows owner -> candidate.
const (
	KindJoinRequest Kind = "JOIN_REQUEST"
	KindInvite      Kind = "INVITE"
)

// Status is the membership request state. PENDING is the only non-terminal
// state.
type Status string

// Membership request statuses.
const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransition reports whether the transition s -> to is allowed.
// Only PENDING -> ACCEPTED and PENDING -> REJECTED are valid.
func (s Status) CanTransition(to Status) bool {
	return s == StatusPending && to.Terminal()
}

// MembershipRequest represents a pending-or-resolved ask to add a candidate
// to a team. Matches the membership_requests table schema.
//
// For a join request FromUserID is the candidate and ToUserID the team
// owner; for an invite the roles are swapped.
type MembershipRequest struct {
	RequestID  string    `gorm:"primaryKey;column:request_id;type:varchar(255)"                             json:"request_id"`
	Kind       Kind      `gorm:"column:kind;type:varchar(32);not null"                                      json:"kind"`
	FromUserID string    `gorm:"column:from_user_id;type:varchar(255);not null"                             json:"from_user_id"`
	ToUserID   string    `gorm:"column:to_user_id;type:varchar(255);not null;index:idx_requests_to_user_id" json:"to_user_id"`
	TeamID     string    `gorm:"column:team_id;type:varchar(255);not null;index:idx_requests_team_id"       json:"team_id"`
	TeamName   string    `gorm:"column:team_name;type:varchar(255);not null"                                json:"team_name"`
	Message    string    `gorm:"column:message;type:text"                                                   json:"message"`
	Status     Status    `gorm:"column:status;type:varchar(16);not null"                                    json:"status"`
	Read       bool      `gorm:"column:read;type:boolean;not null;default:false"                            json:"read"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                  json:"created_at"`
}

// TableName specifies the table name for GORM.
func (MembershipRequest) TableName() string {
	return "membership_requests"
}

// MemberToAdd resolves which user joins the team when the request is
// accepted: the candidate side of the exchange.
func (r *MembershipRequest) MemberToAdd() string {
	if r.Kind == KindInvite {
		return r.ToUserID
	}
	return r.FromUserID
}
