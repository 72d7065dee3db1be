// Package model provides domain models and DTOs for notification module.
package model

import (
	"time"
)

// Notification kinds emitted on terminal request transitions.
const (
	KindRequestAccepted = "REQUEST_ACCEPTED"
	KindRequestRejected = "REQUEST_REJECTED"
)

// Notification is the fan-out record created when a membership request
// reaches a terminal state, addressed to the counterpart party.
// Matches the notifications table schema.
type Notification struct {
	NotificationID string    `gorm:"primaryKey;column:notification_id;type:varchar(255)"                           json:"notification_id"`
	Kind           string    `gorm:"column:kind;type:varchar(32);not null"                                         json:"kind"`
	UserID         string    `gorm:"column:user_id;type:varchar(255);not null;index:idx_notifications_user_id"     json:"user_id"`
	TeamID         string    `gorm:"column:team_id;type:varchar(255);not null"                                     json:"team_id"`
	TeamName       string    `gorm:"column:team_name;type:varchar(255);not null"                                   json:"team_name"`
	Message        string    `gorm:"column:message;type:text;not null"                                             json:"message"`
	Read           bool      `gorm:"column:read;type:boolean;not null;default:false"                               json:"read"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"                     json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}

// ListResponse represents a recipient's notification feed.
type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
}
