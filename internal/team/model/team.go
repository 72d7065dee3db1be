package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Team categories. Sports, Esports and Cultural teams recruit by activity
// rather than by technical skill.
const (
	CategoryResearch  = "Research"
	CategoryHackathon = "Hackathon"
	CategoryStartup   = "Startup"
	CategorySports    = "Sports"
	CategoryEsports   = "Esports"
	CategoryCultural  = "Cultural"
)

// nonTechnicalCategories is keyed by lowercased category name.
var nonTechnicalCategories = map[string]bool{
	"sports":   true,
	"esports":  true,
	"cultural": true,
}

// IsNonTechnicalCategory reports whether category recruits by activity.
// Matching is case-insensitive.
func IsNonTechnicalCategory(category string) bool {
	return nonTechnicalCategories[strings.ToLower(category)]
}

// Team represents a recruiting team entity in the system.
// Matches the teams table schema.
//
// MemberCount is a denormalized counter kept in sync with team_members rows
// inside the same transaction; the capacity gate in the repository relies
// on it (member_count < capacity).
type Team struct {
	TeamID         string    `gorm:"primaryKey;column:team_id;type:varchar(255)"               json:"team_id"`
	TeamName       string    `gorm:"column:team_name;type:varchar(255);not null"               json:"team_name"`
	EventName      string    `gorm:"column:event_name;type:varchar(255);not null"              json:"event_name"`
	Category       string    `gorm:"column:category;type:varchar(64);not null"                 json:"category"`
	RequiredSkills []string  `gorm:"column:required_skills;serializer:json"                    json:"required_skills"`
	Capacity       int       `gorm:"column:capacity;type:integer;not null"                     json:"capacity"`
	MemberCount    int       `gorm:"column:member_count;type:integer;not null;default:0"       json:"member_count"`
	OwnerID        string    `gorm:"column:owner_id;type:varchar(255);not null"                json:"owner_id"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt      time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// Member represents a row in the team_members table. Rows are ordered by
// insertion (id ASC); the unique index rejects duplicate membership.
type Member struct {
	ID       int64     `gorm:"primaryKey;column:id;type:bigserial"                                                   json:"id"`
	TeamID   string    `gorm:"column:team_id;type:varchar(255);not null;uniqueIndex:idx_team_members_team_user"      json:"team_id"`
	UserID   string    `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:idx_team_members_team_user"      json:"user_id"`
	JoinedAt time.Time `gorm:"column:joined_at;type:timestamptz;not null;default:now()"                              json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "team_members"
}
