package model

import (
	"time"

	"gorm.io/gorm"
)

// Profile represents a candidate profile entity in the system.
// Matches the profiles table schema. Skill and interest lists are stored
// as JSON columns.
type Profile struct {
	UserID            string    `gorm:"primaryKey;column:user_id;type:varchar(255)"               json:"user_id"`
	Username          string    `gorm:"column:username;type:varchar(255);not null"                json:"username"`
	TechnicalSkills   []string  `gorm:"column:technical_skills;serializer:json"                   json:"technical_skills"`
	SoftSkills        []string  `gorm:"column:soft_skills;serializer:json"                        json:"soft_skills"`
	Activities        []string  `gorm:"column:activities;serializer:json"                         json:"activities"`
	CategoryInterests []string  `gorm:"column:category_interests;serializer:json"                 json:"category_interests"`
	Interests         []string  `gorm:"column:interests;serializer:json"                          json:"interests"`
	CreatedAt         time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt         time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Profile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
