// Package model provides domain models and DTOs for profile module.
package model

// SaveProfileRequest represents the request to create or update a profile.
type SaveProfileRequest struct {
	UserID            string   `json:"user_id"  binding:"required"`
	Username          string   `json:"username" binding:"required"`
	TechnicalSkills   []string `json:"technical_skills"`
	SoftSkills        []string `json:"soft_skills"`
	Activities        []string `json:"activities"`
	CategoryInterests []string `json:"category_interests"`
	Interests         []string `json:"interests"`
}

// ProfileResponse represents a profile in API responses.
type ProfileResponse struct {
	UserID            string   `json:"user_id"`
	Username          string   `json:"username"`
	TechnicalSkills   []string `json:"technical_skills"`
	SoftSkills        []string `json:"soft_skills"`
	Activities        []string `json:"activities"`
	CategoryInterests []string `json:"category_interests"`
	Interests         []string `json:"interests"`
}

// ToResponse converts a Profile entity to its API representation.
func (p *Profile) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		UserID:            p.UserID,
		Username:          p.Username,
		TechnicalSkills:   p.TechnicalSkills,
		SoftSkills:        p.SoftSkills,
		Activities:        p.Activities,
		CategoryInterests: p.CategoryInterests,
		Interests:         p.Interests,
	}
}
