// Package repository provides data access layer for profile module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	profileModel "github.com/festy23/teamup/internal/profile/model"
)

// Repository defines the interface for profile data access operations.
type Repository interface {
	// Save creates or updates a profile.
	Save(ctx context.Context, profile *profileModel.Profile) (*profileModel.Profile, error)

	// GetByID finds a profile by user_id.
	GetByID(ctx context.Context, userID string) (*profileModel.Profile, error)

	// List returns all profiles ordered by user_id.
	List(ctx context.Context) ([]profileModel.Profile, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new profile repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Save creates or updates a profile.
func (r *repository) Save(ctx context.Context, profile *profileModel.Profile) (*profileModel.Profile, error) {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	// Save performs an UPSERT for records with a primary key.
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// GetByID finds a profile by user_id.
func (r *repository) GetByID(ctx context.Context, userID string) (*profileModel.Profile, error) {
	var profile profileModel.Profile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileModel.ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// List returns all profiles ordered by user_id.
func (r *repository) List(ctx context.Context) ([]profileModel.Profile, error) {
	var profiles []profileModel.Profile

	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&profiles).Error

	if err != nil {
		return nil, err
	}

	return profiles, nil
}
