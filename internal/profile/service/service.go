// Package service provides business logic layer for profile module.
package service

import (
	"context"

	"go.uber.org/zap"

	profileModel "github.com/festy23/teamup/internal/profile/model"
	"github.com/festy23/teamup/internal/profile/repository"
)

// Service defines the interface for profile business logic operations.
type Service interface {
	// SaveProfile creates or updates a candidate profile.
	SaveProfile(ctx context.Context, req *profileModel.SaveProfileRequest) (*profileModel.ProfileResponse, error)

	// GetProfile returns a candidate profile by user ID.
	GetProfile(ctx context.Context, userID string) (*profileModel.ProfileResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new profile service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// SaveProfile creates or updates a candidate profile.
func (s *service) SaveProfile(
	ctx context.Context,
	req *profileModel.SaveProfileRequest,
) (*profileModel.ProfileResponse, error) {
	if req.UserID == "" {
		return nil, profileModel.ErrInvalidUserID
	}
	if req.Username == "" {
		return nil, profileModel.ErrInvalidUsername
	}

	profile := &profileModel.Profile{
		UserID:            req.UserID,
		Username:          req.Username,
		TechnicalSkills:   req.TechnicalSkills,
		SoftSkills:        req.SoftSkills,
		Activities:        req.Activities,
		CategoryInterests: req.CategoryInterests,
		Interests:         req.Interests,
	}

	saved, err := s.repo.Save(ctx, profile)
	if err != nil {
		return nil, err
	}

	return saved.ToResponse(), nil
}

// GetProfile returns a candidate profile by user ID.
func (s *service) GetProfile(ctx context.Context, userID string) (*profileModel.ProfileResponse, error) {
	if userID == "" {
		return nil, profileModel.ErrInvalidUserID
	}

	profile, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return profile.ToResponse(), nil
}
