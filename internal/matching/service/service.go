// Package service provides the match-scoring and recommendation logic.
package service

import (
	"context"

	"go.uber.org/zap"

	matchingModel "github.com/festy23/teamup/internal/matching/model"
	profileModel "github.com/festy23/teamup/internal/profile/model"
	profileRepository "github.com/festy23/teamup/internal/profile/repository"
	teamModel "github.com/festy23/teamup/internal/team/model"
	teamRepository "github.com/festy23/teamup/internal/team/repository"
)

// Service defines the interface for matching business logic operations.
type Service interface {
	// Score computes the 0-100 affinity between a candidate and a team.
	Score(candidate *profileModel.Profile, team *teamModel.Team) int

	// Recommend ranks all teams for the candidate, filtered to score >= 20.
	Recommend(ctx context.Context, userID string) (*matchingModel.RecommendationsResponse, error)
}

type service struct {
	profiles  profileRepository.Repository
	teams     teamRepository.Repository
	normalize Normalizer
	logger    *zap.SugaredLogger
}

// New creates a new matching service instance. A nil normalizer falls back
// to DefaultNormalizer.
func New(
	profiles profileRepository.Repository,
	teams teamRepository.Repository,
	normalize Normalizer,
	logger *zap.SugaredLogger,
) Service {
	if normalize == nil {
		normalize = DefaultNormalizer
	}
	return &service{
		profiles:  profiles,
		teams:     teams,
		normalize: normalize,
		logger:    logger,
	}
}
