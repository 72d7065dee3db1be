// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/teamup/internal/statistics/model"
	"github.com/festy23/teamup/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetTeamStatistics returns aggregate numbers over all teams.
	GetTeamStatistics(ctx context.Context) (*model.TeamStatisticsResponse, error)

	// GetRequestStatistics returns aggregate numbers over membership requests.
	GetRequestStatistics(ctx context.Context) (*model.RequestStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetTeamStatistics returns aggregate numbers over all teams.
func (s *service) GetTeamStatistics(ctx context.Context) (*model.TeamStatisticsResponse, error) {
	stats, err := s.repo.GetTeamStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetTeamStatistics failed", "error", err)
		return nil, err
	}

	return &model.TeamStatisticsResponse{Statistics: *stats}, nil
}

// GetRequestStatistics returns aggregate numbers over membership requests.
func (s *service) GetRequestStatistics(ctx context.Context) (*model.RequestStatisticsResponse, error) {
	stats, err := s.repo.GetRequestStatistics(ctx)
	if err != nil {
		s.logger.Errorw("GetRequestStatistics failed", "error", err)
		return nil, err
	}

	return &model.RequestStatisticsResponse{Statistics: *stats}, nil
}
