// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamup/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetTeamStatistics returns aggregate numbers over all teams.
	GetTeamStatistics(ctx context.Context) (*model.TeamStatistics, error)

	// GetRequestStatistics returns aggregate numbers over membership requests.
	GetRequestStatistics(ctx context.Context) (*model.RequestStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetTeamStatistics returns aggregate numbers over all teams.
func (r *repository) GetTeamStatistics(ctx context.Context) (*model.TeamStatistics, error) {
	var result struct {
		TotalTeams      int64   `gorm:"column:total_teams"`
		FullTeams       int64   `gorm:"column:full_teams"`
		TotalMembers    int64   `gorm:"column:total_members"`
		AverageFillRate float64 `gorm:"column:avg_fill_rate"`
	}

	err := r.db.WithContext(ctx).
		Table("teams").
		Select(`
			COUNT(*) as total_teams,
			SUM(CASE WHEN member_count >= capacity THEN 1 ELSE 0 END) as full_teams,
			COALESCE(SUM(member_count), 0) as total_members,
			COALESCE(AVG(CAST(member_count AS REAL) / capacity), 0) as avg_fill_rate
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetTeamStatistics database error", "error", err)
		return nil, err
	}

	return &model.TeamStatistics{
		TotalTeams:      int(result.TotalTeams),
		FullTeams:       int(result.FullTeams),
		TotalMembers:    int(result.TotalMembers),
		AverageFillRate: result.AverageFillRate,
	}, nil
}

// GetRequestStatistics returns aggregate numbers over membership requests.
func (r *repository) GetRequestStatistics(ctx context.Context) (*model.RequestStatistics, error) {
	var result struct {
		TotalRequests    int64 `gorm:"column:total_requests"`
		PendingRequests  int64 `gorm:"column:pending_requests"`
		AcceptedRequests int64 `gorm:"column:accepted_requests"`
		RejectedRequests int64 `gorm:"column:rejected_requests"`
	}

	err := r.db.WithContext(ctx).
		Table("membership_requests").
		Select(`
			COUNT(*) as total_requests,
			SUM(CASE WHEN status = 'PENDING' THEN 1 ELSE 0 END) as pending_requests,
			SUM(CASE WHEN status = 'ACCEPTED' THEN 1 ELSE 0 END) as accepted_requests,
			SUM(CASE WHEN status = 'REJECTED' THEN 1 ELSE 0 END) as rejected_requests
		`).
		Scan(&result).Error

	if err != nil {
		r.logger.Errorw("GetRequestStatistics database error", "error", err)
		return nil, err
	}

	stats := &model.RequestStatistics{
		TotalRequests:    int(result.TotalRequests),
		PendingRequests:  int(result.PendingRequests),
		AcceptedRequests: int(result.AcceptedRequests),
		RejectedRequests: int(result.RejectedRequests),
	}

	resolved := stats.AcceptedRequests + stats.RejectedRequests
	if resolved > 0 {
		stats.AcceptanceRate = float64(stats.AcceptedRequests) / float64(resolved)
	}

	return stats, nil
}
