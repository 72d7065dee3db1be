// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	teamModel "github.com/festy23/teamup/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create creates a new team row.
	Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)

	// GetByID finds a team by team_id.
	GetByID(ctx context.Context, teamID string) (*teamModel.Team, error)

	// List returns all teams ordered by creation time.
	List(ctx context.Context) ([]teamModel.Team, error)

	// GetMembers returns team members in insertion order.
	GetMembers(ctx context.Context, teamID string) ([]teamModel.Member, error)

	// IsMember reports whether userID is a member of the team.
	IsMember(ctx context.Context, teamID, userID string) (bool, error)

	// ListMemberTeamIDs returns ids of teams the user belongs to.
	ListMemberTeamIDs(ctx context.Context, userID string) ([]string, error)

	// ReserveSeat atomically claims one free slot on the team:
	// a conditional UPDATE guarded by member_count < capacity.
	// Returns false when the team is full or does not exist.
	ReserveSeat(ctx context.Context, teamID string) (bool, error)

	// AddMember inserts a membership row. Must be called in the same
	// transaction as ReserveSeat so a rollback releases the seat.
	AddMember(ctx context.Context, teamID, userID string) (*teamModel.Member, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new team row.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

// GetByID finds a team by team_id.
func (r *repository) GetByID(ctx context.Context, teamID string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// List returns all teams ordered by creation time.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team

	err := r.db.WithContext(ctx).
		Order("created_at ASC, team_id ASC").
		Find(&teams).Error

	if err != nil {
		return nil, err
	}

	return teams, nil
}

// GetMembers returns team members in insertion order.
func (r *repository) GetMembers(ctx context.Context, teamID string) ([]teamModel.Member, error) {
	var members []teamModel.Member

	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("id ASC").
		Find(&members).Error

	if err != nil {
		return nil, err
	}

	return members, nil
}

// IsMember reports whether userID is a member of the team.
func (r *repository) IsMember(ctx context.Context, teamID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.Member{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListMemberTeamIDs returns ids of teams the user belongs to.
func (r *repository) ListMemberTeamIDs(ctx context.Context, userID string) ([]string, error) {
	var teamIDs []string

	err := r.db.WithContext(ctx).
		Model(&teamModel.Member{}).
		Where("user_id = ?", userID).
		Pluck("team_id", &teamIDs).Error

	if err != nil {
		return nil, err
	}

	return teamIDs, nil
}

// ReserveSeat atomically claims one free slot on the team. The conditional
// UPDATE is the single serialized read-modify-write keyed by team id:
// concurrent callers racing for the last slot resolve on the row lock, and
// exactly one sees an affected row.
func (r *repository) ReserveSeat(ctx context.Context, teamID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("team_id = ? AND member_count < capacity", teamID).
		Updates(map[string]interface{}{
			"member_count": gorm.Expr("member_count + 1"),
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// AddMember inserts a membership row.
func (r *repository) AddMember(ctx context.Context, teamID, userID string) (*teamModel.Member, error) {
	member := &teamModel.Member{
		TeamID:   teamID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}

	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
			return nil, teamModel.ErrAlreadyMember
		}
		return nil, err
	}

	return member, nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
