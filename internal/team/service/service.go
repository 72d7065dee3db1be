// Package service provides business logic layer for team module.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/festy23/teamup/internal/team/model"
	"github.com/festy23/teamup/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a new team with the owner pre-inserted as a member.
	CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// GetTeam returns a team with its members.
	GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error)

	// ListTeams returns all teams without member lists.
	ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// CreateTeam creates a new team in a transaction. The owner becomes the
// first member, so member_count starts at 1.
func (s *service) CreateTeam(
	ctx context.Context,
	req *teamModel.CreateTeamRequest,
) (*teamModel.TeamResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	team := &teamModel.Team{
		TeamID:         uuid.NewString(),
		TeamName:       req.TeamName,
		EventName:      req.EventName,
		Category:       req.Category,
		RequiredSkills: req.RequiredSkills,
		Capacity:       req.Capacity,
		MemberCount:    1,
		OwnerID:        req.OwnerID,
	}

	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		created, err := txRepo.Create(ctx, team)
		if err != nil {
			return err
		}

		if _, err := txRepo.AddMember(ctx, created.TeamID, created.OwnerID); err != nil {
			return err
		}

		members, err := txRepo.GetMembers(ctx, created.TeamID)
		if err != nil {
			return err
		}

		result = created.ToResponse(members)
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created",
		"team_id", result.TeamID,
		"owner_id", result.OwnerID,
		"capacity", result.Capacity,
	)
	return result, nil
}

// validateCreateRequest validates the create team request.
func validateCreateRequest(req *teamModel.CreateTeamRequest) error {
	if req.TeamName == "" {
		return teamModel.ErrInvalidTeamName
	}
	if req.EventName == "" {
		return teamModel.ErrInvalidEventName
	}
	if req.Category == "" {
		return teamModel.ErrInvalidCategory
	}
	if req.Capacity <= 0 {
		return teamModel.ErrInvalidCapacity
	}
	if req.OwnerID == "" {
		return teamModel.ErrInvalidOwnerID
	}
	return nil
}

// GetTeam returns a team with its members.
func (s *service) GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error) {
	if teamID == "" {
		return nil, teamModel.ErrTeamNotFound
	}

	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.GetMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return team.ToResponse(members), nil
}

// ListTeams returns all teams without member lists.
func (s *service) ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *teams[i].ToResponse(nil))
	}

	return responses, nil
}
