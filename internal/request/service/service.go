// Package service provides the membership-request lifecycle manager.
//
// It owns the capacity invariant on team membership: Accept is the only
// operation that mutates a team's member set, and it does so through a
// single serialized conditional read-modify-write keyed by team id.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamup/internal/notification/dispatcher"
	requestModel "github.com/festy23/teamup/internal/request/model"
	"github.com/festy23/teamup/internal/request/repository"
	teamModel "github.com/festy23/teamup/internal/team/model"
	teamRepository "github.com/festy23/teamup/internal/team/repository"
)

// Service defines the interface for membership-request lifecycle operations.
type Service interface {
	// CreateJoinRequest creates a PENDING request from a candidate to a
	// team owner.
	CreateJoinRequest(
		ctx context.Context,
		req *requestModel.CreateJoinRequestRequest,
	) (*requestModel.RequestResponse, error)

	// CreateInvite creates a PENDING invite from a team owner to a
	// candidate.
	CreateInvite(
		ctx context.Context,
		req *requestModel.CreateInviteRequest,
	) (*requestModel.RequestResponse, error)

	// Accept resolves a PENDING request, adding the candidate to the team
	// if the team still has room. Re-validation failures commit a REJECTED
	// status and are surfaced as the returned error alongside the response.
	Accept(ctx context.Context, requestID, actingUserID string) (*requestModel.RequestResponse, error)

	// Reject resolves a PENDING request without touching membership.
	Reject(ctx context.Context, requestID, actingUserID string) (*requestModel.RequestResponse, error)

	// Cancel deletes a PENDING request. Requester-only.
	Cancel(ctx context.Context, requestID, actingUserID string) error

	// ListIncoming returns the recipient's requests, newest first.
	ListIncoming(ctx context.Context, userID string) (*requestModel.IncomingResponse, error)

	// MarkRead marks one of the recipient's requests as read.
	MarkRead(ctx context.Context, requestID, userID string) error

	// MarkAllRead marks the recipient's whole request set as read.
	MarkAllRead(ctx context.Context, userID string) error

	// DeleteAll removes the recipient's whole request set.
	DeleteAll(ctx context.Context, userID string) error
}

type service struct {
	repo   repository.Repository
	teams  teamRepository.Repository
	db     *gorm.DB
	fanout *fanout
	logger *zap.SugaredLogger
}

// New creates a new request lifecycle service instance.
func New(
	repo repository.Repository,
	teams teamRepository.Repository,
	db *gorm.DB,
	d *dispatcher.Dispatcher,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		teams:  teams,
		db:     db,
		fanout: &fanout{dispatcher: d, logger: logger},
		logger: logger,
	}
}

// CreateJoinRequest creates a PENDING request from a candidate to the team
// owner. The capacity check here is best-effort; Accept re-validates.
func (s *service) CreateJoinRequest(
	ctx context.Context,
	req *requestModel.CreateJoinRequestRequest,
) (*requestModel.RequestResponse, error) {
	if req.UserID == "" {
		return nil, requestModel.ErrInvalidUserID
	}
	if req.TeamID == "" {
		return nil, requestModel.ErrInvalidTeamID
	}

	team, err := s.teams.GetByID(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	if err := s.checkJoinable(ctx, team, req.UserID); err != nil {
		return nil, err
	}

	request := &requestModel.MembershipRequest{
		RequestID:  uuid.NewString(),
		Kind:       requestModel.KindJoinRequest,
		FromUserID: req.UserID,
		ToUserID:   team.OwnerID,
		TeamID:     team.TeamID,
		TeamName:   team.TeamName,
		Message:    req.Message,
		Status:     requestModel.StatusPending,
	}

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	s.fanout.enqueueCreated(created)
	s.logger.Infow("join request created",
		"request_id", created.RequestID,
		"team_id", created.TeamID,
		"from_user_id", created.FromUserID,
	)
	return created.ToResponse(), nil
}

// CreateInvite creates a PENDING invite from the team owner to a candidate.
func (s *service) CreateInvite(
	ctx context.Context,
	req *requestModel.CreateInviteRequest,
) (*requestModel.RequestResponse, error) {
	if req.OwnerID == "" || req.UserID == "" {
		return nil, requestModel.ErrInvalidUserID
	}
	if req.TeamID == "" {
		return nil, requestModel.ErrInvalidTeamID
	}

	team, err := s.teams.GetByID(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	if team.OwnerID != req.OwnerID {
		return nil, requestModel.ErrNotTeamOwner
	}

	if err := s.checkJoinable(ctx, team, req.UserID); err != nil {
		return nil, err
	}

	request := &requestModel.MembershipRequest{
		RequestID:  uuid.NewString(),
		Kind:       requestModel.KindInvite,
		FromUserID: req.OwnerID,
		ToUserID:   req.UserID,
		TeamID:     team.TeamID,
		TeamName:   team.TeamName,
		Message:    req.Message,
		Status:     requestModel.StatusPending,
	}

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	s.fanout.enqueueCreated(created)
	s.logger.Infow("invite created",
		"request_id", created.RequestID,
		"team_id", created.TeamID,
		"to_user_id", created.ToUserID,
	)
	return created.ToResponse(), nil
}

// checkJoinable validates the creation-time preconditions for candidate
// joining team.
func (s *service) checkJoinable(ctx context.Context, team *teamModel.Team, candidateID string) error {
	if candidateID == team.OwnerID {
		return requestModel.ErrSelfRequest
	}

	isMember, err := s.teams.IsMember(ctx, team.TeamID, candidateID)
	if err != nil {
		return err
	}
	if isMember {
		return teamModel.ErrAlreadyMember
	}

	if team.MemberCount >= team.Capacity {
		return teamModel.ErrTeamFull
	}

	return nil
}

// ListIncoming returns the recipient's requests, newest first.
func (s *service) ListIncoming(
	ctx context.Context,
	userID string,
) (*requestModel.IncomingResponse, error) {
	if userID == "" {
		return nil, requestModel.ErrInvalidUserID
	}

	requests, err := s.repo.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]requestModel.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *requests[i].ToResponse())
	}

	return &requestModel.IncomingResponse{
		Requests: responses,
		Total:    len(responses),
	}, nil
}

// MarkRead marks one of the recipient's requests as read.
func (s *service) MarkRead(ctx context.Context, requestID, userID string) error {
	if requestID == "" {
		return requestModel.ErrInvalidRequestID
	}
	if userID == "" {
		return requestModel.ErrInvalidUserID
	}
	return s.repo.MarkRead(ctx, requestID, userID)
}

// MarkAllRead marks the recipient's whole request set as read.
func (s *service) MarkAllRead(ctx context.Context, userID string) error {
	if userID == "" {
		return requestModel.ErrInvalidUserID
	}
	return s.repo.MarkAllRead(ctx, userID)
}

// DeleteAll removes the recipient's whole request set.
func (s *service) DeleteAll(ctx context.Context, userID string) error {
	if userID == "" {
		return requestModel.ErrInvalidUserID
	}
	return s.repo.DeleteAllForRecipient(ctx, userID)
}
