package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	notificationRepository "github.com/festy23/teamup/internal/notification/repository"
	requestModel "github.com/festy23/teamup/internal/request/model"
	"github.com/festy23/teamup/internal/request/repository"
	teamModel "github.com/festy23/teamup/internal/team/model"
	teamRepository "github.com/festy23/teamup/internal/team/repository"
)

// Accept resolves a PENDING request. The whole resolution runs in one
// transaction: the seat reservation (conditional UPDATE on the teams row),
// the member insert, the status transition and the fan-out record commit or
// roll back together.
//
// Re-validation failures (team gone, candidate already a member, team full)
// are expected outcomes, not I/O errors: they commit a REJECTED status plus
// a fan-out record and are returned to the caller together with the
// resolved request.
func (s *service) Accept(
	ctx context.Context,
	requestID, actingUserID string,
) (*requestModel.RequestResponse, error) {
	if requestID == "" {
		return nil, requestModel.ErrInvalidRequestID
	}
	if actingUserID == "" {
		return nil, requestModel.ErrInvalidUserID
	}

	var (
		resolved     *requestModel.MembershipRequest
		rejectReason error
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRequests := repository.New(tx)
		txTeams := teamRepository.New(tx)
		txNotifications := notificationRepository.New(tx)

		request, err := txRequests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != requestModel.StatusPending {
			return requestModel.ErrRequestNotPending
		}
		if request.ToUserID != actingUserID {
			return requestModel.ErrNotRecipient
		}

		memberID := request.MemberToAdd()

		// Re-validate against current team state at this instant.
		_, err = txTeams.GetByID(ctx, request.TeamID)
		switch {
		case errors.Is(err, teamModel.ErrTeamNotFound):
			rejectReason = teamModel.ErrTeamNotFound
		case err != nil:
			return err
		}

		if rejectReason == nil {
			isMember, memberErr := txTeams.IsMember(ctx, request.TeamID, memberID)
			if memberErr != nil {
				return memberErr
			}
			if isMember {
				rejectReason = teamModel.ErrAlreadyMember
			}
		}

		if rejectReason == nil {
			reserved, seatErr := txTeams.ReserveSeat(ctx, request.TeamID)
			if seatErr != nil {
				return seatErr
			}
			if !reserved {
				rejectReason = teamModel.ErrTeamFull
			}
		}

		if rejectReason != nil {
			if err := txRequests.UpdateStatus(ctx, requestID, requestModel.StatusRejected); err != nil {
				return err
			}
			request.Status = requestModel.StatusRejected
			if err := txNotifications.Create(ctx, s.fanout.record(request, actingUserID, rejectReason)); err != nil {
				return err
			}
			resolved = request
			return nil
		}

		if _, err := txTeams.AddMember(ctx, request.TeamID, memberID); err != nil {
			return err
		}
		if err := txRequests.UpdateStatus(ctx, requestID, requestModel.StatusAccepted); err != nil {
			return err
		}
		request.Status = requestModel.StatusAccepted
		if err := txNotifications.Create(ctx, s.fanout.record(request, actingUserID, nil)); err != nil {
			return err
		}
		resolved = request
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.fanout.enqueueResolved(resolved, actingUserID)

	if rejectReason != nil {
		s.logger.Infow("accept rejected on re-validation",
			"request_id", requestID,
			"reason", rejectReason,
		)
		return resolved.ToResponse(), rejectReason
	}

	s.logger.Infow("request accepted",
		"request_id", requestID,
		"team_id", resolved.TeamID,
		"member_id", resolved.MemberToAdd(),
	)
	return resolved.ToResponse(), nil
}

// Reject resolves a PENDING request without touching membership.
func (s *service) Reject(
	ctx context.Context,
	requestID, actingUserID string,
) (*requestModel.RequestResponse, error) {
	if requestID == "" {
		return nil, requestModel.ErrInvalidRequestID
	}
	if actingUserID == "" {
		return nil, requestModel.ErrInvalidUserID
	}

	var resolved *requestModel.MembershipRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRequests := repository.New(tx)
		txNotifications := notificationRepository.New(tx)

		request, err := txRequests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != requestModel.StatusPending {
			return requestModel.ErrRequestNotPending
		}
		if request.ToUserID != actingUserID {
			return requestModel.ErrNotRecipient
		}

		if err := txRequests.UpdateStatus(ctx, requestID, requestModel.StatusRejected); err != nil {
			return err
		}
		request.Status = requestModel.StatusRejected

		if err := txNotifications.Create(ctx, s.fanout.record(request, actingUserID, nil)); err != nil {
			return err
		}

		resolved = request
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.fanout.enqueueResolved(resolved, actingUserID)
	s.logger.Infow("request rejected",
		"request_id", requestID,
		"team_id", resolved.TeamID,
	)
	return resolved.ToResponse(), nil
}

// Cancel deletes a PENDING request entirely. Only the original requester
// may cancel; the status is not retained.
func (s *service) Cancel(ctx context.Context, requestID, actingUserID string) error {
	if requestID == "" {
		return requestModel.ErrInvalidRequestID
	}
	if actingUserID == "" {
		return requestModel.ErrInvalidUserID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRequests := repository.New(tx)

		request, err := txRequests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.FromUserID != actingUserID {
			return requestModel.ErrNotRequester
		}
		if request.Status != requestModel.StatusPending {
			return requestModel.ErrRequestNotPending
		}

		return txRequests.Delete(ctx, requestID)
	})
}
