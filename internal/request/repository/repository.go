// Package repository provides data access layer for request module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	requestModel "github.com/festy23/teamup/internal/request/model"
)

// Repository defines the interface for membership request data access.
type Repository interface {
	// Create inserts a new membership request.
	Create(ctx context.Context, request *requestModel.MembershipRequest) (*requestModel.MembershipRequest, error)

	// GetByID finds a request by request_id.
	GetByID(ctx context.Context, requestID string) (*requestModel.MembershipRequest, error)

	// UpdateStatus transitions a PENDING request to a terminal status.
	// The UPDATE is guarded by status = PENDING; a request that reached a
	// terminal state concurrently yields ErrRequestNotPending.
	UpdateStatus(ctx context.Context, requestID string, status requestModel.Status) error

	// Delete removes a request row entirely.
	Delete(ctx context.Context, requestID string) error

	// ListByRecipient returns the recipient's requests in descending
	// creation-time order.
	ListByRecipient(ctx context.Context, userID string) ([]requestModel.MembershipRequest, error)

	// MarkRead marks one of the recipient's requests as read.
	MarkRead(ctx context.Context, requestID, userID string) error

	// MarkAllRead marks the recipient's whole request set as read in a
	// single statement.
	MarkAllRead(ctx context.Context, userID string) error

	// DeleteAllForRecipient removes the recipient's whole request set in a
	// single statement.
	DeleteAllForRecipient(ctx context.Context, userID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new request repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new membership request.
func (r *repository) Create(
	ctx context.Context,
	request *requestModel.MembershipRequest,
) (*requestModel.MembershipRequest, error) {
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}

	return request, nil
}

// GetByID finds a request by request_id.
func (r *repository) GetByID(
	ctx context.Context,
	requestID string,
) (*requestModel.MembershipRequest, error) {
	var request requestModel.MembershipRequest
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		First(&request).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requestModel.ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// UpdateStatus transitions a PENDING request to a terminal status.
func (r *repository) UpdateStatus(
	ctx context.Context,
	requestID string,
	status requestModel.Status,
) error {
	if !requestModel.StatusPending.CanTransition(status) {
		return requestModel.ErrRequestNotPending
	}

	result := r.db.WithContext(ctx).
		Model(&requestModel.MembershipRequest{}).
		Where("request_id = ? AND status = ?", requestID, requestModel.StatusPending).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Either the row vanished or it is already terminal.
		if _, err := r.GetByID(ctx, requestID); err != nil {
			return err
		}
		return requestModel.ErrRequestNotPending
	}

	return nil
}

// Delete removes a request row entirely.
func (r *repository) Delete(ctx context.Context, requestID string) error {
	result := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Delete(&requestModel.MembershipRequest{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return requestModel.ErrRequestNotFound
	}

	return nil
}

// ListByRecipient returns the recipient's requests, newest first.
func (r *repository) ListByRecipient(
	ctx context.Context,
	userID string,
) ([]requestModel.MembershipRequest, error) {
	var requests []requestModel.MembershipRequest

	err := r.db.WithContext(ctx).
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}

// MarkRead marks one of the recipient's requests as read.
func (r *repository) MarkRead(ctx context.Context, requestID, userID string) error {
	result := r.db.WithContext(ctx).
		Model(&requestModel.MembershipRequest{}).
		Where("request_id = ? AND to_user_id = ?", requestID, userID).
		Update("read", true)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return requestModel.ErrRequestNotFound
	}

	return nil
}

// MarkAllRead marks the recipient's whole request set as read.
func (r *repository) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&requestModel.MembershipRequest{}).
		Where("to_user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

// DeleteAllForRecipient removes the recipient's whole request set.
func (r *repository) DeleteAllForRecipient(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("to_user_id = ?", userID).
		Delete(&requestModel.MembershipRequest{}).Error
}
