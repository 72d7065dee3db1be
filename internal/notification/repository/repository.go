// Package repository provides data access layer for notification module.
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	notificationModel "github.com/festy23/teamup/internal/notification/model"
)

// Repository defines the interface for notification data access operations.
type Repository interface {
	// Create inserts a notification record.
	Create(ctx context.Context, notification *notificationModel.Notification) error

	// ListByRecipient returns a recipient's notifications, newest first.
	ListByRecipient(ctx context.Context, userID string) ([]notificationModel.Notification, error)

	// MarkAllRead marks every notification of the recipient as read in a
	// single statement.
	MarkAllRead(ctx context.Context, userID string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new notification repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a notification record.
func (r *repository) Create(ctx context.Context, notification *notificationModel.Notification) error {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(notification).Error
}

// ListByRecipient returns a recipient's notifications, newest first.
func (r *repository) ListByRecipient(
	ctx context.Context,
	userID string,
) ([]notificationModel.Notification, error) {
	var notifications []notificationModel.Notification

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error

	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkAllRead marks every notification of the recipient as read.
func (r *repository) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&notificationModel.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
