package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/velora-app/velora-server/internal/db"
)

// NotificationRepository provides data access methods for the
// append-only notification feed.
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new repository bound to the given
// DB connection.
func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: database}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *NotificationRepository) WithTx(tx *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: tx}
}

// Create appends a notification row. Rows are never updated afterwards
// except for the is_read flag.
func (r *NotificationRepository) Create(ctx context.Context, n *db.Notification) error {
	if n.Priority == "" {
		n.Priority = db.PriorityMedium
	}
	return r.db.WithContext(ctx).Create(n).Error
}

// ListForUser returns the user's notification feed in default order:
// unread before read, then priority high > medium > low, then most
// recent first.
func (r *NotificationRepository) ListForUser(ctx context.Context, userID uint64, limit int) ([]db.Notification, error) {
	var notifications []db.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_read ASC").
		Order("CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead flips the is_read flag on one of the user's notifications.
// Returns false when the row does not exist or belongs to someone else.
func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, userID uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Notification{}).
		Where("id = ? AND user_id = ? AND is_read = ?", notificationID, userID, false).
		Update("is_read", true)
	return res.RowsAffected > 0, res.Error
}

// CountUnread counts the user's unread notifications.
func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
