package postgres

import (
	"context"
	"fmt"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/pkg/database"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// NotificationRepository is the PostgreSQL implementation of repository.NotificationRepository.
type NotificationRepository struct {
	db database.DBTX
}

// NewNotificationRepository creates a notification repository over the given querier.
func NewNotificationRepository(db database.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, kind, message string) error {
	query := `INSERT INTO notifications (kind, message) VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, query, kind, message); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListUnread(ctx context.Context) ([]domain.Notification, error) {
	query := `
		SELECT id, kind, message, is_read, created_at
		FROM notifications
		WHERE NOT is_read
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Kind, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
