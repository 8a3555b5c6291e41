package repository

import (
	"context"
	"fmt"

	"salon-booking/internal/data/entity"
	"salon-booking/pkg/database"

	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindRecent(ctx context.Context, limit int) ([]*entity.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkAllRead(ctx context.Context) error
}

type notificationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewNotificationRepository(db database.PgxIface, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "notification")),
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, title, message, kind, amount_cents, phone, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		notification.ID,
		notification.Title,
		notification.Message,
		notification.Kind,
		notification.AmountCents,
		notification.Phone,
		notification.IsRead,
		notification.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create notification",
			zap.Error(err),
			zap.String("title", notification.Title),
		)
		return fmt.Errorf("create notification %q: %w", notification.Title, err)
	}

	return nil
}

func (r *notificationRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT id, title, message, kind, amount_cents, phone, is_read, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find notifications", zap.Error(err))
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Message,
			&n.Kind,
			&n.AmountCents,
			&n.Phone,
			&n.IsRead,
			&n.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan notification row", zap.Error(err))
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		notifications = append(notifications, &n)
	}

	return notifications, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE is_read = FALSE`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count unread notifications", zap.Error(err))
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAllRead clears the whole shared inbox; it is not scoped per
// operator.
func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to mark notifications read", zap.Error(err))
		return fmt.Errorf("mark notifications read: %w", err)
	}

	return nil
}
