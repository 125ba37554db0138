package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"saral-seva-backend/internal/models"
)

// NotificationRepository handles the in-portal notification inbox.
type NotificationRepository struct {
	db *DB
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification for a citizen.
func (r *NotificationRepository) Create(ctx context.Context, n *models.NotificationCreate) (*models.Notification, error) {
	nType := n.Type
	if nType == "" {
		nType = models.NotificationTypeGeneral
	}

	ref := uuid.NewString()

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (ref, profile_id, title, body, type, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, false, $6)
		RETURNING id`,
		ref, n.ProfileID, n.Title, n.Body, string(nType), time.Now().UTC(),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return r.GetByRef(ctx, ref)
}

// GetByRef retrieves a notification by its reference.
func (r *NotificationRepository) GetByRef(ctx context.Context, ref string) (*models.Notification, error) {
	query := `
		SELECT id, ref, profile_id, title, body, type, is_read, created_at
		FROM notifications
		WHERE ref = $1`

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, ref))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return n, nil
}

// ListByProfile retrieves a citizen's notifications, newest first.
// unreadOnly narrows to unread ones.
func (r *NotificationRepository) ListByProfile(ctx context.Context, profileID int64, unreadOnly bool) ([]*models.Notification, error) {
	query := `
		SELECT id, ref, profile_id, title, body, type, is_read, created_at
		FROM notifications
		WHERE profile_id = $1`
	if unreadOnly {
		query += " AND is_read = false"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead flags a notification as read.
func (r *NotificationRepository) MarkRead(ctx context.Context, ref string) error {
	affected, err := r.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = true WHERE ref = $1", ref)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var n models.Notification
	var nType string

	err := row.Scan(
		&n.ID,
		&n.Ref,
		&n.ProfileID,
		&n.Title,
		&n.Body,
		&nType,
		&n.IsRead,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	n.Type = models.NotificationType(nType)
	return &n, nil
}
