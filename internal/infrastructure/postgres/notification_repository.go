package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

var notificationFields = map[string]string{
	"id":        "id",
	"userId":    "user_id",
	"type":      "type",
	"read":      "read",
	"createdAt": "created_at",
}

// NotificationRepo implements repository.NotificationRepository on PostgreSQL.
type NotificationRepo struct {
	*Table[entity.Notification]
}

// NewNotificationRepository builds the notifications adapter.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{Table: NewTable[entity.Notification](q, "notifications", notificationFields)}
}

// Create inserts a notification.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, read, related_entity_id,
			related_entity_type, read_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.Read, n.RelatedEntityID,
		n.RelatedEntityType, n.ReadAt, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// MarkRead flags one notification of userID as read.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID string) (*entity.Notification, error) {
	n, err := r.One(ctx, `
		UPDATE notifications SET read = TRUE, read_at = COALESCE(read_at, now()), updated_at = now()
		WHERE id = $1 AND user_id = $2 RETURNING *`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}

// MarkAllRead flags every unread notification of userID.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE notifications SET read = TRUE, read_at = now(), updated_at = now()
		WHERE user_id = $1 AND NOT read`, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}
