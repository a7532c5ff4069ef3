package repository

import (
	"context"

	"github.com/jhoicas/straydog-api/internal/domain/entity"
	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// NotificationRepository is the persistence port for Notification.
type NotificationRepository interface {
	pagination.Collection[*entity.Notification]

	Create(ctx context.Context, n *entity.Notification) error
	// MarkRead marks one notification of userID as read. Returns nil when it does not exist.
	MarkRead(ctx context.Context, id, userID string) (*entity.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
