package notification

import (
	"context"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	Recent(ctx context.Context, limit int) ([]*Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
