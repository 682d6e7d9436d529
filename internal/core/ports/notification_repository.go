package ports

import (
	"context"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// records.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, entity *notification.Notification) error

	// Update persists changes to an existing notification.
	// Returns ObjectNotFoundError if the notification does not exist.
	Update(ctx context.Context, entity *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	// Returns ObjectNotFoundError if the notification does not exist.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllByUser retrieves every notification addressed to the user,
	// newest first.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error)

	// DeleteReadBefore removes read notifications created before the cutoff.
	// Returns how many were removed.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int, error)
}
