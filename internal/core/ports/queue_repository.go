package ports

import (
	"context"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/queue"
)

// QueueRepository defines the persistence contract for the pending-dispatch
// queue. At most one item exists per order.
type QueueRepository interface {
	// Add enqueues a dispatch ticket for a pending order.
	Add(ctx context.Context, item queue.Item) error

	// Remove deletes the ticket for the order. Removing an order that is
	// not queued is a no-op.
	Remove(ctx context.Context, orderID kernel.UUID) error

	// GetAll retrieves every queued ticket in dispatch order: priority
	// descending, then arrival time ascending.
	GetAll(ctx context.Context) ([]queue.Item, error)
}
