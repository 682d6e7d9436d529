// Package queue contains the QueueItem value object: a pending-dispatch
// ticket for an order awaiting driver assignment.
package queue

import (
	"time"

	"kurirkan/internal/core/domain/model/kernel"
)

// DefaultPriority is assigned to items entering the queue normally.
// Higher values are dispatched first; equal priorities dispatch FIFO by
// arrival time.
const DefaultPriority = 1

// Item is a pending-dispatch ticket. Exactly one item exists per order
// while that order is pending; it is removed the instant the order leaves
// pending, whether by assignment or cancellation. Items are never mutated.
type Item struct {
	orderID  kernel.UUID
	priority int
	addedAt  time.Time
}

// NewItem creates a queue ticket for the given order.
func NewItem(orderID kernel.UUID, priority int, addedAt time.Time) (Item, error) {
	if err := orderID.Validate(); err != nil {
		return Item{}, err
	}
	return Item{orderID: orderID, priority: priority, addedAt: addedAt}, nil
}

// OrderID returns the referenced order's identifier.
func (i Item) OrderID() kernel.UUID { return i.orderID }

// Priority returns the dispatch priority (higher dispatches first).
func (i Item) Priority() int { return i.priority }

// AddedAt returns when the order entered the queue.
func (i Item) AddedAt() time.Time { return i.addedAt }

// Before reports whether this item should be dispatched ahead of other:
// by priority descending, then by arrival time ascending.
func (i Item) Before(other Item) bool {
	if i.priority != other.priority {
		return i.priority > other.priority
	}
	return i.addedAt.Before(other.addedAt)
}
