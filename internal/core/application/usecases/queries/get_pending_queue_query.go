package queries

import (
	"errors"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/guard"
)

var ErrGetPendingQueueQueryIsNotConstructed = errors.New(
	"GetPendingQueueQuery must be created via NewGetPendingQueueQuery constructor",
)

// GetPendingQueueQuery retrieves the dispatch queue in the order drivers
// should be offered work: priority descending, then arrival time ascending.
type GetPendingQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingQueueQuery creates a query for the pending dispatch queue.
func NewGetPendingQueueQuery() GetPendingQueueQuery {
	return GetPendingQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingQueueQueryIsNotConstructed)
}

// GetPendingQueueQueryResponse is one queue entry joined with its order.
type GetPendingQueueQueryResponse struct {
	OrderID       kernel.UUID
	OrderNumber   string
	CustomerName  string
	ServiceType   string
	PickupAddress string
	Priority      int
	AddedAt       time.Time
}
