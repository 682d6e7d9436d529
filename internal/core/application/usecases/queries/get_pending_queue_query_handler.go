package queries

import (
	"context"
	"errors"

	"kurirkan/internal/pkg/errs"
)

// GetPendingQueueQueryHandler reads the dispatch queue joined with order
// summaries. A ticket whose order has vanished is skipped rather than
// failing the whole listing.
type GetPendingQueueQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetPendingQueueQueryHandler creates a handler for queue listings.
func NewGetPendingQueueQueryHandler(uowFactory ReadUoWFactory) GetPendingQueueQueryHandler {
	return GetPendingQueueQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. Entries come back in dispatch order.
func (h GetPendingQueueQueryHandler) Handle(
	ctx context.Context,
	query GetPendingQueueQuery,
) ([]GetPendingQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := uow.QueueRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]GetPendingQueueQueryResponse, 0, len(items))
	for _, item := range items {
		o, getErr := uow.OrderRepository().Get(ctx, item.OrderID())
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			continue
		}
		if getErr != nil {
			return nil, getErr
		}

		entries = append(entries, GetPendingQueueQueryResponse{
			OrderID:       o.ID(),
			OrderNumber:   o.OrderNumber().String(),
			CustomerName:  o.CustomerName(),
			ServiceType:   o.ServiceType().String(),
			PickupAddress: o.PickupAddress(),
			Priority:      item.Priority(),
			AddedAt:       item.AddedAt(),
		})
	}

	return entries, nil
}
