package storage

import (
	"context"
	"sort"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/queue"
)

// queueRepository implements ports.QueueRepository over the staging area.
// The queue slice is copied on first write within the transaction.
type queueRepository struct {
	uow *unitOfWork
}

func (r *queueRepository) Add(_ context.Context, item queue.Item) error {
	if err := item.OrderID().Validate(); err != nil {
		return err
	}

	items := append([]queue.Item(nil), r.uow.queueView()...)
	r.uow.stagedQueue = append(items, item)
	r.uow.queueDirty = true
	return nil
}

func (r *queueRepository) Remove(_ context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	view := r.uow.queueView()
	items := make([]queue.Item, 0, len(view))
	removed := false
	for _, item := range view {
		if item.OrderID().IsEqual(orderID) {
			removed = true
			continue
		}
		items = append(items, item)
	}

	if removed {
		r.uow.stagedQueue = items
		r.uow.queueDirty = true
	}
	return nil
}

func (r *queueRepository) GetAll(_ context.Context) ([]queue.Item, error) {
	items := append([]queue.Item(nil), r.uow.queueView()...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Before(items[j])
	})
	return items, nil
}
