package storage

import (
	"context"
	"sort"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/pkg/errs"
)

// orderRepository implements ports.OrderRepository over the staging area.
type orderRepository struct {
	uow *unitOfWork
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.stagedOrders[aggregate.ID().String()] = aggregate.Clone()
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, staged := r.uow.stagedOrders[key]; !staged {
		if _, exists := r.uow.state.orders[key]; !exists {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
	}

	r.uow.stagedOrders[key] = aggregate.Clone()
	return nil
}

func (r *orderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if o, ok := r.uow.stagedOrders[id.String()]; ok {
		return o.Clone(), nil
	}
	if o, ok := r.uow.state.orders[id.String()]; ok {
		return o.Clone(), nil
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

func (r *orderRepository) GetAllByCustomer(_ context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	orders := r.collect(func(o *order.Order) bool {
		return o.CustomerID().IsEqual(customerID)
	})
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders, nil
}

func (r *orderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	orders := r.collect(func(o *order.Order) bool {
		return o.Status() == status
	})
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().Before(orders[j].CreatedAt())
	})
	return orders, nil
}

// collect merges state and staged orders, staged winning, and clones every
// match so callers never alias committed aggregates.
func (r *orderRepository) collect(match func(*order.Order) bool) []*order.Order {
	orders := make([]*order.Order, 0)
	for id, o := range r.uow.state.orders {
		if _, staged := r.uow.stagedOrders[id]; staged {
			continue
		}
		if match(o) {
			orders = append(orders, o.Clone())
		}
	}
	for _, o := range r.uow.stagedOrders {
		if match(o) {
			orders = append(orders, o.Clone())
		}
	}
	return orders
}
