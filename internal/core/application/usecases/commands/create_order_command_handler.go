package commands

import (
	"context"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/core/domain/model/queue"
	"kurirkan/internal/core/domain/services"
)

// CreateOrderCommandHandler handles order intake. In one transaction it
// creates the pending order, enqueues its dispatch ticket, and notifies the
// customer.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. The customer must exist; the
// order enters Pending status with a queue ticket at default priority.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	now := time.Now()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		kernel.NewOrderNumber(),
		cust.ID(),
		cust.Name(),
		cust.Phone(),
		cmd.ServiceType(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.Details(),
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	item, err := queue.NewItem(newOrder.ID(), queue.DefaultPriority, now)
	if err != nil {
		return err
	}
	if err = uow.QueueRepository().Add(ctx, item); err != nil {
		return err
	}

	created, err := services.NewNotifier().OrderCreated(newOrder, now)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
