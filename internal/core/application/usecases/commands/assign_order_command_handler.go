package commands

import (
	"context"
	"time"

	"kurirkan/internal/core/domain/services"
)

// AssignOrderCommandHandler executes the dispatch transaction: the order
// becomes Assigned, the driver becomes Busy, the queue ticket disappears,
// and both parties are notified. All of it commits atomically, so a busy
// driver or a non-pending order leaves every record unchanged.
type AssignOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(uowFactory DispatchUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = services.NewDispatcher().Assign(o, d, now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, d); err != nil {
		return err
	}
	if err = uow.QueueRepository().Remove(ctx, o.ID()); err != nil {
		return err
	}

	notifications, err := services.NewNotifier().DriverAssigned(o, d.ID(), now)
	if err != nil {
		return err
	}
	for _, n := range notifications {
		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
