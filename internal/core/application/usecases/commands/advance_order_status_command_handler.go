package commands

import (
	"context"
	"errors"
	"time"

	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/core/domain/services"
	"kurirkan/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler handles lifecycle transitions after
// assignment, plus cancellation at any non-terminal point.
//
// Side effects handled in the same transaction:
//   - a terminal transition releases the assigned driver (earnings accrue
//     on delivery only)
//   - cancelling a still-pending order removes its queue ticket
//   - the customer is notified about the change
type AdvanceOrderStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for lifecycle transitions.
func NewAdvanceOrderStatusCommandHandler(uowFactory DispatchUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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
	wasPending := o.Status() == order.Pending

	var assigned *driver.Driver
	if id := o.DriverID(); id != nil {
		assigned, err = uow.DriverRepository().Get(ctx, *id)
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	now := time.Now()
	if cmd.Next().IsTerminal() {
		err = services.NewDispatcher().Complete(o, assigned, cmd.Next(), cmd.Note(), now)
	} else {
		err = o.Advance(cmd.Next(), cmd.Note(), now)
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if assigned != nil && cmd.Next().IsTerminal() {
		if err = uow.DriverRepository().Update(ctx, assigned); err != nil {
			return err
		}
	}
	if wasPending {
		if err = uow.QueueRepository().Remove(ctx, o.ID()); err != nil {
			return err
		}
	}

	changed, err := services.NewNotifier().StatusChanged(o, now)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, changed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
