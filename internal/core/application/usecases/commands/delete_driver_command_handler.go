package commands

import (
	"context"

	"kurirkan/internal/core/domain/model/driver"
)

// DeleteDriverCommandHandler handles driver removal. A driver carrying an
// active order cannot be removed; the order has to reach a terminal status
// first so its driver reference never dangles.
type DeleteDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removal.
func NewDeleteDriverCommandHandler(uowFactory DriverUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if d.CurrentOrder() != nil {
		return driver.ErrDriverIsBusy
	}

	if err = uow.DriverRepository().Delete(ctx, d.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
