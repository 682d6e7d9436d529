package commands

import (
	"context"
	"time"
)

// SetDriverDutyCommandHandler handles duty toggles. The domain rejects a
// toggle while the driver carries an active order.
type SetDriverDutyCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetDriverDutyCommandHandler creates a handler for duty toggles.
func NewSetDriverDutyCommandHandler(uowFactory DriverUoWFactory) SetDriverDutyCommandHandler {
	return SetDriverDutyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duty toggle command.
func (h SetDriverDutyCommandHandler) Handle(ctx context.Context, cmd SetDriverDutyCommand) error {
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

	if err = d.SetDuty(cmd.Status(), time.Now()); err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
