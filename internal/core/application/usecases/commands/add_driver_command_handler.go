package commands

import (
	"context"
	"fmt"
	"time"

	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/pkg/auth"
)

// AddDriverCommandHandler handles driver registration. The username must be
// unique; the repository rejects duplicates with a DuplicateCredentialError.
type AddDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewAddDriverCommandHandler creates a handler for driver registration.
func NewAddDriverCommandHandler(uowFactory DriverUoWFactory) AddDriverCommandHandler {
	return AddDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. The driver code is derived
// from the current fleet size ("DRV-001", "DRV-002", ...).
func (h AddDriverCommandHandler) Handle(ctx context.Context, cmd AddDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.DriverRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	code := fmt.Sprintf("DRV-%03d", len(existing)+1)

	newDriver, err := driver.NewDriver(
		cmd.DriverID(), code, cmd.Name(), cmd.Phone(),
		cmd.Username(), hash, cmd.IsAdmin(), time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
