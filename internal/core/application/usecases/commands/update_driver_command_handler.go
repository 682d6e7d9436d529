package commands

import (
	"context"
	"time"

	"kurirkan/internal/pkg/auth"
)

// UpdateDriverCommandHandler handles partial driver profile updates.
type UpdateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver updates.
func NewUpdateDriverCommandHandler(uowFactory DriverUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
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

	now := time.Now()
	if name := cmd.Name(); name != nil {
		if err = d.SetName(*name, now); err != nil {
			return err
		}
	}
	if phone := cmd.Phone(); phone != nil {
		if err = d.SetPhone(*phone, now); err != nil {
			return err
		}
	}
	if rating := cmd.Rating(); rating != nil {
		if err = d.SetRating(*rating, now); err != nil {
			return err
		}
	}
	if password := cmd.Password(); password != nil {
		hash, hashErr := auth.HashPassword(*password)
		if hashErr != nil {
			return hashErr
		}
		if err = d.SetPasswordHash(hash, now); err != nil {
			return err
		}
	}

	if err = uow.DriverRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
