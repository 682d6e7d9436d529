package commands

import (
	"context"
	"time"

	"kurirkan/internal/core/domain/model/customer"
	"kurirkan/internal/pkg/auth"
)

// RegisterCustomerCommandHandler handles customer sign-up. The canonical
// phone must be unique; the repository rejects duplicates with a
// DuplicateCredentialError.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer sign-up.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := auth.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	newCustomer, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.Phone(), cmd.Name(), hash, time.Now(),
	)
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

	if err = uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
