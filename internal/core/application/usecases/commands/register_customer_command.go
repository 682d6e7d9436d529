package commands

import (
	"errors"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a customer signing up. The phone
// number becomes the login identity after canonicalization, so "0812...",
// "62812..." and "812..." all register the same account.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	phone      kernel.Phone
	name       string
	password   string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	rawPhone string,
	name string,
	password string,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	phone, phoneErr := kernel.NewPhone(rawPhone)

	if err := errors.Join(
		customerID.Validate(),
		phoneErr,
		requireText(name, "name"),
		requirePassword(password),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	cmd.customerID = customerID
	cmd.phone = phone
	cmd.name = name
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the caller-chosen identifier for the new customer.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// Phone returns the canonical phone number.
func (c RegisterCustomerCommand) Phone() kernel.Phone { return c.phone }

// Name returns the customer's display name.
func (c RegisterCustomerCommand) Name() string { return c.name }

// Password returns the plaintext password for hashing.
func (c RegisterCustomerCommand) Password() string { return c.password }
