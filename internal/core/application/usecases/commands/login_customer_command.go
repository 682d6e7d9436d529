package commands

import (
	"errors"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/guard"
)

var ErrLoginCustomerCommandIsNotConstructed = errors.New(
	"LoginCustomerCommand must be created via NewLoginCustomerCommand constructor",
)

// LoginCustomerCommand represents a customer authenticating by phone and
// password.
type LoginCustomerCommand struct { //nolint:recvcheck //using for validation
	phone    kernel.Phone
	password string

	guard guard.ConstructorGuard
}

// NewLoginCustomerCommand creates a login command. The raw phone is
// canonicalized so any accepted spelling of the number logs in.
func NewLoginCustomerCommand(rawPhone, password string) (LoginCustomerCommand, error) {
	cmd := LoginCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	phone, phoneErr := kernel.NewPhone(rawPhone)

	if err := errors.Join(
		phoneErr,
		requireText(password, "password"),
	); err != nil {
		return LoginCustomerCommand{}, err
	}

	cmd.phone = phone
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCustomerCommand) Validate() error {
	return c.guard.Validate(ErrLoginCustomerCommandIsNotConstructed)
}

// Phone returns the canonical phone number.
func (c LoginCustomerCommand) Phone() kernel.Phone { return c.phone }

// Password returns the plaintext password to verify.
func (c LoginCustomerCommand) Password() string { return c.password }
