package commands

import (
	"errors"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/errs"
	"kurirkan/internal/pkg/guard"
)

var (
	ErrAddDriverCommandIsNotConstructed = errors.New(
		"AddDriverCommand must be created via NewAddDriverCommand constructor",
	)
	ErrPasswordIsTooShort = errs.NewValueIsInvalidError("password must be at least 6 characters")
)

const minPasswordLength = 6

// AddDriverCommand represents a request to register a new driver. The
// plaintext password travels only inside the command; the handler derives
// the bcrypt hash before anything is persisted.
type AddDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string
	phone    kernel.Phone
	username string
	password string
	isAdmin  bool

	guard guard.ConstructorGuard
}

// NewAddDriverCommand creates a command to register a driver.
// The raw phone is canonicalized here; the driver code is generated during
// handling.
func NewAddDriverCommand(
	driverID kernel.UUID,
	name string,
	rawPhone string,
	username string,
	password string,
	isAdmin bool,
) (AddDriverCommand, error) {
	cmd := AddDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	phone, phoneErr := kernel.NewPhone(rawPhone)

	if err := errors.Join(
		driverID.Validate(),
		phoneErr,
		requireText(name, "name"),
		requireText(username, "username"),
		requirePassword(password),
	); err != nil {
		return AddDriverCommand{}, err
	}

	cmd.driverID = driverID
	cmd.name = name
	cmd.phone = phone
	cmd.username = username
	cmd.password = password
	cmd.isAdmin = isAdmin
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDriverCommand) Validate() error {
	return c.guard.Validate(ErrAddDriverCommandIsNotConstructed)
}

// DriverID returns the caller-chosen identifier for the new driver.
func (c AddDriverCommand) DriverID() kernel.UUID { return c.driverID }

// Name returns the driver's display name.
func (c AddDriverCommand) Name() string { return c.name }

// Phone returns the canonical phone number.
func (c AddDriverCommand) Phone() kernel.Phone { return c.phone }

// Username returns the login username.
func (c AddDriverCommand) Username() string { return c.username }

// Password returns the plaintext password for hashing.
func (c AddDriverCommand) Password() string { return c.password }

// IsAdmin reports whether the new driver gets administrative rights.
func (c AddDriverCommand) IsAdmin() bool { return c.isAdmin }

func requireText(value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requirePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}
	return nil
}
