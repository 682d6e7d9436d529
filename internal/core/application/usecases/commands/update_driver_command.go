package commands

import (
	"errors"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/guard"
)

var (
	ErrUpdateDriverCommandIsNotConstructed = errors.New(
		"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one field must be provided")
)

// UpdateDriverCommand represents a partial update of a driver's profile.
// Nil fields are left untouched.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     *string
	phone    *kernel.Phone
	rating   *float64
	password *string

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to update a driver's profile.
// rawPhone, if non-nil, is canonicalized; at least one field must be set.
func NewUpdateDriverCommand(
	driverID kernel.UUID,
	name *string,
	rawPhone *string,
	rating *float64,
	password *string,
) (UpdateDriverCommand, error) {
	cmd := UpdateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := driverID.Validate(); err != nil {
		return UpdateDriverCommand{}, err
	}
	if name == nil && rawPhone == nil && rating == nil && password == nil {
		return UpdateDriverCommand{}, ErrNothingToUpdate
	}

	if rawPhone != nil {
		phone, err := kernel.NewPhone(*rawPhone)
		if err != nil {
			return UpdateDriverCommand{}, err
		}
		cmd.phone = &phone
	}
	if name != nil {
		if err := requireText(*name, "name"); err != nil {
			return UpdateDriverCommand{}, err
		}
		cmd.name = name
	}
	if password != nil {
		if err := requirePassword(*password); err != nil {
			return UpdateDriverCommand{}, err
		}
		cmd.password = password
	}

	cmd.driverID = driverID
	cmd.rating = rating
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the driver being updated.
func (c UpdateDriverCommand) DriverID() kernel.UUID { return c.driverID }

// Name returns the new display name, or nil.
func (c UpdateDriverCommand) Name() *string { return c.name }

// Phone returns the new canonical phone, or nil.
func (c UpdateDriverCommand) Phone() *kernel.Phone { return c.phone }

// Rating returns the new rating, or nil.
func (c UpdateDriverCommand) Rating() *float64 { return c.rating }

// Password returns the new plaintext password, or nil.
func (c UpdateDriverCommand) Password() *string { return c.password }
