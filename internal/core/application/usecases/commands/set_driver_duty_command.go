package commands

import (
	"errors"

	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/guard"
)

var ErrSetDriverDutyCommandIsNotConstructed = errors.New(
	"SetDriverDutyCommand must be created via NewSetDriverDutyCommand constructor",
)

// SetDriverDutyCommand represents a driver toggling their availability.
type SetDriverDutyCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	status   driver.DutyStatus

	guard guard.ConstructorGuard
}

// NewSetDriverDutyCommand creates a command to toggle duty. Only OnDuty and
// OffDuty are accepted; Busy is owned by the dispatch transaction.
func NewSetDriverDutyCommand(driverID kernel.UUID, status driver.DutyStatus) (SetDriverDutyCommand, error) {
	cmd := SetDriverDutyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driverID.Validate(),
		status.Validate(),
	); err != nil {
		return SetDriverDutyCommand{}, err
	}

	cmd.driverID = driverID
	cmd.status = status
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverDutyCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverDutyCommandIsNotConstructed)
}

// DriverID returns the driver toggling duty.
func (c SetDriverDutyCommand) DriverID() kernel.UUID { return c.driverID }

// Status returns the requested duty status.
func (c SetDriverDutyCommand) Status() driver.DutyStatus { return c.status }
