package commands

import (
	"errors"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to assign a pending order to a
// specific driver.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to a driver.
func NewAssignOrderCommand(orderID, driverID kernel.UUID) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		driverID.Validate(),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID { return c.orderID }

// DriverID returns the driver receiving the order.
func (c AssignOrderCommand) DriverID() kernel.UUID { return c.driverID }
