package commands

import (
	"errors"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a request to move an order to its
// next lifecycle status. Assignment is excluded: that goes through
// AssignOrderCommand so order and driver mutate together.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	next    order.Status
	note    string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order.
// The note is an optional free-text annotation for the timeline entry.
func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	next order.Status,
	note string,
) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		next.Validate(),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	cmd.orderID = orderID
	cmd.next = next
	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Next returns the target lifecycle status.
func (c AdvanceOrderStatusCommand) Next() order.Status { return c.next }

// Note returns the optional timeline annotation.
func (c AdvanceOrderStatusCommand) Note() string { return c.note }
