package commands

import (
	"errors"
	"time"

	"kurirkan/internal/pkg/guard"
)

var (
	ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
		"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
	)
	ErrTimeIsNotSet = errors.New("time is not set")
)

// ExpirePendingOrdersCommand cancels pending orders that have waited for a
// driver longer than the configured timeout. Issued by the queue sweep job.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand creates a sweep command anchored at the
// given time.
func NewExpirePendingOrdersCommand(now time.Time) (ExpirePendingOrdersCommand, error) {
	cmd := ExpirePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if now.IsZero() {
		return ExpirePendingOrdersCommand{}, ErrTimeIsNotSet
	}

	cmd.now = now
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

// Now returns the sweep anchor time.
func (c ExpirePendingOrdersCommand) Now() time.Time { return c.now }
