package commands

import (
	"errors"
	"time"

	"kurirkan/internal/pkg/guard"
)

var ErrCleanupNotificationsCommandIsNotConstructed = errors.New(
	"CleanupNotificationsCommand must be created via NewCleanupNotificationsCommand constructor",
)

// CleanupNotificationsCommand deletes read notifications older than the
// configured retention window. Issued by the cleanup job.
type CleanupNotificationsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewCleanupNotificationsCommand creates a cleanup command anchored at the
// given time.
func NewCleanupNotificationsCommand(now time.Time) (CleanupNotificationsCommand, error) {
	cmd := CleanupNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if now.IsZero() {
		return CleanupNotificationsCommand{}, ErrTimeIsNotSet
	}

	cmd.now = now
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupNotificationsCommandIsNotConstructed)
}

// Now returns the cleanup anchor time.
func (c CleanupNotificationsCommand) Now() time.Time { return c.now }
