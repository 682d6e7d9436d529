package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the in-memory
// state. Repositories obtained from it operate on staged copies; nothing is
// visible to other transactions until Commit.
//
// Commit applies the staged changes atomically and then writes the touched
// collections through the CollectionStore. A store write failure does not
// undo the in-memory apply; it surfaces as a PersistenceError after the
// state has already advanced.
type UnitOfWork interface {
	// Begin starts the transaction and takes the state lock.
	Begin(ctx context.Context) error

	// Commit applies staged changes and persists dirty collections.
	// Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards staged changes.
	// Safe to defer after Begin: a rollback after Commit is a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to this transaction.
	OrderRepository() OrderRepository

	// DriverRepository returns a DriverRepository bound to this transaction.
	DriverRepository() DriverRepository

	// CustomerRepository returns a CustomerRepository bound to this transaction.
	CustomerRepository() CustomerRepository

	// QueueRepository returns a QueueRepository bound to this transaction.
	QueueRepository() QueueRepository

	// NotificationRepository returns a NotificationRepository bound to this transaction.
	NotificationRepository() NotificationRepository

	// SettingsRepository returns a SettingsRepository bound to this transaction.
	SettingsRepository() SettingsRepository
}
