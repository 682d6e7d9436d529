// Package queries contains read operations for retrieving system state.
// Reads go through the same unit of work as writes so a query always sees
// a consistent snapshot of the collection store.
package queries

import (
	"context"

	"kurirkan/internal/core/ports"
)

type (
	// ReadUoW provides a consistent read snapshot over every repository.
	// Queries begin a transaction, read, and roll back; nothing is written.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error

		OrderRepository() ports.OrderRepository
		DriverRepository() ports.DriverRepository
		CustomerRepository() ports.CustomerRepository
		QueueRepository() ports.QueueRepository
		NotificationRepository() ports.NotificationRepository
		SettingsRepository() ports.SettingsRepository
	}

	// ReadUoWFactory creates new read unit of work instances.
	ReadUoWFactory interface {
		Create() ReadUoW
	}
)
