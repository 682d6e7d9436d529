// Package commands contains business operations that modify system state.
// All commands follow the same shape: a constructor-guarded command value,
// a handler holding a unit of work factory, and a Handle method that stages
// every mutation inside one transaction.
package commands

import (
	"context"

	"kurirkan/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest combination of
// repositories it actually touches.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// QueueRepoFactory provides access to the queue repository within a transaction.
	QueueRepoFactory interface {
		QueueRepository() ports.QueueRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// SettingsRepoFactory provides access to the settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order intake: the order itself, the
	// customer it belongs to, its queue ticket, and the emitted notification.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		QueueRepoFactory
		NotificationRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions that couple orders and drivers:
	// assignment and lifecycle transitions with driver release.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		QueueRepoFactory
		NotificationRepoFactory
		SettingsRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// DriverUoW manages transactions for driver administration.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// CustomerUoW manages transactions for customer registration and login.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// NotificationUoW manages transactions touching only notifications.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
		SettingsRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// SettingsUoW manages transactions touching only settings.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}
)
