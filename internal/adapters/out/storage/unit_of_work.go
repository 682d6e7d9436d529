package storage

import (
	"context"
	"errors"

	"kurirkan/internal/core/domain/model/customer"
	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/notification"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/core/domain/model/queue"
	"kurirkan/internal/core/domain/model/settings"
	"kurirkan/internal/core/ports"
)

// ErrNoActiveTransaction is returned when committing without Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work bound to one state and store.
type UnitOfWorkFactory struct {
	state *State
	store ports.CollectionStore
}

// NewUnitOfWorkFactory creates a factory over the shared in-memory state
// and its durable backend.
func NewUnitOfWorkFactory(state *State, store ports.CollectionStore) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{state: state, store: store}
}

// Create produces a fresh UnitOfWork. Each business operation gets its own
// instance; instances are not reusable across transactions.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &unitOfWork{state: f.state, store: f.store}
}

// unitOfWork stages mutations on deep copies while holding the state mutex.
// Commit installs every staged aggregate into the state in one step, then
// serializes the dirty collections to the store.
type unitOfWork struct {
	state  *State
	store  ports.CollectionStore
	active bool

	stagedOrders map[string]*order.Order

	stagedDrivers  map[string]*driver.Driver
	removedDrivers map[string]struct{}

	stagedCustomers map[string]*customer.Customer

	stagedNotifications  map[string]*notification.Notification
	removedNotifications map[string]struct{}

	stagedQueue []queue.Item
	queueDirty  bool

	stagedSettings *settings.AppSettings
}

// Begin takes the state lock and opens the staging area. Calling Begin on
// an already-active unit of work is a no-op.
func (uow *unitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.state.mu.Lock()
	uow.active = true
	uow.stagedOrders = make(map[string]*order.Order)
	uow.stagedDrivers = make(map[string]*driver.Driver)
	uow.removedDrivers = make(map[string]struct{})
	uow.stagedCustomers = make(map[string]*customer.Customer)
	uow.stagedNotifications = make(map[string]*notification.Notification)
	uow.removedNotifications = make(map[string]struct{})
	uow.stagedQueue = nil
	uow.queueDirty = false
	uow.stagedSettings = nil
	return nil
}

// Commit installs the staged changes into the state, then persists every
// touched collection. The in-memory apply is atomic and never undone: if a
// store write fails afterwards, Commit returns a PersistenceError while the
// state keeps the committed changes.
func (uow *unitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	defer uow.release()

	var dirty []string

	if len(uow.stagedOrders) > 0 {
		for id, o := range uow.stagedOrders {
			uow.state.orders[id] = o
		}
		dirty = append(dirty, ports.OrdersCollection)
	}

	if len(uow.stagedDrivers) > 0 || len(uow.removedDrivers) > 0 {
		for id, d := range uow.stagedDrivers {
			uow.state.drivers[id] = d
		}
		for id := range uow.removedDrivers {
			delete(uow.state.drivers, id)
		}
		dirty = append(dirty, ports.DriversCollection)
	}

	if len(uow.stagedCustomers) > 0 {
		for id, c := range uow.stagedCustomers {
			uow.state.customers[id] = c
		}
		dirty = append(dirty, ports.CustomersCollection)
	}

	if len(uow.stagedNotifications) > 0 || len(uow.removedNotifications) > 0 {
		for id, n := range uow.stagedNotifications {
			uow.state.notifications[id] = n
		}
		for id := range uow.removedNotifications {
			delete(uow.state.notifications, id)
		}
		dirty = append(dirty, ports.NotificationsCollection)
	}

	if uow.queueDirty {
		uow.state.queue = uow.stagedQueue
		dirty = append(dirty, ports.QueueCollection)
	}

	if uow.stagedSettings != nil {
		uow.state.settings = *uow.stagedSettings
		uow.state.settingsSet = true
		dirty = append(dirty, ports.SettingsCollection)
	}

	var persistErrs []error
	for _, key := range dirty {
		if err := uow.state.persistLocked(ctx, uow.store, key); err != nil {
			persistErrs = append(persistErrs, err)
		}
	}
	return errors.Join(persistErrs...)
}

// Rollback discards the staging area. A rollback after Commit (or without
// Begin) is a no-op, so it is safe to defer.
func (uow *unitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}
	uow.release()
	return nil
}

func (uow *unitOfWork) release() {
	uow.active = false
	uow.stagedOrders = nil
	uow.stagedDrivers = nil
	uow.removedDrivers = nil
	uow.stagedCustomers = nil
	uow.stagedNotifications = nil
	uow.removedNotifications = nil
	uow.stagedQueue = nil
	uow.queueDirty = false
	uow.stagedSettings = nil
	uow.state.mu.Unlock()
}

// OrderRepository returns an OrderRepository bound to this transaction.
func (uow *unitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

// DriverRepository returns a DriverRepository bound to this transaction.
func (uow *unitOfWork) DriverRepository() ports.DriverRepository {
	return &driverRepository{uow: uow}
}

// CustomerRepository returns a CustomerRepository bound to this transaction.
func (uow *unitOfWork) CustomerRepository() ports.CustomerRepository {
	return &customerRepository{uow: uow}
}

// QueueRepository returns a QueueRepository bound to this transaction.
func (uow *unitOfWork) QueueRepository() ports.QueueRepository {
	return &queueRepository{uow: uow}
}

// NotificationRepository returns a NotificationRepository bound to this transaction.
func (uow *unitOfWork) NotificationRepository() ports.NotificationRepository {
	return &notificationRepository{uow: uow}
}

// SettingsRepository returns a SettingsRepository bound to this transaction.
func (uow *unitOfWork) SettingsRepository() ports.SettingsRepository {
	return &settingsRepository{uow: uow}
}

// queueView returns the transaction's view of the queue without copying.
func (uow *unitOfWork) queueView() []queue.Item {
	if uow.queueDirty {
		return uow.stagedQueue
	}
	return uow.state.queue
}
