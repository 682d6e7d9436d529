package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kurirkan/internal/adapters/out/memstore"
	"kurirkan/internal/adapters/out/storage"
	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/core/domain/model/queue"
	"kurirkan/internal/core/domain/model/settings"
	"kurirkan/internal/core/ports"
	"kurirkan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore accepts loads but rejects every save.
type failingStore struct {
	saveErr error
}

func (s *failingStore) Load(context.Context, string) ([]byte, error) { return nil, nil }
func (s *failingStore) Save(context.Context, string, []byte) error   { return s.saveErr }

func newTestOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()

	phone, err := kernel.NewPhone("081234567890")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewOrderNumber(), kernel.NewUUID(), "Siti", phone,
		order.Delivery, "Jl. Melati 1", "Jl. Kenanga 2",
		order.Details{PaymentMethod: "cash", Price: 25000}, now,
	)
	require.NoError(t, err)
	return o
}

func newTestDriver(t *testing.T, code, username string, now time.Time) *driver.Driver {
	t.Helper()

	phone, err := kernel.NewPhone("081298765432")
	require.NoError(t, err)

	d, err := driver.NewDriver(
		kernel.NewUUID(), code, "Budi", phone, username, "$2a$10$hash", false, now,
	)
	require.NoError(t, err)
	return d
}

func TestUnitOfWork_Commit(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("committed aggregates are visible to later transactions", func(t *testing.T) {
		state := storage.NewState()
		factory := storage.NewUnitOfWorkFactory(state, memstore.NewStore())
		o := newTestOrder(t, now)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
		require.NoError(t, uow.Commit(ctx))

		uow2 := factory.Create()
		require.NoError(t, uow2.Begin(ctx))
		defer uow2.Rollback(ctx)

		got, err := uow2.OrderRepository().Get(ctx, o.ID())
		require.NoError(t, err)
		assert.True(t, got.IsEqual(o))
		assert.Equal(t, order.Pending, got.Status())
	})

	t.Run("commit persists dirty collections to the store", func(t *testing.T) {
		state := storage.NewState()
		store := memstore.NewStore()
		factory := storage.NewUnitOfWorkFactory(state, store)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, newTestOrder(t, now)))
		require.NoError(t, uow.Commit(ctx))

		raw, err := store.Load(ctx, ports.OrdersCollection)
		require.NoError(t, err)
		assert.NotEmpty(t, raw)

		// untouched collections are not written
		raw, err = store.Load(ctx, ports.DriversCollection)
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	t.Run("commit without begin fails", func(t *testing.T) {
		factory := storage.NewUnitOfWorkFactory(storage.NewState(), memstore.NewStore())

		err := factory.Create().Commit(ctx)

		require.ErrorIs(t, err, storage.ErrNoActiveTransaction)
	})

	t.Run("store failure surfaces as persistence error but state keeps the change", func(t *testing.T) {
		state := storage.NewState()
		factory := storage.NewUnitOfWorkFactory(state, &failingStore{saveErr: errors.New("disk full")})
		o := newTestOrder(t, now)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, o))

		err := uow.Commit(ctx)

		require.ErrorIs(t, err, errs.ErrPersistenceFailure)

		uow2 := factory.Create()
		require.NoError(t, uow2.Begin(ctx))
		defer uow2.Rollback(ctx)
		_, getErr := uow2.OrderRepository().Get(ctx, o.ID())
		assert.NoError(t, getErr)
	})
}

func TestUnitOfWork_Rollback(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("rolled back changes are invisible", func(t *testing.T) {
		factory := storage.NewUnitOfWorkFactory(storage.NewState(), memstore.NewStore())
		o := newTestOrder(t, now)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
		require.NoError(t, uow.Rollback(ctx))

		uow2 := factory.Create()
		require.NoError(t, uow2.Begin(ctx))
		defer uow2.Rollback(ctx)

		_, err := uow2.OrderRepository().Get(ctx, o.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rollback after commit is a no-op", func(t *testing.T) {
		factory := storage.NewUnitOfWorkFactory(storage.NewState(), memstore.NewStore())

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.Commit(ctx))

		require.NoError(t, uow.Rollback(ctx))
	})

	t.Run("mutating a loaded aggregate without update stays private", func(t *testing.T) {
		factory := storage.NewUnitOfWorkFactory(storage.NewState(), memstore.NewStore())
		o := newTestOrder(t, now)

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
		require.NoError(t, uow.Commit(ctx))

		uow2 := factory.Create()
		require.NoError(t, uow2.Begin(ctx))
		loaded, err := uow2.OrderRepository().Get(ctx, o.ID())
		require.NoError(t, err)
		require.NoError(t, loaded.Advance(order.Cancelled, "", now))
		require.NoError(t, uow2.Rollback(ctx))

		uow3 := factory.Create()
		require.NoError(t, uow3.Begin(ctx))
		defer uow3.Rollback(ctx)
		got, err := uow3.OrderRepository().Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Pending, got.Status())
	})
}

func TestDriverRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	begin := func(t *testing.T, factory *storage.UnitOfWorkFactory) ports.UnitOfWork {
		t.Helper()
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		return uow
	}

	t.Run("should reject duplicate username", func(t *testing.T) {
		factory := storage.NewUnitOfWorkFactory(storage.NewState(), memstore.NewStore())

		uow := begin(t, factory)
		require.NoError(t, uow.DriverRepository().Add(ctx, newTestDriver(t, "DRV-001", "budi", now)))
		require.NoError(t, uow.Commit(ctx))

		uow2 := begin(t, factory)
		defer uow2.Rollback(ctx)
		err := uow2.DriverRepository().Add(ctx, newTestDriver(t, "DRV-002", "budi", now))

		require.ErrorIs(t, err, errs.ErrDuplicateCredential)
	})

	t.Run("should find driver by username", func(t *testing.T) {
		factory := storage.NewUnitOfWorkFactory(storage.NewState(), memstore.NewStore())
		d := newTestDriver(t, "DRV-001", "budi", now)

		uow := begin(t, factory)
		require.NoError(t, uow.DriverRepository().Add(ctx, d))
		require.NoError(t, uow.Commit(ctx))

		uow2 := begin(t, factory)
		defer uow2.Rollback(ctx)
		got, err := uow2.DriverRepository().GetByUsername(ctx, "budi")

		require.NoError(t, err)
		assert.True(t, got.IsEqual(d))
	})

	t.Run("deleted driver is gone after commit", func(t *testing.T) {
		factory := storage.NewUnitOfWorkFactory(storage.NewState(), memstore.NewStore())
		d := newTestDriver(t, "DRV-001", "budi", now)

		uow := begin(t, factory)
		require.NoError(t, uow.DriverRepository().Add(ctx, d))
		require.NoError(t, uow.Commit(ctx))

		uow2 := begin(t, factory)
		require.NoError(t, uow2.DriverRepository().Delete(ctx, d.ID()))
		require.NoError(t, uow2.Commit(ctx))

		uow3 := begin(t, factory)
		defer uow3.Rollback(ctx)
		_, err := uow3.DriverRepository().Get(ctx, d.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestQueueRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("get all returns dispatch order", func(t *testing.T) {
		factory := storage.NewUnitOfWorkFactory(storage.NewState(), memstore.NewStore())

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback(ctx)
		repo := uow.QueueRepository()

		low, err := queue.NewItem(kernel.NewUUID(), 1, now)
		require.NoError(t, err)
		high, err := queue.NewItem(kernel.NewUUID(), 5, now.Add(time.Minute))
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, low))
		require.NoError(t, repo.Add(ctx, high))

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, items[0].OrderID().IsEqual(high.OrderID()))
	})

	t.Run("removing an unqueued order is a no-op", func(t *testing.T) {
		factory := storage.NewUnitOfWorkFactory(storage.NewState(), memstore.NewStore())

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback(ctx)

		require.NoError(t, uow.QueueRepository().Remove(ctx, kernel.NewUUID()))
	})
}

func TestLoadState(t *testing.T) {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	t.Run("round-trips all collections through the store", func(t *testing.T) {
		store := memstore.NewStore()
		state := storage.NewState()
		factory := storage.NewUnitOfWorkFactory(state, store)

		o := newTestOrder(t, now)
		d := newTestDriver(t, "DRV-001", "budi", now)
		item, err := queue.NewItem(o.ID(), queue.DefaultPriority, now)
		require.NoError(t, err)
		custom := settings.Default()
		custom.OrderTimeoutMinutes = 45

		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
		require.NoError(t, uow.DriverRepository().Add(ctx, d))
		require.NoError(t, uow.QueueRepository().Add(ctx, item))
		require.NoError(t, uow.SettingsRepository().Save(ctx, custom))
		require.NoError(t, uow.Commit(ctx))

		reloaded, err := storage.LoadState(ctx, store)
		require.NoError(t, err)

		factory2 := storage.NewUnitOfWorkFactory(reloaded, store)
		uow2 := factory2.Create()
		require.NoError(t, uow2.Begin(ctx))
		defer uow2.Rollback(ctx)

		gotOrder, err := uow2.OrderRepository().Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, o.OrderNumber().String(), gotOrder.OrderNumber().String())
		assert.Equal(t, order.Pending, gotOrder.Status())
		require.Len(t, gotOrder.Timeline(), 1)

		gotDriver, err := uow2.DriverRepository().Get(ctx, d.ID())
		require.NoError(t, err)
		assert.Equal(t, "budi", gotDriver.Username())

		items, err := uow2.QueueRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, items[0].OrderID().IsEqual(o.ID()))

		gotSettings, err := uow2.SettingsRepository().Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 45, gotSettings.OrderTimeoutMinutes)
	})

	t.Run("empty store loads default settings", func(t *testing.T) {
		state, err := storage.LoadState(ctx, memstore.NewStore())
		require.NoError(t, err)

		uow := storage.NewUnitOfWorkFactory(state, memstore.NewStore()).Create()
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback(ctx)

		got, err := uow.SettingsRepository().Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, settings.Default(), got)
	})
}
