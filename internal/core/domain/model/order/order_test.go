package order_test

import (
	"testing"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()

	phone, err := kernel.NewPhone("081234567890")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderNumber(),
		kernel.NewUUID(),
		"Siti",
		phone,
		order.Delivery,
		"Jl. Sudirman 1",
		"Jl. Thamrin 2",
		order.Details{Price: 25000, PaymentMethod: "cash"},
		now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	now := time.Now()

	t.Run("should create pending order with singleton timeline", func(t *testing.T) {
		o := newTestOrder(t, now)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.AssignedAt())
		assert.Nil(t, o.PickedUpAt())
		assert.Nil(t, o.DeliveredAt())
		assert.Nil(t, o.CancelledAt())

		timeline := o.Timeline()
		require.Len(t, timeline, 1)
		assert.Equal(t, order.Pending, timeline[0].Status)
		assert.Equal(t, "Order created", timeline[0].Note)
		assert.Equal(t, now, timeline[0].Timestamp)
	})

	t.Run("should fail with invalid customer id", func(t *testing.T) {
		phone, err := kernel.NewPhone("081234567890")
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewOrderNumber(), kernel.UUID{}, "Siti", phone,
			order.Delivery, "A", "B", order.Details{}, now,
		)

		require.Error(t, err)
	})

	t.Run("should fail with empty customer name", func(t *testing.T) {
		phone, err := kernel.NewPhone("081234567890")
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewOrderNumber(), kernel.NewUUID(), "", phone,
			order.Delivery, "A", "B", order.Details{}, now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid service type", func(t *testing.T) {
		phone, err := kernel.NewPhone("081234567890")
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewOrderNumber(), kernel.NewUUID(), "Siti", phone,
			order.ServiceType(9), "A", "B", order.Details{}, now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Assign(t *testing.T) {
	now := time.Now()

	t.Run("should assign pending order to driver", func(t *testing.T) {
		o := newTestOrder(t, now)
		driverID := kernel.NewUUID()
		assignedAt := now.Add(time.Minute)

		err := o.Assign(driverID, "Budi", assignedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
		assert.Equal(t, "Budi", o.DriverName())
		require.NotNil(t, o.AssignedAt())
		assert.Equal(t, assignedAt, *o.AssignedAt())

		timeline := o.Timeline()
		require.Len(t, timeline, 2)
		assert.Equal(t, order.Assigned, timeline[1].Status)
		assert.Equal(t, "Assigned to driver Budi", timeline[1].Note)
	})

	t.Run("should fail on non-pending order", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.Assign(kernel.NewUUID(), "Budi", now))

		err := o.Assign(kernel.NewUUID(), "Andi", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should fail with invalid driver id", func(t *testing.T) {
		o := newTestOrder(t, now)

		err := o.Assign(kernel.UUID{}, "Budi", now)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Advance(t *testing.T) {
	now := time.Now()

	t.Run("status always equals last timeline entry", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.Assign(kernel.NewUUID(), "Budi", now))

		for _, next := range []order.Status{
			order.DriverOnWay, order.PickedUp, order.InTransit, order.Delivered,
		} {
			require.NoError(t, o.Advance(next, "", now))

			timeline := o.Timeline()
			assert.Equal(t, o.Status(), timeline[len(timeline)-1].Status)
		}
		assert.Len(t, o.Timeline(), 6)
	})

	t.Run("should reject direct advance to assigned", func(t *testing.T) {
		o := newTestOrder(t, now)

		err := o.Advance(order.Assigned, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Timeline(), 1)
	})

	t.Run("should record milestone timestamps exactly once", func(t *testing.T) {
		o := newTestOrder(t, now)
		pickedUpTime := now.Add(10 * time.Minute)
		deliveredTime := now.Add(30 * time.Minute)

		require.NoError(t, o.Assign(kernel.NewUUID(), "Budi", now))
		require.NoError(t, o.Advance(order.DriverOnWay, "", now))
		require.NoError(t, o.Advance(order.PickedUp, "", pickedUpTime))
		require.NoError(t, o.Advance(order.InTransit, "", now))
		require.NoError(t, o.Advance(order.Delivered, "", deliveredTime))

		require.NotNil(t, o.PickedUpAt())
		assert.Equal(t, pickedUpTime, *o.PickedUpAt())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredTime, *o.DeliveredAt())
		assert.Nil(t, o.CancelledAt())
	})

	t.Run("terminal order rejects further transitions unmodified", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.Assign(kernel.NewUUID(), "Budi", now))
		require.NoError(t, o.Advance(order.DriverOnWay, "", now))
		require.NoError(t, o.Advance(order.PickedUp, "", now))
		require.NoError(t, o.Advance(order.InTransit, "", now))
		require.NoError(t, o.Advance(order.Delivered, "", now))
		lenBefore := len(o.Timeline())

		err := o.Advance(order.Cancelled, "too late", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Len(t, o.Timeline(), lenBefore)
		assert.Nil(t, o.CancelledAt())
	})

	t.Run("should cancel a pending order", func(t *testing.T) {
		o := newTestOrder(t, now)
		cancelledAt := now.Add(time.Hour)

		err := o.Advance(order.Cancelled, "customer changed mind", cancelledAt)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, cancelledAt, *o.CancelledAt())
	})

	t.Run("should append the note to the timeline", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.Advance(order.Cancelled, "no drivers available", now))

		timeline := o.Timeline()
		assert.Equal(t, "no drivers available", timeline[len(timeline)-1].Note)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	t.Run("should restore an order to its persisted state", func(t *testing.T) {
		original := newTestOrder(t, now)
		driverID := kernel.NewUUID()
		require.NoError(t, original.Assign(driverID, "Budi", now))

		restored, err := order.RestoreOrder(
			original.ID(), original.OrderNumber(), original.CustomerID(),
			original.CustomerName(), original.CustomerPhone(),
			original.DriverID(), original.DriverName(),
			original.ServiceType(), original.PickupAddress(), original.DeliveryAddress(),
			original.Details(), original.Status(), original.Timeline(),
			original.CreatedAt(), original.AssignedAt(), nil, nil, nil,
		)

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, order.Assigned, restored.Status())
		assert.Equal(t, original.Timeline(), restored.Timeline())
		require.NotNil(t, restored.DriverID())
		assert.True(t, restored.DriverID().IsEqual(driverID))
	})

	t.Run("should reject empty timeline", func(t *testing.T) {
		o := newTestOrder(t, now)

		_, err := order.RestoreOrder(
			o.ID(), o.OrderNumber(), o.CustomerID(), o.CustomerName(), o.CustomerPhone(),
			nil, "", o.ServiceType(), o.PickupAddress(), o.DeliveryAddress(),
			o.Details(), o.Status(), nil, o.CreatedAt(), nil, nil, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject timeline inconsistent with status", func(t *testing.T) {
		o := newTestOrder(t, now)

		_, err := order.RestoreOrder(
			o.ID(), o.OrderNumber(), o.CustomerID(), o.CustomerName(), o.CustomerPhone(),
			nil, "", o.ServiceType(), o.PickupAddress(), o.DeliveryAddress(),
			o.Details(), order.Cancelled, o.Timeline(), o.CreatedAt(), nil, nil, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Clone(t *testing.T) {
	now := time.Now()

	t.Run("mutating the clone does not touch the original", func(t *testing.T) {
		o := newTestOrder(t, now)
		clone := o.Clone()

		require.NoError(t, clone.Assign(kernel.NewUUID(), "Budi", now))

		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Timeline(), 1)
		assert.Nil(t, o.DriverID())
		assert.Equal(t, order.Assigned, clone.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil and zero-value orders", func(t *testing.T) {
		var nilOrder *order.Order
		require.Error(t, nilOrder.Validate())

		var zero order.Order
		require.Error(t, zero.Validate())
	})
}
