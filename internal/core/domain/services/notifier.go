package services

import (
	"fmt"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/notification"
	"kurirkan/internal/core/domain/model/order"
)

// Notifier builds the notification records emitted by lifecycle and dispatch
// transitions. It only constructs aggregates; the calling use case persists
// them through the unit of work.
type Notifier struct{}

// NewNotifier creates a new Notifier instance.
func NewNotifier() Notifier {
	return Notifier{}
}

// OrderCreated notifies the customer that their order entered the queue.
func (Notifier) OrderCreated(o *order.Order, at time.Time) (*notification.Notification, error) {
	orderID := o.ID()
	return notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		"Order Created",
		fmt.Sprintf("Order %s has been created and is waiting for a driver", o.OrderNumber()),
		notification.OrderUpdate,
		&orderID,
		at,
	)
}

// DriverAssigned notifies the customer that a driver took their order, and
// the driver that a new order was assigned to them.
func (Notifier) DriverAssigned(o *order.Order, driverID kernel.UUID, at time.Time) ([]*notification.Notification, error) {
	orderID := o.ID()

	forCustomer, err := notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		"Driver Assigned",
		fmt.Sprintf("%s is handling order %s", o.DriverName(), o.OrderNumber()),
		notification.DriverAssignment,
		&orderID,
		at,
	)
	if err != nil {
		return nil, err
	}

	forDriver, err := notification.NewNotification(
		kernel.NewUUID(),
		driverID,
		"New Order",
		fmt.Sprintf("Order %s has been assigned to you", o.OrderNumber()),
		notification.DriverAssignment,
		&orderID,
		at,
	)
	if err != nil {
		return nil, err
	}

	return []*notification.Notification{forCustomer, forDriver}, nil
}

// StatusChanged notifies the customer about a lifecycle transition.
func (Notifier) StatusChanged(o *order.Order, at time.Time) (*notification.Notification, error) {
	orderID := o.ID()
	return notification.NewNotification(
		kernel.NewUUID(),
		o.CustomerID(),
		"Order Update",
		fmt.Sprintf("Order %s is now %s", o.OrderNumber(), statusMessage(o.Status())),
		notification.OrderUpdate,
		&orderID,
		at,
	)
}

func statusMessage(s order.Status) string {
	switch s {
	case order.DriverOnWay:
		return "waiting for pickup: the driver is on the way"
	case order.PickedUp:
		return "picked up"
	case order.InTransit:
		return "in transit"
	case order.Delivered:
		return "delivered"
	case order.Cancelled:
		return "cancelled"
	default:
		return s.String()
	}
}
