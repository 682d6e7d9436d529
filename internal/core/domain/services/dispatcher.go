package services

import (
	"time"

	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/pkg/errs"
)

// Dispatcher is a domain service that keeps the order and driver sides of
// an assignment consistent.
//
// Business rules:
//   - A driver holds at most one active order at a time.
//   - Assignment is all-or-nothing: the order records the driver and the
//     driver records the order, or neither does.
//   - A terminal transition releases the driver back to on_duty; earnings
//     accrue only on delivery.
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Assign pairs a pending order with a driver. The driver side is applied
// first so a busy driver rejects the assignment before the order is touched.
func (Dispatcher) Assign(o *order.Order, d *driver.Driver, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	if err := d.TakeOrder(o.ID(), at); err != nil {
		return err
	}

	return o.Assign(d.ID(), d.Name(), at)
}

// Complete advances an assigned order to a terminal status and releases its
// driver. A delivered order pays the driver the order price; a cancelled one
// pays nothing. The driver may be nil when the order was never assigned.
func (Dispatcher) Complete(o *order.Order, d *driver.Driver, next order.Status, note string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !next.IsTerminal() {
		return errs.NewInvalidTransitionError(o.Status().String(), next.String())
	}

	if err := o.Advance(next, note, at); err != nil {
		return err
	}

	if d == nil {
		return nil
	}

	var earned int64
	if next == order.Delivered {
		earned = o.Details().Price
	}

	return d.Release(earned, at)
}
