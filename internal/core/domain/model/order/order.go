package order

import (
	"errors"
	"fmt"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/errs"
	"kurirkan/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCustomerNameIsRequired is returned when creating an order without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
)

// ServiceType distinguishes package delivery from ride orders.
type ServiceType int

const (
	// Delivery is a package delivery order.
	Delivery ServiceType = iota + 1
	// Ride is a passenger transport order.
	Ride
)

// ServiceTypeFromString parses a service type from its wire name.
func ServiceTypeFromString(s string) (ServiceType, error) {
	switch s {
	case "delivery":
		return Delivery, nil
	case "ride":
		return Ride, nil
	default:
		return 0, errs.NewValueIsInvalidError("serviceType")
	}
}

// String returns the wire name of the service type.
func (t ServiceType) String() string {
	switch t {
	case Delivery:
		return "delivery"
	case Ride:
		return "ride"
	default:
		return "unknown"
	}
}

// Validate checks that the service type is one of the defined kinds.
func (t ServiceType) Validate() error {
	if t != Delivery && t != Ride {
		return errs.NewValueIsInvalidError("serviceType")
	}
	return nil
}

// TimelineEntry is one record of the order's append-only status history.
type TimelineEntry struct {
	Status    Status
	Timestamp time.Time
	Note      string
}

// Details carries the immutable business payload of an order, set at
// creation and never mutated by lifecycle transitions. All fields are
// optional except Price and PaymentMethod, which default to 0 and "cash"
// at the calling layer.
type Details struct {
	ItemDescription string
	ItemWeight      string
	ItemValue       string
	Distance        string
	Notes           string
	PaymentMethod   string
	Price           int64
}

// Order is the aggregate root for a single delivery or ride request tracked
// through its lifecycle.
//
// Invariants maintained by this type:
//   - status always equals the status of the last timeline entry
//   - the timeline is append-only: never reordered, never pruned
//   - each milestone timestamp (assignedAt, pickedUpAt, deliveredAt,
//     cancelledAt) is set exactly once, on first entry into the
//     corresponding status
//   - Delivered and Cancelled are terminal: any further transition fails
//     with an InvalidTransitionError and leaves the order unmodified
//   - Pending to Assigned happens only through Assign (the dispatch path),
//     never through Advance
//
// Orders are never physically deleted; the timeline is the audit history.
type Order struct {
	id          kernel.UUID
	orderNumber kernel.OrderNumber

	customerID    kernel.UUID
	customerName  string
	customerPhone kernel.Phone

	// driverID is nil until the order is assigned through dispatch.
	driverID   *kernel.UUID
	driverName string

	serviceType     ServiceType
	pickupAddress   string
	deliveryAddress string
	details         Details

	status   Status
	timeline []TimelineEntry

	createdAt   time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending status with a single timeline entry.
//
// Precondition: pickupAddress and deliveryAddress are non-empty. The calling
// layer (CreateOrderCommand) enforces this; it is not re-validated here.
//
// The identity parameters are validated: id, orderNumber, customerID and
// customerPhone must be constructed values and customerName must be non-empty.
func NewOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	customerID kernel.UUID,
	customerName string,
	customerPhone kernel.Phone,
	serviceType ServiceType,
	pickupAddress string,
	deliveryAddress string,
	details Details,
	now time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customerID, customerName, customerPhone),
		serviceType.Validate(),
	); err != nil {
		return nil, err
	}

	o.serviceType = serviceType
	o.pickupAddress = pickupAddress
	o.deliveryAddress = deliveryAddress
	o.details = details
	o.createdAt = now
	o.status = Pending
	o.timeline = []TimelineEntry{{Status: Pending, Timestamp: now, Note: "Order created"}}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full history.
// The timeline must be non-empty and its last entry must match the status.
func RestoreOrder(
	id kernel.UUID,
	orderNumber kernel.OrderNumber,
	customerID kernel.UUID,
	customerName string,
	customerPhone kernel.Phone,
	driverID *kernel.UUID,
	driverName string,
	serviceType ServiceType,
	pickupAddress string,
	deliveryAddress string,
	details Details,
	status Status,
	timeline []TimelineEntry,
	createdAt time.Time,
	assignedAt, pickedUpAt, deliveredAt, cancelledAt *time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customerID, customerName, customerPhone),
		serviceType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(timeline) == 0 {
		return nil, errs.NewValueIsRequiredError("timeline")
	}
	if timeline[len(timeline)-1].Status != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("timeline",
			fmt.Errorf("last entry is %s, status is %s", timeline[len(timeline)-1].Status, status))
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		copied := *driverID
		o.driverID = &copied
	}

	o.driverName = driverName
	o.serviceType = serviceType
	o.pickupAddress = pickupAddress
	o.deliveryAddress = deliveryAddress
	o.details = details
	o.status = status
	o.timeline = append([]TimelineEntry(nil), timeline...)
	o.createdAt = createdAt
	o.assignedAt = copyTime(assignedAt)
	o.pickedUpAt = copyTime(pickedUpAt)
	o.deliveredAt = copyTime(deliveredAt)
	o.cancelledAt = copyTime(cancelledAt)

	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the human-readable order reference.
func (o *Order) OrderNumber() kernel.OrderNumber { return o.orderNumber }

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// CustomerName returns the ordering customer's display name.
func (o *Order) CustomerName() string { return o.customerName }

// CustomerPhone returns the ordering customer's canonical phone number.
func (o *Order) CustomerPhone() kernel.Phone { return o.customerPhone }

// DriverID returns the assigned driver's identifier, or nil while unassigned.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	copied := *o.driverID
	return &copied
}

// DriverName returns the assigned driver's display name, empty while unassigned.
func (o *Order) DriverName() string { return o.driverName }

// ServiceType returns the order's service kind.
func (o *Order) ServiceType() ServiceType { return o.serviceType }

// PickupAddress returns the pickup address.
func (o *Order) PickupAddress() string { return o.pickupAddress }

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// Details returns the immutable business payload.
func (o *Order) Details() Details { return o.details }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Timeline returns a copy of the append-only status history.
func (o *Order) Timeline() []TimelineEntry {
	return append([]TimelineEntry(nil), o.timeline...)
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// AssignedAt returns when the order was first assigned, or nil.
func (o *Order) AssignedAt() *time.Time { return copyTime(o.assignedAt) }

// PickedUpAt returns when the order was first picked up, or nil.
func (o *Order) PickedUpAt() *time.Time { return copyTime(o.pickedUpAt) }

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time { return copyTime(o.deliveredAt) }

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time { return copyTime(o.cancelledAt) }

// Advance moves the order to the next lifecycle status, appending a timeline
// entry and recording the milestone timestamp on first entry into a status.
//
// Assigned is not reachable through Advance; assignment goes through Assign
// so that order and driver mutate together. A transition attempted on a
// terminal order fails with an InvalidTransitionError and the order is left
// unmodified.
func (o *Order) Advance(next Status, note string, at time.Time) error {
	if next == Assigned {
		return errs.NewInvalidTransitionError(o.status.String(), next.String())
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.timeline = append(o.timeline, TimelineEntry{Status: newStatus, Timestamp: at, Note: note})
	o.recordMilestone(newStatus, at)
	return nil
}

// Assign attaches a driver and moves the order from Pending to Assigned.
// This is the dispatch path; it is the only way an order becomes Assigned.
func (o *Order) Assign(driverID kernel.UUID, driverName string, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.driverName = driverName
	o.timeline = append(o.timeline, TimelineEntry{
		Status:    newStatus,
		Timestamp: at,
		Note:      fmt.Sprintf("Assigned to driver %s", driverName),
	})
	o.recordMilestone(newStatus, at)
	return nil
}

// Clone returns a deep copy of the order for staged mutation.
func (o *Order) Clone() *Order {
	copied := *o
	copied.timeline = append([]TimelineEntry(nil), o.timeline...)
	if o.driverID != nil {
		id := *o.driverID
		copied.driverID = &id
	}
	copied.assignedAt = copyTime(o.assignedAt)
	copied.pickedUpAt = copyTime(o.pickedUpAt)
	copied.deliveredAt = copyTime(o.deliveredAt)
	copied.cancelledAt = copyTime(o.cancelledAt)
	return &copied
}

// recordMilestone sets the timestamp for a status milestone on first entry.
// Re-entering a status never overwrites an already-set milestone.
func (o *Order) recordMilestone(s Status, at time.Time) {
	switch s {
	case Assigned:
		if o.assignedAt == nil {
			o.assignedAt = &at
		}
	case PickedUp:
		if o.pickedUpAt == nil {
			o.pickedUpAt = &at
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &at
		}
	case Cancelled:
		if o.cancelledAt == nil {
			o.cancelledAt = &at
		}
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(n kernel.OrderNumber) error {
	if err := n.Validate(); err != nil {
		return err
	}
	o.orderNumber = n
	return nil
}

func (o *Order) setCustomer(id kernel.UUID, name string, phone kernel.Phone) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	if err := phone.Validate(); err != nil {
		return err
	}
	o.customerID = id
	o.customerName = name
	o.customerPhone = phone
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
