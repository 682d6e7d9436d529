package commands

import (
	"errors"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPickupAddressIsRequired   = errors.New("pickup address is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrPriceIsInvalid            = errors.New("price must not be negative")
)

// CreateOrderCommand represents a request to place a new delivery or ride
// order for a registered customer. The order id is supplied by the caller
// so the adapter can report it back; the order number is generated during
// handling.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	serviceType order.ServiceType

	pickupAddress   string
	deliveryAddress string
	details         order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Both addresses must be non-empty and the price must not be negative;
// an empty payment method defaults to "cash".
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	serviceType order.ServiceType,
	pickupAddress string,
	deliveryAddress string,
	details order.Details,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		serviceType.Validate(),
		cmd.setAddresses(pickupAddress, deliveryAddress),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.serviceType = serviceType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller-chosen identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// ServiceType returns the requested service kind.
func (c CreateOrderCommand) ServiceType() order.ServiceType { return c.serviceType }

// PickupAddress returns the pickup address.
func (c CreateOrderCommand) PickupAddress() string { return c.pickupAddress }

// DeliveryAddress returns the delivery address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

// Details returns the business payload for the new order.
func (c CreateOrderCommand) Details() order.Details { return c.details }

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setAddresses(pickup, delivery string) error {
	if pickup == "" {
		return ErrPickupAddressIsRequired
	}
	if delivery == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.pickupAddress = pickup
	c.deliveryAddress = delivery
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if details.Price < 0 {
		return ErrPriceIsInvalid
	}
	if details.PaymentMethod == "" {
		details.PaymentMethod = "cash"
	}
	c.details = details
	return nil
}
