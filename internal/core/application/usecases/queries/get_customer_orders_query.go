package queries

import (
	"errors"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for one customer's orders.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }

// TimelineEntryResponse is one status change in an order's history.
type TimelineEntryResponse struct {
	Status    string
	Timestamp time.Time
	Note      string
}

// OrderResponse is the read model for a single order.
type OrderResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerName    string
	DriverName      string
	ServiceType     string
	Status          string
	PickupAddress   string
	DeliveryAddress string
	Price           int64
	PaymentMethod   string
	CreatedAt       time.Time
	DeliveredAt     *time.Time
	Timeline        []TimelineEntryResponse
}
