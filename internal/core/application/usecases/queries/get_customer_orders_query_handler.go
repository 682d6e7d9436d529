package queries

import (
	"context"

	"kurirkan/internal/core/domain/model/order"
)

// GetCustomerOrdersQueryHandler reads one customer's order history.
type GetCustomerOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// listings.
func NewGetCustomerOrdersQueryHandler(uowFactory ReadUoWFactory) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. Orders come back newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, orderResponseFromAggregate(o))
	}
	return responses, nil
}

func orderResponseFromAggregate(o *order.Order) OrderResponse {
	timeline := make([]TimelineEntryResponse, 0, len(o.Timeline()))
	for _, entry := range o.Timeline() {
		timeline = append(timeline, TimelineEntryResponse{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}

	return OrderResponse{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber().String(),
		CustomerName:    o.CustomerName(),
		DriverName:      o.DriverName(),
		ServiceType:     o.ServiceType().String(),
		Status:          o.Status().String(),
		PickupAddress:   o.PickupAddress(),
		DeliveryAddress: o.DeliveryAddress(),
		Price:           o.Details().Price,
		PaymentMethod:   o.Details().PaymentMethod,
		CreatedAt:       o.CreatedAt(),
		DeliveredAt:     o.DeliveredAt(),
		Timeline:        timeline,
	}
}
