package queries

import (
	"context"
)

// GetAllDriversQueryHandler reads the full driver roster.
type GetAllDriversQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetAllDriversQueryHandler creates a handler for driver roster listings.
func NewGetAllDriversQueryHandler(uowFactory ReadUoWFactory) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
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

	drivers, err := uow.DriverRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetAllDriversQueryResponse, 0, len(drivers))
	for _, d := range drivers {
		responses = append(responses, GetAllDriversQueryResponse{
			ID:               d.ID(),
			Code:             d.Code(),
			Name:             d.Name(),
			Phone:            d.Phone().String(),
			Username:         d.Username(),
			IsAdmin:          d.IsAdmin(),
			Status:           d.Status().String(),
			CurrentOrderID:   d.CurrentOrder(),
			TodayOrders:      d.TodayOrders(),
			TotalOrders:      d.TotalOrders(),
			Rating:           d.Rating(),
			Earnings:         d.Earnings(),
			LastStatusUpdate: d.LastStatusUpdate(),
		})
	}
	return responses, nil
}
