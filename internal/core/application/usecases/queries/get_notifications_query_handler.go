package queries

import (
	"context"
)

// GetNotificationsQueryHandler reads one user's notification feed.
type GetNotificationsQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetNotificationsQueryHandler creates a handler for notification feeds.
func NewGetNotificationsQueryHandler(uowFactory ReadUoWFactory) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. Notifications come back newest first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
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

	notifications, err := uow.NotificationRepository().GetAllByUser(ctx, query.UserID())
	if err != nil {
		return nil, err
	}

	responses := make([]GetNotificationsQueryResponse, 0, len(notifications))
	for _, n := range notifications {
		if query.UnreadOnly() && n.Read() {
			continue
		}
		responses = append(responses, GetNotificationsQueryResponse{
			ID:        n.ID(),
			Title:     n.Title(),
			Message:   n.Message(),
			Kind:      n.Kind().String(),
			OrderID:   n.OrderID(),
			Read:      n.Read(),
			CreatedAt: n.CreatedAt(),
		})
	}
	return responses, nil
}
