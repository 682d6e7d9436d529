package queries

import (
	"errors"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves a user's notifications, newest first.
type GetNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for one user's notifications.
func NewGetNotificationsQuery(userID kernel.UUID, unreadOnly bool) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}
	return GetNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the addressee whose notifications are requested.
func (q GetNotificationsQuery) UserID() kernel.UUID { return q.userID }

// UnreadOnly reports whether read notifications should be filtered out.
func (q GetNotificationsQuery) UnreadOnly() bool { return q.unreadOnly }

// GetNotificationsQueryResponse is the read model for one notification.
type GetNotificationsQueryResponse struct {
	ID        kernel.UUID
	Title     string
	Message   string
	Kind      string
	OrderID   *kernel.UUID
	Read      bool
	CreatedAt time.Time
}
