package queries_test

import (
	"context"
	"testing"
	"time"

	"kurirkan/internal/core/application/usecases/queries"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/notification"
	"kurirkan/internal/core/domain/model/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotification(
	t *testing.T,
	factory readFactory,
	userID kernel.UUID,
	read bool,
	createdAt time.Time,
) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(
		kernel.NewUUID(), userID, "Order update", "Your order is on the way",
		notification.OrderUpdate, nil, createdAt,
	)
	require.NoError(t, err)

	ctx := context.Background()
	uow := factory.inner.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.NotificationRepository().Add(ctx, n))
	if read {
		n.MarkRead()
		require.NoError(t, uow.NotificationRepository().Update(ctx, n))
	}
	require.NoError(t, uow.Commit(ctx))
	return n
}

func TestGetNotificationsQueryHandler_Handle_NewestFirst(t *testing.T) {
	factory := newReadFactory()
	userID := kernel.NewUUID()
	base := time.Now().Add(-time.Hour)

	older := seedNotification(t, factory, userID, false, base)
	newer := seedNotification(t, factory, userID, true, base.Add(10*time.Minute))
	seedNotification(t, factory, kernel.NewUUID(), false, base) // another user

	query, err := queries.NewGetNotificationsQuery(userID, false)
	require.NoError(t, err)

	handler := queries.NewGetNotificationsQueryHandler(factory)
	feed, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, newer.ID(), feed[0].ID)
	assert.Equal(t, older.ID(), feed[1].ID)
	assert.Equal(t, "order_update", feed[0].Kind)
}

func TestGetNotificationsQueryHandler_Handle_UnreadOnly(t *testing.T) {
	factory := newReadFactory()
	userID := kernel.NewUUID()
	base := time.Now().Add(-time.Hour)

	unread := seedNotification(t, factory, userID, false, base)
	seedNotification(t, factory, userID, true, base.Add(10*time.Minute))

	query, err := queries.NewGetNotificationsQuery(userID, true)
	require.NoError(t, err)

	handler := queries.NewGetNotificationsQueryHandler(factory)
	feed, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, unread.ID(), feed[0].ID)
	assert.False(t, feed[0].Read)
}

func TestGetSettingsQueryHandler_Handle_DefaultsWhenUnset(t *testing.T) {
	factory := newReadFactory()

	handler := queries.NewGetSettingsQueryHandler(factory)
	got, err := handler.Handle(t.Context(), queries.NewGetSettingsQuery())

	require.NoError(t, err)
	assert.Equal(t, settings.Default(), got)
}
