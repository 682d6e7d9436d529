package commands

import (
	"context"
)

// CleanupNotificationsCommandHandler deletes read notifications that have
// aged past the retention window. Unread notifications are kept regardless
// of age.
type CleanupNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewCleanupNotificationsCommandHandler creates a handler for notification
// cleanup.
func NewCleanupNotificationsCommandHandler(uowFactory NotificationUoWFactory) CleanupNotificationsCommandHandler {
	return CleanupNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup and reports how many notifications were
// removed.
func (h CleanupNotificationsCommandHandler) Handle(ctx context.Context, cmd CleanupNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	appSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := cmd.Now().AddDate(0, 0, -appSettings.AutoCleanupDays)
	removed, err := uow.NotificationRepository().DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if removed == 0 {
		return 0, uow.Rollback(ctx)
	}

	return removed, uow.Commit(ctx)
}
