package commands

import (
	"context"
	"time"

	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/core/domain/services"
)

const expiredOrderNote = "cancelled automatically: no driver available within the timeout"

// ExpirePendingOrdersCommandHandler cancels stale pending orders in one
// transaction: each expired order moves to cancelled, loses its queue
// ticket, and notifies its customer.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.Dispatcher
	notifier   services.Notifier
}

// NewExpirePendingOrdersCommandHandler creates a handler for the pending
// order sweep.
func NewExpirePendingOrdersCommandHandler(uowFactory DispatchUoWFactory) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
		notifier:   services.NewNotifier(),
	}
}

// Handle processes the sweep and reports how many orders were cancelled.
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
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
	timeout := time.Duration(appSettings.OrderTimeoutMinutes) * time.Minute

	pending, err := uow.OrderRepository().GetAllInStatus(ctx, order.Pending)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, o := range pending {
		if cmd.Now().Sub(o.CreatedAt()) < timeout {
			continue
		}

		if err = h.dispatcher.Complete(o, nil, order.Cancelled, expiredOrderNote, cmd.Now()); err != nil {
			return 0, err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return 0, err
		}
		if err = uow.QueueRepository().Remove(ctx, o.ID()); err != nil {
			return 0, err
		}

		n, notifyErr := h.notifier.StatusChanged(o, cmd.Now())
		if notifyErr != nil {
			return 0, notifyErr
		}
		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return 0, err
		}

		expired++
	}

	if expired == 0 {
		return 0, uow.Rollback(ctx)
	}

	return expired, uow.Commit(ctx)
}
