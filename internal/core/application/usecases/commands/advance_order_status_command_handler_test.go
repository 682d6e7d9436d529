package commands_test

import (
	"testing"
	"time"

	"kurirkan/internal/core/application/usecases/commands"
	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignedPair(t *testing.T) (*order.Order, *driver.Driver) {
	t.Helper()
	o := newPendingOrder(t, time.Now())
	d := newTestDriver(t)
	require.NoError(t, d.TakeOrder(o.ID(), time.Now()))
	require.NoError(t, o.Assign(d.ID(), d.Name(), time.Now()))
	return o, d
}

func TestAdvanceOrderStatusCommandHandler_Handle_DeliveredReleasesDriver(t *testing.T) {
	ctx := t.Context()
	o, d := newAssignedPair(t)
	require.NoError(t, o.Advance(order.DriverOnWay, "", time.Now()))
	require.NoError(t, o.Advance(order.PickedUp, "", time.Now()))
	require.NoError(t, o.Advance(order.InTransit, "", time.Now()))

	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), order.Delivered, "left at reception")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	driverRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
	driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Nil(t, d.CurrentOrder())
	assert.Equal(t, driver.OnDuty, d.Status())
	assert.Equal(t, o.Details().Price, d.Earnings())
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_CancelledPaysNothing(t *testing.T) {
	ctx := t.Context()
	o, d := newAssignedPair(t)

	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), order.Cancelled, "customer no-show")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	driverRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
	driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Nil(t, d.CurrentOrder())
	assert.Zero(t, d.Earnings())
}

func TestAdvanceOrderStatusCommandHandler_Handle_CancelPendingRemovesQueueTicket(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t, time.Now())

	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), order.Cancelled, "customer changed mind")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	queueRepo := new(MockQueueRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("QueueRepository").Return(queueRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	queueRepo.On("Remove", ctx, o.ID()).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	queueRepo.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_TerminalOrderRejectsTransition(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t, time.Now())
	require.NoError(t, o.Advance(order.Cancelled, "", time.Now()))

	cmd, err := commands.NewAdvanceOrderStatusCommand(o.ID(), order.Delivered, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Cancelled, o.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
