package commands_test

import (
	"testing"
	"time"

	"kurirkan/internal/core/application/usecases/commands"
	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := newPendingOrder(t, time.Now())
	testDriver := newTestDriver(t)

	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), testDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	queueRepo := new(MockQueueRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("QueueRepository").Return(queueRepo).Once(),
		queueRepo.On("Remove", ctx, testOrder.ID()).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Twice(),
		notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, testOrder.Status())
	assert.Equal(t, driver.Busy, testDriver.Status())
	require.NotNil(t, testDriver.CurrentOrder())
	assert.Equal(t, testOrder.ID(), *testDriver.CurrentOrder())
	uow.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_BusyDriver(t *testing.T) {
	ctx := t.Context()
	testOrder := newPendingOrder(t, time.Now())
	testDriver := newTestDriver(t)
	require.NoError(t, testDriver.TakeOrder(kernel.NewUUID(), time.Now()))

	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), testDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, driver.ErrDriverIsBusy)
	assert.Equal(t, order.Pending, testOrder.Status(), "order must stay pending when the driver rejects")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignOrderCommandHandler_Handle_AlreadyAssignedOrder(t *testing.T) {
	ctx := t.Context()
	testOrder := newPendingOrder(t, time.Now())
	firstDriver := newTestDriver(t)
	require.NoError(t, testOrder.Assign(firstDriver.ID(), firstDriver.Name(), time.Now()))

	secondDriver := newTestDriver(t)
	cmd, err := commands.NewAssignOrderCommand(testOrder.ID(), secondDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, secondDriver.ID()).Return(secondDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}
