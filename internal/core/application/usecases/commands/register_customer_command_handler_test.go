package commands_test

import (
	"testing"

	"kurirkan/internal/core/application/usecases/commands"
	"kurirkan/internal/core/domain/model/customer"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/auth"
	"kurirkan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cmd, err := commands.NewRegisterCustomerCommand(id, "0812-3456-7890", "Budi Santoso", "secret123")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once()

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := customerRepo.Calls[0].Arguments[1].(*customer.Customer)
	assert.Equal(t, id, added.ID())
	assert.Equal(t, "6281234567890", added.Phone().String())
	assert.True(t, auth.CheckPasswordHash("secret123", added.PasswordHash()),
		"stored hash must verify against the original password")
	uow.AssertExpectations(t)
}

func TestRegisterCustomerCommandHandler_Handle_DuplicatePhone(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), "081234567890", "Budi Santoso", "secret123")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("Rollback", ctx).Return(nil)
	customerRepo.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).
		Return(errs.NewDuplicateCredentialError("phone", "6281234567890")).
		Once()

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCustomerCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDuplicateCredential)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewRegisterCustomerCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand(kernel.NewUUID(), "081234567890", "Budi Santoso", "short")

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPasswordIsTooShort)
}
