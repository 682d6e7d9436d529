package commands_test

import (
	"testing"
	"time"

	"kurirkan/internal/core/application/usecases/commands"
	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/auth"
	"kurirkan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(t *testing.T) auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret")
	require.NoError(t, err)
	return issuer
}

func newCredentialedDriver(t *testing.T, password string, isAdmin bool) *driver.Driver {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	phone, err := kernel.NewPhone("081298765432")
	require.NoError(t, err)
	d, err := driver.NewDriver(kernel.NewUUID(), "DRV-001", "Agus Wijaya", phone, "agus", hash, isAdmin, time.Now())
	require.NoError(t, err)
	return d
}

func TestLoginDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := newCredentialedDriver(t, "secret123", false)

	cmd, err := commands.NewLoginDriverCommand("agus", "secret123")
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	driverRepo.On("GetByUsername", ctx, "agus").Return(d, nil).Once()
	driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	issuer := newTestIssuer(t)
	handler := commands.NewLoginDriverCommandHandler(factory, issuer)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, d.ID().String(), result.DriverID)
	assert.Equal(t, "Agus Wijaya", result.Name)
	assert.False(t, result.IsAdmin)
	require.NotEmpty(t, result.Token)

	claims, err := issuer.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, d.ID().String(), claims.UserID)
	assert.Equal(t, "driver", claims.Role)
}

func TestLoginDriverCommandHandler_Handle_AdminRole(t *testing.T) {
	ctx := t.Context()
	d := newCredentialedDriver(t, "secret123", true)

	cmd, err := commands.NewLoginDriverCommand("agus", "secret123")
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)
	driverRepo.On("GetByUsername", ctx, "agus").Return(d, nil).Once()
	driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	issuer := newTestIssuer(t)
	handler := commands.NewLoginDriverCommandHandler(factory, issuer)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.IsAdmin)

	claims, err := issuer.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.True(t, claims.IsAdmin)
}

func TestLoginDriverCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	d := newCredentialedDriver(t, "secret123", false)

	cmd, err := commands.NewLoginDriverCommand("agus", "wrong-password")
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("Rollback", ctx).Return(nil)
	driverRepo.On("GetByUsername", ctx, "agus").Return(d, nil).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLoginDriverCommandHandler(factory, newTestIssuer(t))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAuthenticationFailed)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestLoginDriverCommandHandler_Handle_UnknownUsername(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewLoginDriverCommand("nobody", "secret123")
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("Rollback", ctx).Return(nil)
	driverRepo.On("GetByUsername", ctx, "nobody").Return(nil, errs.ErrObjectNotFound).Once()

	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLoginDriverCommandHandler(factory, newTestIssuer(t))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAuthenticationFailed, "unknown usernames must be indistinguishable from wrong passwords")
}
