package commands_test

import (
	"testing"

	"kurirkan/internal/core/application/usecases/commands"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, order.Delivery,
		"Jl. Sudirman 1", "Jl. Thamrin 9",
		order.Details{Price: 25000},
	)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, order.Delivery, cmd.ServiceType())
	assert.Equal(t, "Jl. Sudirman 1", cmd.PickupAddress())
	assert.Equal(t, "Jl. Thamrin 9", cmd.DeliveryAddress())
}

func TestNewCreateOrderCommand_DefaultsPaymentMethodToCash(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Ride,
		"Jl. Sudirman 1", "Jl. Thamrin 9",
		order.Details{Price: 15000},
	)

	require.NoError(t, err)
	assert.Equal(t, "cash", cmd.Details().PaymentMethod)
}

func TestNewCreateOrderCommand_KeepsExplicitPaymentMethod(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivery,
		"Jl. Sudirman 1", "Jl. Thamrin 9",
		order.Details{Price: 15000, PaymentMethod: "transfer"},
	)

	require.NoError(t, err)
	assert.Equal(t, "transfer", cmd.Details().PaymentMethod)
}

func TestNewCreateOrderCommand_EmptyPickupAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivery,
		"", "Jl. Thamrin 9",
		order.Details{},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPickupAddressIsRequired)
}

func TestNewCreateOrderCommand_EmptyDeliveryAddress(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivery,
		"Jl. Sudirman 1", "",
		order.Details{},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
}

func TestNewCreateOrderCommand_NegativePrice(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Delivery,
		"Jl. Sudirman 1", "Jl. Thamrin 9",
		order.Details{Price: -1},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPriceIsInvalid)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), order.Delivery,
		"Jl. Sudirman 1", "Jl. Thamrin 9",
		order.Details{},
	)

	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidServiceType(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.ServiceType(0),
		"Jl. Sudirman 1", "Jl. Thamrin 9",
		order.Details{},
	)

	require.Error(t, err)
}
