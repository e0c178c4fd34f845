package commands_test

import (
	"testing"

	"wroom/internal/core/application/usecases/commands"
	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/order"
	"wroom/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePrincipal(t *testing.T, role user.Role, restaurantID *kernel.UUID) user.Principal {
	t.Helper()

	principal, err := user.NewPrincipal(kernel.NewUUID(), role, restaurantID)
	require.NoError(t, err)
	return principal
}

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	principal := makePrincipal(t, user.Partner, nil)

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, principal, order.WaitingForPickup)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, principal, cmd.Principal())
	assert.Equal(t, order.WaitingForPickup, cmd.NextStatus())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	principal := makePrincipal(t, user.Partner, nil)

	_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, principal, order.Accepted)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_UnconstructedPrincipal(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), user.Principal{}, order.Accepted)

	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrPrincipalIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	principal := makePrincipal(t, user.Partner, nil)

	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), principal, order.Unknown)

	require.Error(t, err)
}

func TestUpdateOrderStatusCommand_Validate(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
