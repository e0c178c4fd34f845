package commands_test

import (
	"testing"

	"wroom/internal/core/application/usecases/commands"
	"wroom/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockUserCommand_ValidInput(t *testing.T) {
	adminID := kernel.NewUUID()
	userID := kernel.NewUUID()

	cmd, err := commands.NewBlockUserCommand(adminID, userID, true)

	require.NoError(t, err)
	assert.Equal(t, adminID, cmd.AdminID())
	assert.Equal(t, userID, cmd.UserID())
	assert.True(t, cmd.Blocked())
}

func TestNewBlockUserCommand_SelfBlock(t *testing.T) {
	adminID := kernel.NewUUID()

	_, err := commands.NewBlockUserCommand(adminID, adminID, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCannotBlockSelf)
}

func TestNewBlockUserCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewBlockUserCommand(kernel.NewUUID(), kernel.UUID{}, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestBlockUserCommand_Validate(t *testing.T) {
	var cmd commands.BlockUserCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrBlockUserCommandIsNotConstructed)
}
