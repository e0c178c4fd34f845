package commands

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/guard"
)

var (
	ErrBlockUserCommandIsNotConstructed = errors.New(
		"BlockUserCommand must be created via NewBlockUserCommand constructor",
	)
	ErrCannotBlockSelf = errors.New("you cannot block or unblock yourself")
)

// BlockUserCommand represents an administrator's request to block or
// unblock a user account.
type BlockUserCommand struct { //nolint:recvcheck //using for validation
	adminID kernel.UUID
	userID  kernel.UUID
	blocked bool

	guard guard.ConstructorGuard
}

// NewBlockUserCommand creates a command to change a user's blocked state.
// Administrators cannot block or unblock their own account.
func NewBlockUserCommand(adminID, userID kernel.UUID, blocked bool) (BlockUserCommand, error) {
	blockCommand := BlockUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		blockCommand.setAdminID(adminID),
		blockCommand.setUserID(userID),
	); err != nil {
		return BlockUserCommand{}, err
	}

	if adminID.IsEqual(userID) {
		return BlockUserCommand{}, ErrCannotBlockSelf
	}

	blockCommand.blocked = blocked

	return blockCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrBlockUserCommandIsNotConstructed if validation fails.
func (c BlockUserCommand) Validate() error {
	return c.guard.Validate(ErrBlockUserCommandIsNotConstructed)
}

// AdminID returns the identifier of the acting administrator.
func (c BlockUserCommand) AdminID() kernel.UUID {
	return c.adminID
}

// UserID returns the identifier of the affected account.
func (c BlockUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Blocked returns the desired blocked state.
func (c BlockUserCommand) Blocked() bool {
	return c.blocked
}

func (c *BlockUserCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *BlockUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
