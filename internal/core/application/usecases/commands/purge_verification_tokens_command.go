package commands

import (
	"errors"

	"wroom/internal/pkg/guard"
)

var ErrPurgeVerificationTokensCommandIsNotConstructed = errors.New(
	"PurgeVerificationTokensCommand must be created via NewPurgeVerificationTokensCommand constructor",
)

// PurgeVerificationTokensCommand requests removal of expired email
// verification tokens. Issued on a schedule by the background job.
type PurgeVerificationTokensCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeVerificationTokensCommand creates a parameterless purge command.
func NewPurgeVerificationTokensCommand() PurgeVerificationTokensCommand {
	return PurgeVerificationTokensCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeVerificationTokensCommandIsNotConstructed if validation fails.
func (c PurgeVerificationTokensCommand) Validate() error {
	return c.guard.Validate(ErrPurgeVerificationTokensCommandIsNotConstructed)
}
