package commands

import (
	"context"
	"time"
)

// PurgeVerificationTokensCommandHandler clears email verification tokens
// whose expiry has passed. Affected accounts stay unverified; the user
// requests a fresh token on their next sign-in attempt.
type PurgeVerificationTokensCommandHandler struct {
	uowFactory UserUoWFactory
	now        func() time.Time
}

// NewPurgeVerificationTokensCommandHandler creates a handler for token cleanup.
func NewPurgeVerificationTokensCommandHandler(uowFactory UserUoWFactory) PurgeVerificationTokensCommandHandler {
	return PurgeVerificationTokensCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the purge command and returns how many accounts were touched.
func (h *PurgeVerificationTokensCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeVerificationTokensCommand,
) (int64, error) {
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

	userRepo := uow.UserRepository()
	purged, err := userRepo.PurgeExpiredVerificationTokens(ctx, h.now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
