package commands

import (
	"context"
	"fmt"

	"wroom/internal/core/domain/model/user"
	"wroom/internal/core/ports"
)

// BlockUserCommandHandler handles blocking and unblocking of user accounts.
// Admin-only; route middleware rejects other roles before the handler runs.
type BlockUserCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.Notifier
}

// NewBlockUserCommandHandler creates a handler for account blocking.
// The notifier may be nil; affected users are then not informed by mail.
func NewBlockUserCommandHandler(uowFactory UserUoWFactory, notifier ports.Notifier) BlockUserCommandHandler {
	return BlockUserCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the block command. The state change is committed first;
// the notification mail is best-effort and never fails the command.
func (h *BlockUserCommandHandler) Handle(ctx context.Context, cmd BlockUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if cmd.Blocked() {
		account.Block()
	} else {
		account.Unblock()
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notify(ctx, account, cmd.Blocked())

	return nil
}

func (h *BlockUserCommandHandler) notify(ctx context.Context, account *user.User, blocked bool) {
	if h.notifier == nil {
		return
	}

	state := "unblocked"
	if blocked {
		state = "blocked"
	}

	subject := fmt.Sprintf("Your account has been %s", state)
	body := fmt.Sprintf(
		"Hello %s. Your account has been %s by administration. "+
			"If you have questions, feel free to contact us at no-reply@wroom.dk.",
		account.FirstName(), state,
	)

	_ = h.notifier.Send(ctx, account.Email(), subject, body)
}
