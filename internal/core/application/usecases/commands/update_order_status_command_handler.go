package commands

import (
	"context"

	"wroom/internal/core/domain/model/order"
	"wroom/internal/core/domain/model/user"
	"wroom/internal/core/domain/services"
	"wroom/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles status changes for existing orders.
// Checks happen in a fixed order: existence, then authorization, then
// transition legality, so a forbidden caller cannot distinguish an illegal
// transition from a legal one.
//
// Courier claims take a separate path: the repository performs a conditional
// update so that of two concurrent claims exactly one succeeds and the loser
// receives ports.ErrOrderClaimConflict.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     *services.AccessPolicy
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status updates.
// The publisher may be nil; status changes are then not announced.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy *services.AccessPolicy,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
	}
}

// Handle processes the status update command and returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeTransition(cmd.Principal(), aggregate); err != nil {
		return nil, err
	}

	if isClaim(cmd, aggregate) {
		err = h.claim(ctx, orderRepo, aggregate, cmd)
	} else {
		err = h.progress(ctx, orderRepo, aggregate, cmd)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.announce(ctx, aggregate)

	return aggregate, nil
}

// isClaim reports whether the command is a courier taking an unclaimed order.
// Courier progression on an order the caller already holds goes through the
// regular path.
func isClaim(cmd UpdateOrderStatusCommand, aggregate *order.Order) bool {
	return cmd.Principal().Role() == user.Partner &&
		aggregate.Courier() == nil &&
		cmd.NextStatus() == order.WaitingForPickup
}

func (h *UpdateOrderStatusCommandHandler) claim(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	aggregate *order.Order,
	cmd UpdateOrderStatusCommand,
) error {
	if err := aggregate.Claim(cmd.Principal().ID()); err != nil {
		return err
	}

	return orderRepo.ClaimForCourier(ctx, cmd.OrderID(), cmd.Principal().ID())
}

func (h *UpdateOrderStatusCommandHandler) progress(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	aggregate *order.Order,
	cmd UpdateOrderStatusCommand,
) error {
	if err := aggregate.Transition(cmd.Principal().Role(), cmd.NextStatus()); err != nil {
		return err
	}

	return orderRepo.Update(ctx, aggregate)
}

// announce publishes the change after commit. Publishing is best-effort;
// a broker outage must not fail an already committed update.
func (h *UpdateOrderStatusCommandHandler) announce(ctx context.Context, aggregate *order.Order) {
	if h.publisher == nil {
		return
	}

	_ = h.publisher.PublishOrderChanged(ctx, ports.OrderChangedEvent{
		OrderID:   aggregate.ID(),
		Status:    aggregate.Status().String(),
		CourierID: aggregate.Courier(),
	})
}
