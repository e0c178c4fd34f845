package commands

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/order"
	"wroom/internal/core/domain/model/user"
	"wroom/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// status on behalf of an authenticated principal. Covers restaurant
// progression, cancellation, courier claims and courier progression.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	principal  user.Principal
	nextStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates the order identifier, the acting principal and the target status.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	principal user.Principal,
	nextStatus order.Status,
) (UpdateOrderStatusCommand, error) {
	updateCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setPrincipal(principal),
		updateCommand.setNextStatus(nextStatus),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the authenticated actor requesting the change.
func (c UpdateOrderStatusCommand) Principal() user.Principal {
	return c.principal
}

// NextStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NextStatus() order.Status {
	return c.nextStatus
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setPrincipal(principal user.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *UpdateOrderStatusCommand) setNextStatus(nextStatus order.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
