package queries

import (
	"context"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/order"
	"wroom/internal/core/domain/services"
)

// OrderSource loads order aggregates for single-order reads.
// Satisfied by ports.OrderRepository; kept narrow because this handler
// never writes.
type OrderSource interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// GetOrderQueryHandler returns one order with its line items.
// Unlike the listing handlers this one goes through the domain aggregate:
// the access policy needs the full order to decide visibility, and the
// response carries line items the listing projections omit.
type GetOrderQueryHandler struct {
	orders OrderSource
	policy *services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(orders OrderSource, policy *services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders: orders,
		policy: policy,
	}
}

// Handle loads the order and checks that the principal may view it.
// Checks happen in a fixed order: existence, then visibility, so a missing
// order is reported as not found for every role.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeRead(query.Principal(), aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
