package queries

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/user"
	"wroom/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order on behalf of an authenticated
// principal. Unlike the listing queries, the target order is named by the
// caller, so the read is guarded by the access policy: the handler decides
// per role whether the principal may see the order at all.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal user.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
// Validates the order identifier and the acting principal.
func NewGetOrderQuery(orderID kernel.UUID, principal user.Principal) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setPrincipal(principal),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Principal returns the authenticated actor requesting the order.
func (q GetOrderQuery) Principal() user.Principal {
	return q.principal
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setPrincipal(principal user.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	q.principal = principal
	return nil
}
