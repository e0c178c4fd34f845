package queries

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/guard"
)

var ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
	"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
)

// GetPartnerOrdersQuery retrieves the orders visible to a delivery partner:
// unclaimed orders ready for pickup plus the partner's own claimed orders.
//
// Example:
//
//	query, err := NewGetPartnerOrdersQuery(principal.ID())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetPartnerOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetPartnerOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerOrdersQuery creates a query for a delivery partner's order feed.
func NewGetPartnerOrdersQuery(courierID kernel.UUID) (GetPartnerOrdersQuery, error) {
	query := GetPartnerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetPartnerOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPartnerOrdersQueryIsNotConstructed if validation fails.
func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the delivery partner.
func (q GetPartnerOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetPartnerOrdersQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	q.courierID = courierID
	return nil
}
