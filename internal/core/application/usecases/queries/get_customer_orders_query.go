package queries

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves the order history of a single customer.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(principal.ID())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetCustomerOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetCustomerOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's orders.
// The customer ID comes from the authenticated principal, never from
// request input, so customers can only ever list their own orders.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	query := GetCustomerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerOrdersQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}
