package queries

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery retrieves the incoming orders of a restaurant.
// Used by restaurant staff to work through the preparation queue.
type GetRestaurantOrdersQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for a restaurant's orders.
// The restaurant ID comes from the authenticated principal's restaurant
// binding, so staff can only ever list their own restaurant's orders.
func NewGetRestaurantOrdersQuery(restaurantID kernel.UUID) (GetRestaurantOrdersQuery, error) {
	query := GetRestaurantOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRestaurantID(restaurantID); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantOrdersQueryIsNotConstructed if validation fails.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant whose orders are listed.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

func (q *GetRestaurantOrdersQuery) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	q.restaurantID = restaurantID
	return nil
}
