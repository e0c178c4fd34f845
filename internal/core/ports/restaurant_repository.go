// Package ports defines repository and outbound interfaces for the Wroom core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate with its menu.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier, with its full menu
	// and the owner account's activity state attached. Order placement uses
	// this one read both for availability checks and price snapshotting.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
