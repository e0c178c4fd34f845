package ports

import (
	"context"
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/order"
)

// ErrOrderClaimConflict is returned by ClaimForCourier when the conditional
// claim write matched no row: another courier claimed the order between the
// read and the write, or the order left ReadyForPickup.
var ErrOrderClaimConflict = errors.New("order was claimed concurrently or is no longer available")

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving and mutating orders including the
// atomic claim write couriers race on.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and courier changes to an existing order.
	// Line items and parties are immutable after creation and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with its
	// line items attached.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ClaimForCourier performs the atomic claim-on-first-touch write: it sets
	// courierID and moves the status to WaitingForPickup only if the stored
	// row still has no courier and is still in ReadyForPickup. Exactly one of
	// two racing claims succeeds; the loser gets ErrOrderClaimConflict.
	ClaimForCourier(ctx context.Context, orderID, courierID kernel.UUID) error
}
