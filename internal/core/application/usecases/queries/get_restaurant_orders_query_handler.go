package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler lists a restaurant's orders, oldest first,
// so the kitchen works the queue in arrival order.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order listings.
// Requires a GORM database connection for query execution.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the restaurant's orders sorted by
// creation time, oldest first.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			courier_id,
			status,
			total_price,
			created_at,
			updated_at
		FROM orders
		WHERE restaurant_id = ?
		ORDER BY created_at
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
