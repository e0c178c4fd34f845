package queries

import (
	"context"

	"wroom/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPartnerOrdersQueryHandler builds a delivery partner's order feed.
// The feed combines the open marketplace (ready-for-pickup orders no
// courier has claimed yet) with everything the partner has claimed,
// including completed deliveries.
type GetPartnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerOrdersQueryHandler creates a handler for partner order feeds.
// Requires a GORM database connection for query execution.
func NewGetPartnerOrdersQueryHandler(db *gorm.DB) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{db: db}
}

// Handle executes the query. Unclaimed orders sort before the partner's own
// so new work is always at the top of the feed.
func (h GetPartnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerOrdersQuery,
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
		WHERE (status = ? AND courier_id IS NULL)
		   OR courier_id = ?
		ORDER BY courier_id NULLS FIRST, created_at
	`, order.ReadyForPickup.String(), query.CourierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
