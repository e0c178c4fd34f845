// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight
// from the database for efficiency.
package queries

import (
	"database/sql"
	"time"

	"wroom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderView is the read model returned by order listing queries.
// TotalPrice is in minor currency units.
type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	CourierID    *kernel.UUID
	Status       string
	TotalPrice   kernel.Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// scanOrderViews drains rows produced by a SELECT over the order listing
// columns: id, customer_id, restaurant_id, courier_id, status, total_price,
// created_at, updated_at.
func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)

	for rows.Next() {
		var (
			view       OrderView
			id         uuid.UUID
			customerID uuid.UUID
			restaurant uuid.UUID
			courierID  uuid.NullUUID
			totalPrice int64
		)

		err := rows.Scan(
			&id,
			&customerID,
			&restaurant,
			&courierID,
			&view.Status,
			&totalPrice,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.RestaurantID, err = kernel.UUIDFromBytes(restaurant[:]); err != nil {
			return nil, err
		}
		if courierID.Valid {
			claimedBy, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.CourierID = &claimedBy
		}
		view.TotalPrice = kernel.Money(totalPrice)

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
