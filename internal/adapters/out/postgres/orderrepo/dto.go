// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the three listing access paths: by customer, by restaurant and
// by courier claim state.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;index"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;index"`
	CourierID    *uuid.UUID     `gorm:"type:uuid;index"`
	Status       string         `gorm:"type:varchar(32);index"`
	TotalPrice   int64          `gorm:"not null"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Lines are immutable after
// placement; the unit price is the catalog price snapshotted at that time,
// in minor currency units.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional courier assignment and lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	lineItems := aggregate.LineItems()
	items := make([]OrderItemDTO, 0, len(lineItems))
	for _, lineItem := range lineItems {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ItemID:    lineItem.ItemID().Bytes(),
			Quantity:  lineItem.Quantity(),
			UnitPrice: lineItem.UnitPrice().MinorUnits(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		CourierID:    courierID,
		Status:       aggregate.Status().String(),
		TotalPrice:   aggregate.TotalPrice().MinorUnits(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and courier assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(item.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		lineItem, itemErr := order.NewLineItem(itemID, item.Quantity, kernel.Money(item.UnitPrice))
		if itemErr != nil {
			return nil, itemErr
		}

		lineItems = append(lineItems, lineItem)
	}

	return order.RestoreOrder(id, customerID, restaurantID, courierID, status, lineItems)
}
