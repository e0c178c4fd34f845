// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant and menu persistence. Implements the repository pattern for
// the restaurant domain aggregate.
package restaurantrepo

import (
	"time"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string    `gorm:"not null"`
	Address   string
	City      string
	ZipCode   string
	IsBlocked bool      `gorm:"not null;default:false"`
	Items     []ItemDTO `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// ItemDTO represents one menu item. Price is in minor currency units.
type ItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string    `gorm:"not null"`
	Description  string
	Price        int64 `gorm:"not null"`
	IsBlocked    bool  `gorm:"not null;default:false"`
}

// TableName specifies the database table name for menu item entities.
func (ItemDTO) TableName() string {
	return "restaurant_items"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
// Owner activity is derived from the users table on read and never stored here.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	menuItems := aggregate.Items()
	items := make([]ItemDTO, 0, len(menuItems))
	for _, item := range menuItems {
		items = append(items, itemFromDomain(item))
	}

	return RestaurantDTO{
		ID:        aggregate.ID().Bytes(),
		OwnerID:   aggregate.OwnerID().Bytes(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		City:      aggregate.City(),
		ZipCode:   aggregate.ZipCode(),
		IsBlocked: aggregate.IsBlocked(),
		Items:     items,
	}
}

func itemFromDomain(item *restaurant.Item) ItemDTO {
	return ItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Description:  item.Description(),
		Price:        item.Price().MinorUnits(),
		IsBlocked:    item.IsBlocked(),
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
// ownerIsActive comes from the joined owner row at read time.
func toDomain(dto RestaurantDTO, ownerIsActive bool) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*restaurant.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return restaurant.RestoreRestaurant(
		id,
		ownerID,
		dto.Name,
		dto.Address,
		dto.City,
		dto.ZipCode,
		dto.IsBlocked,
		ownerIsActive,
		items,
	)
}

func itemToDomain(dto ItemDTO) (*restaurant.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreItem(
		id,
		restaurantID,
		dto.Name,
		dto.Description,
		kernel.Money(dto.Price),
		dto.IsBlocked,
	)
}
