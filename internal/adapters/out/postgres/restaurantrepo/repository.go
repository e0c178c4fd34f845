package restaurantrepo

import (
	"context"
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/restaurant"
	"wroom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant and its menu to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing restaurant to the database, replacing its menu.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "address", "city", "zip_code", "is_blocked").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, item := range dto.Items {
		item := item
		err := r.db.WithContext(ctx).Save(&item).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant with its menu by ID. Owner activity is read
// from the users table in the same transaction so placement sees a
// consistent picture of whether the restaurant may take orders.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	var ownerIsActive bool
	err = r.db.WithContext(ctx).Raw(`
		SELECT NOT is_blocked AND NOT is_deleted
		FROM users
		WHERE id = ?
	`, dto.OwnerID).Scan(&ownerIsActive).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, ownerIsActive)
}
