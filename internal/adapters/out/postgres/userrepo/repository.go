package userrepo

import (
	"context"
	"errors"
	"time"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/user"
	"wroom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user account to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
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

// Update saves an existing user account to the database.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select(
			"email", "first_name", "last_name", "restaurant_id",
			"is_verified", "is_blocked", "is_deleted",
			"verification_token", "verification_expiry",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user account by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// PurgeExpiredVerificationTokens clears verification tokens that expired
// before the given instant. Accounts stay unverified; users request a fresh
// token on their next sign-in attempt.
func (r *GormUserRepository) PurgeExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("verification_token <> '' AND verification_expiry < ?", now).
		Updates(map[string]any{"verification_token": ""})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
