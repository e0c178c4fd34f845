package ports

import (
	"context"
	"time"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user aggregate.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// PurgeExpiredVerificationTokens clears verification tokens whose expiry
	// lies before the given instant. Returns how many accounts were touched.
	// Invoked by the scheduled cleanup job.
	PurgeExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error)
}
