// Package userrepo provides data transfer objects and mapping functions for
// user account persistence. Implements the repository pattern for the user
// domain aggregate.
package userrepo

import (
	"time"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email              string    `gorm:"uniqueIndex;not null"`
	FirstName          string
	LastName           string
	Role               string     `gorm:"type:varchar(32);not null"`
	RestaurantID       *uuid.UUID `gorm:"type:uuid;index"`
	IsVerified         bool       `gorm:"not null;default:false"`
	IsBlocked          bool       `gorm:"not null;default:false"`
	IsDeleted          bool       `gorm:"not null;default:false"`
	VerificationToken  string
	VerificationExpiry time.Time `gorm:"index"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	var restaurantID *uuid.UUID
	if id := aggregate.RestaurantID(); id != nil {
		raw := id.Bytes()
		restaurantID = &raw
	}

	return UserDTO{
		ID:                 aggregate.ID().Bytes(),
		Email:              aggregate.Email(),
		FirstName:          aggregate.FirstName(),
		LastName:           aggregate.LastName(),
		Role:               aggregate.Role().String(),
		RestaurantID:       restaurantID,
		IsVerified:         aggregate.IsVerified(),
		IsBlocked:          aggregate.IsBlocked(),
		IsDeleted:          aggregate.IsDeleted(),
		VerificationToken:  aggregate.VerificationToken(),
		VerificationExpiry: aggregate.VerificationExpiry(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rID, restaurantErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if restaurantErr != nil {
			return nil, restaurantErr
		}

		restaurantID = &rID
	}

	return user.RestoreUser(
		id,
		dto.Email,
		dto.FirstName,
		dto.LastName,
		role,
		restaurantID,
		dto.IsVerified,
		dto.IsBlocked,
		dto.IsDeleted,
		dto.VerificationToken,
		dto.VerificationExpiry,
	)
}
