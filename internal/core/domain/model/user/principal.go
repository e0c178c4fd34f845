package user

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through the NewPrincipal constructor.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal is the acting identity attached to a request by the session
// middleware: a user id plus the role it acts as, and for restaurant staff
// the restaurant they operate. The core trusts this identity; token
// verification happens before a Principal is ever constructed.
type Principal struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	role         Role
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewPrincipal creates a validated acting identity.
// restaurantID may be nil for non-restaurant roles.
func NewPrincipal(id kernel.UUID, role Role, restaurantID *kernel.UUID) (Principal, error) {
	p := Principal{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setRole(role),
		p.setRestaurantID(restaurantID),
	); err != nil {
		return Principal{}, err
	}

	return p, nil
}

// Validate ensures the principal was created through the constructor.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ID returns the acting user's unique identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the role the principal acts as.
func (p Principal) Role() Role {
	return p.role
}

// RestaurantID returns the operated restaurant's ID, nil for non-restaurant roles.
func (p Principal) RestaurantID() *kernel.UUID {
	return p.restaurantID
}

func (p *Principal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Principal) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Principal) setRestaurantID(restaurantID *kernel.UUID) error {
	if restaurantID == nil {
		return nil
	}
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	rid := *restaurantID
	p.restaurantID = &rid
	return nil
}
