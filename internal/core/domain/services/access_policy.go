package services

import (
	"errors"
	"fmt"

	"wroom/internal/core/domain/model/order"
	"wroom/internal/core/domain/model/user"
)

// ErrForbidden is returned when an authenticated principal is not entitled to
// act on the order it targets. It is deliberately distinct from a not-found
// error: the order exists, the actor just may not touch it.
var ErrForbidden = errors.New("principal is not allowed to act on this order")

// AccessPolicy decides whether an acting principal may mutate or read a
// specific order. All ownership rules live here so route handlers never
// compare party IDs inline.
//
// Rules:
//   - A restaurant actor may act only on orders addressed to its own restaurant.
//   - A courier actor may act on an order it has claimed, or claim an unclaimed one.
//   - A customer never drives transitions and may read only its own orders.
//   - Admins read everything and transition nothing.
type AccessPolicy struct{}

// NewAccessPolicy creates the policy. It is stateless and safe to share.
func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// AuthorizeTransition checks that the principal is entitled to apply a status
// transition to the given order. It decides ownership only; whether the
// requested status is a legal successor is the state machine's concern.
//
// Returns an error wrapping ErrForbidden on any ownership or capability
// mismatch, with no other side effects.
func (p *AccessPolicy) AuthorizeTransition(principal user.Principal, o *order.Order) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	switch principal.Role() {
	case user.Restaurant:
		restaurantID := principal.RestaurantID()
		if restaurantID == nil || !o.RestaurantID().IsEqual(*restaurantID) {
			return fmt.Errorf("%w: order belongs to another restaurant", ErrForbidden)
		}
		return nil

	case user.Partner:
		if courierID := o.Courier(); courierID != nil && !courierID.IsEqual(principal.ID()) {
			return fmt.Errorf("%w: order is claimed by another courier", ErrForbidden)
		}
		return nil

	default:
		return fmt.Errorf("%w: role %s cannot transition orders", ErrForbidden, principal.Role())
	}
}

// AuthorizeRead checks that the principal may view the given order.
func (p *AccessPolicy) AuthorizeRead(principal user.Principal, o *order.Order) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	switch principal.Role() {
	case user.Admin:
		return nil

	case user.Customer:
		if !o.CustomerID().IsEqual(principal.ID()) {
			return fmt.Errorf("%w: order belongs to another customer", ErrForbidden)
		}
		return nil

	case user.Restaurant:
		restaurantID := principal.RestaurantID()
		if restaurantID == nil || !o.RestaurantID().IsEqual(*restaurantID) {
			return fmt.Errorf("%w: order belongs to another restaurant", ErrForbidden)
		}
		return nil

	case user.Partner:
		// Couriers see unclaimed handoff-ready orders and their own claims.
		if o.Status() == order.ReadyForPickup && o.Courier() == nil {
			return nil
		}
		if courierID := o.Courier(); courierID != nil && courierID.IsEqual(principal.ID()) {
			return nil
		}
		return fmt.Errorf("%w: order is not available to this courier", ErrForbidden)

	default:
		return fmt.Errorf("%w: role %s cannot read orders", ErrForbidden, principal.Role())
	}
}
