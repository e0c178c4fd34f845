package order

import (
	"errors"
	"fmt"

	"wroom/internal/core/domain/model/user"
	"wroom/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status is not the exact
// successor of the current status on the acting role's track.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with two independent per-role tracks that
// merge at the restaurant/courier handoff.
//
// State transitions:
//
//	restaurant track:  Pending -> Accepted -> Preparing -> ReadyForPickup
//	                   (each of these may also go to Canceled)
//	courier track:     ReadyForPickup -> WaitingForPickup -> InTransit -> Completed
//
// Completed and Canceled are terminal; no transition leaves either state.
// Couriers cannot cancel. Every transition table lives here so both route
// handlers share a single definition instead of inline allowed-status lists.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	Pending

	// Accepted means the restaurant has taken the order.
	Accepted

	// Preparing means the kitchen is working on the order.
	Preparing

	// ReadyForPickup means the order awaits a courier claim.
	ReadyForPickup

	// WaitingForPickup means a courier has claimed the order and is heading
	// to the restaurant.
	WaitingForPickup

	// InTransit means the courier picked the order up and is delivering it.
	InTransit

	// Completed means the order was delivered. Terminal.
	Completed

	// Canceled is the terminal escape hatch, reachable by the restaurant
	// track from any of its non-terminal states.
	Canceled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		Pending:          "PENDING",
		Accepted:         "ACCEPTED",
		Preparing:        "PREPARING",
		ReadyForPickup:   "READY_FOR_PICKUP",
		WaitingForPickup: "WAITING_FOR_PICKUP",
		InTransit:        "IN_TRANSIT",
		Completed:        "COMPLETED",
		Canceled:         "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "PENDING",
		Accepted:         "ACCEPTED",
		Preparing:        "PREPARING",
		ReadyForPickup:   "READY_FOR_PICKUP",
		WaitingForPickup: "WAITING_FOR_PICKUP",
		InTransit:        "IN_TRANSIT",
		Completed:        "COMPLETED",
		Canceled:         "CANCELED",
	}
}

// restaurantTransitions is the restaurant-side transition table: the kitchen
// walks the order forward one step at a time and may cancel at any of its
// stages, including immediately before handoff.
func restaurantTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Accepted, Canceled},
		Accepted:       {Preparing, Canceled},
		Preparing:      {ReadyForPickup, Canceled},
		ReadyForPickup: {Canceled},
	}
}

// courierTransitions is the courier-side transition table: strictly forward,
// no cancellation.
func courierTransitions() map[Status][]Status {
	return map[Status][]Status{
		ReadyForPickup:   {WaitingForPickup},
		WaitingForPickup: {InTransit},
		InTransit:        {Completed},
	}
}

// transitionsFor returns the transition table for a role.
// Customers and admins have no transition verbs at all.
func transitionsFor(actor user.Role) map[Status][]Status {
	switch actor {
	case user.Restaurant:
		return restaurantTransitions()
	case user.Partner:
		return courierTransitions()
	default:
		return nil
	}
}

// StatusFromString parses a wire status value. Unrecognized strings are
// rejected here, before any transition table lookup can happen.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is a resting state.
// Completed and Canceled orders never move again.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// TransitionsFor returns the statuses the given role may move this status to.
// Returns nil for roles without transition capability or statuses outside the
// role's track.
func (s Status) TransitionsFor(actor user.Role) []Status {
	table := transitionsFor(actor)
	if table == nil {
		return nil
	}
	return table[s]
}

// TransitionTo validates a transition on the acting role's track and returns
// the new status. This is a pure function of (current, requested, role) with
// no side effects, independently testable from the aggregate.
//
// Returns (0, error) wrapping ErrInvalidTransition when the requested status
// is not an exact successor of the current status for this role, including
// any attempt to leave a terminal state.
func (s Status) TransitionTo(actor user.Role, next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	for _, allowed := range s.TransitionsFor(actor) {
		if allowed == next {
			return next, nil
		}
	}

	return 0, fmt.Errorf("%w: %s cannot move %s to %s", ErrInvalidTransition, actor, s, next)
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment. A courier is present exactly from the claim onward:
// WaitingForPickup, InTransit and Completed require one, every other status
// forbids one.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	claimed := s == WaitingForPickup || s == InTransit || s == Completed

	if courier && !claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && claimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}
