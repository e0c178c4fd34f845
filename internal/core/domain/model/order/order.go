package order

import (
	"errors"
	"fmt"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/user"
	"wroom/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineItemsAreRequired is returned when attempting to create an order
	// without any line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")

	// ErrAlreadyClaimed is returned when a courier attempts to claim an order
	// whose courier slot is already taken.
	ErrAlreadyClaimed = errors.New("order is already claimed by a courier")

	// ErrNotClaimed is returned when a courier-track transition is attempted
	// on an order no courier has claimed yet.
	ErrNotClaimed = errors.New("order has not been claimed by a courier")
)

// Order represents a customer's order in the system. It is the aggregate root
// that manages the order lifecycle from placement through restaurant
// preparation and courier delivery to a terminal state.
//
// Order follows these invariants:
//   - Belongs to exactly one customer and one restaurant, both fixed at creation
//   - Total price equals the sum of snapshotted line item totals and never changes
//   - The courier slot is empty until the first claim and can never be reassigned
//   - Status moves strictly forward on the per-role tracks defined in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the placing customer, immutable after creation
	customerID kernel.UUID

	// restaurantID is the target restaurant, immutable after creation
	restaurantID kernel.UUID

	// courierID is the claiming courier's ID (nil until claimed, set exactly once)
	courierID *kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// totalPrice is the sum of line item totals, snapshotted at placement
	totalPrice kernel.Money

	// lineItems are the ordered items with their snapshotted unit prices
	lineItems []LineItem

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a newly placed Order with validation. This is the only way
// to create a valid Order; it starts in Pending status with no courier and a
// total computed once from the line item snapshots.
//
// Example:
//
//	li, _ := order.NewLineItem(itemID, 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, []order.LineItem{li})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, customerID, restaurantID kernel.UUID, lineItems []LineItem) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status and any courier claim. It re-validates every invariant, including
// courier/status consistency, so corrupted rows fail loudly instead of
// producing a half-valid aggregate. Used only by repository implementations.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	lineItems []LineItem,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, lineItems)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if err = status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
		cid := *courierID
		o.courierID = &cid
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the placing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the target restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Courier returns the claiming courier's ID.
// Returns nil if no courier has claimed the order.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the total snapshotted at placement.
// It is invariant under every subsequent transition.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// LineItems returns the ordered items with their snapshotted prices.
func (o *Order) LineItems() []LineItem {
	return o.lineItems
}

// Transition moves the order to the requested status on the acting role's
// track. The claim (courier taking a ReadyForPickup order) must go through
// Claim instead; a courier-track transition on an unclaimed order is
// rejected here with ErrNotClaimed.
//
// Returns an error wrapping ErrInvalidTransition if the requested status is
// not the exact successor of the current status for this role.
func (o *Order) Transition(actor user.Role, next Status) error {
	newStatus, err := o.status.TransitionTo(actor, next)
	if err != nil {
		return err
	}

	if actor == user.Partner && o.courierID == nil {
		return ErrNotClaimed
	}

	o.status = newStatus
	return nil
}

// Claim assigns the order to a courier on first touch, moving it from
// ReadyForPickup to WaitingForPickup in the same step.
//
// This method enforces the following business rules:
//   - The courier ID must be valid
//   - The order must be unclaimed; the slot is assigned exactly once
//   - The order must be in ReadyForPickup status
//
// The persistence layer must write courierID and status atomically with a
// conditional update so two concurrent claims cannot both succeed; this
// method expresses the same rule at the aggregate level.
func (o *Order) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.courierID != nil {
		return fmt.Errorf("%w: courier %s", ErrAlreadyClaimed, o.courierID)
	}

	newStatus, err := o.status.TransitionTo(user.Partner, WaitingForPickup)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	total := kernel.Money(0)
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
		total = total.Add(li.Total())
	}

	o.lineItems = lineItems
	o.totalPrice = total
	return nil
}
