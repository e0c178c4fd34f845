package restaurant

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrItemNameIsRequired is returned when attempting to create an item without a name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Item is a menu entry belonging to exactly one restaurant. The price stored
// here is the catalog price; orders snapshot it into their line items at
// placement time and never read it again.
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// restaurantID references the owning restaurant
	restaurantID kernel.UUID

	name        string
	description string

	// price is the current catalog price in minor units
	price kernel.Money

	// isBlocked is set by admins; blocked items are not orderable
	isBlocked bool

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a new menu Item with validation.
func NewItem(id, restaurantID kernel.UUID, name, description string, price kernel.Money) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.description = description
	return item, nil
}

// RestoreItem reconstructs an Item from persistence. Used only by repositories.
func RestoreItem(
	id, restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	isBlocked bool,
) (*Item, error) {
	item, err := NewItem(id, restaurantID, name, description, price)
	if err != nil {
		return nil, err
	}

	item.isBlocked = isBlocked
	return item, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// RestaurantID returns the owning restaurant's identifier.
func (i *Item) RestaurantID() kernel.UUID {
	return i.restaurantID
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item's description.
func (i *Item) Description() string {
	return i.description
}

// Price returns the current catalog price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// IsBlocked reports whether an admin has blocked the item.
func (i *Item) IsBlocked() bool {
	return i.isBlocked
}

// Block marks the item as blocked. Blocking is idempotent.
func (i *Item) Block() {
	i.isBlocked = true
}

// Unblock clears the blocked flag. Unblocking is idempotent.
func (i *Item) Unblock() {
	i.isBlocked = false
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	i.restaurantID = restaurantID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
