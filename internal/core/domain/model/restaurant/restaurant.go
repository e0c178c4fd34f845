package restaurant

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
	// created through NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrItemNotFound is returned when a menu item does not belong to this restaurant.
	ErrItemNotFound = errors.New("item does not belong to this restaurant")
)

// Restaurant is the aggregate root for a restaurant and its menu.
// Orders reference a restaurant and may only contain items from its menu;
// the item lookup below is how order placement snapshots prices.
//
// Invariants:
//   - Must have a valid unique identifier, an owner and a non-empty name
//   - Menu items always belong to exactly one restaurant
//   - A blocked restaurant, or one whose owner is blocked or deleted, accepts no orders
type Restaurant struct {
	// id is the unique identifier for the restaurant
	id kernel.UUID

	// ownerID references the restaurant account operating this restaurant
	ownerID kernel.UUID

	name    string
	address string
	city    string
	zipCode string

	// isBlocked is set by admins; blocked restaurants accept no orders
	isBlocked bool

	// ownerIsActive mirrors the owner account's blocked/deleted state at load time
	ownerIsActive bool

	// items is the restaurant's menu
	items []*Item

	// isConstructed ensures the restaurant was created via a constructor
	isConstructed bool
}

// NewRestaurant creates a new Restaurant with validation.
// New restaurants start unblocked with an empty menu and an active owner.
func NewRestaurant(id, ownerID kernel.UUID, name, address, city, zipCode string) (*Restaurant, error) {
	r := &Restaurant{
		ownerIsActive: true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	r.address = address
	r.city = city
	r.zipCode = zipCode
	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence, including its
// menu and the owner account's activity state. Used only by repositories.
func RestoreRestaurant(
	id, ownerID kernel.UUID,
	name, address, city, zipCode string,
	isBlocked, ownerIsActive bool,
	items []*Item,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, name, address, city, zipCode)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
		if !item.RestaurantID().IsEqual(id) {
			return nil, ErrItemNotFound
		}
	}

	r.isBlocked = isBlocked
	r.ownerIsActive = ownerIsActive
	r.items = items
	return r, nil
}

// Validate ensures the Restaurant was constructed through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the operating account's identifier.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the street address.
func (r *Restaurant) Address() string {
	return r.address
}

// City returns the city.
func (r *Restaurant) City() string {
	return r.city
}

// ZipCode returns the postal code.
func (r *Restaurant) ZipCode() string {
	return r.zipCode
}

// IsBlocked reports whether an admin has blocked the restaurant.
func (r *Restaurant) IsBlocked() bool {
	return r.isBlocked
}

// Items returns the restaurant's menu.
func (r *Restaurant) Items() []*Item {
	return r.items
}

// IsOrderable reports whether the restaurant currently accepts orders:
// not blocked, and operated by an active owner account.
func (r *Restaurant) IsOrderable() bool {
	return !r.isBlocked && r.ownerIsActive
}

// Item looks up a menu item by its identifier.
// Returns ErrItemNotFound if the item does not belong to this restaurant.
func (r *Restaurant) Item(itemID kernel.UUID) (*Item, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	for _, item := range r.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

// AddItem appends a menu item owned by this restaurant.
func (r *Restaurant) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.RestaurantID().IsEqual(r.id) {
		return ErrItemNotFound
	}

	r.items = append(r.items, item)
	return nil
}

// Block marks the restaurant as blocked. Blocking is idempotent.
func (r *Restaurant) Block() {
	r.isBlocked = true
}

// Unblock clears the blocked flag. Unblocking is idempotent.
func (r *Restaurant) Unblock() {
	r.isBlocked = false
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
