package order

import (
	"errors"
	"fmt"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/errs"
	"wroom/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through the NewLineItem constructor.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is a value object recording one menu item on an order: which item,
// how many, and the unit price at the moment the order was placed. The price
// is a snapshot; later catalog changes never affect it.
type LineItem struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	quantity int

	// unitPrice is the catalog price captured at placement
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item.
// Quantity must be at least 1 and the unit price must not be negative.
func NewLineItem(itemID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	li := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		li.setItemID(itemID),
		li.setQuantity(quantity),
		li.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return li, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ItemID returns the referenced menu item's identifier.
func (li LineItem) ItemID() kernel.UUID {
	return li.itemID
}

// Quantity returns how many units of the item were ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the snapshotted per-unit price.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Total returns quantity times the snapshotted unit price.
func (li LineItem) Total() kernel.Money {
	return li.unitPrice.Mul(li.quantity)
}

func (li *LineItem) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	li.itemID = itemID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	li.unitPrice = unitPrice
	return nil
}
