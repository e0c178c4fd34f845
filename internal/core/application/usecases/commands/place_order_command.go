package commands

import (
	"errors"

	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderLine is a single requested item within a placement command.
// Quantities are validated here; prices are resolved from the restaurant
// catalog by the handler, never accepted from the caller.
type OrderLine struct {
	ItemID   kernel.UUID
	Quantity int
}

// PlaceOrderCommand represents a customer's request to place a new order
// at a restaurant.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, restaurantID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates all identifiers and requires at least one line with a
// positive quantity. Returns an error if any validation fails.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	lines []OrderLine,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setCustomerID(customerID),
		placeCommand.setRestaurantID(restaurantID),
		placeCommand.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the identifier of the target restaurant.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the requested items and quantities.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}
