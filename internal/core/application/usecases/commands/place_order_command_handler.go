package commands

import (
	"context"

	"wroom/internal/core/domain/model/order"
	"wroom/internal/core/domain/model/restaurant"
	"wroom/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Loads the restaurant catalog, snapshots item prices into order lines and
// creates the order in PENDING status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(orderID, customerID, restaurantID, lines)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %s", placed.ID(), placed.TotalPrice())
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a PlaceOrderUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// A restaurant that is blocked, whose owner is inactive, or that lacks a
// requested item is reported as not found rather than forbidden: customers
// learn nothing about why a restaurant is unavailable.
// Unit prices are read from the catalog at placement time, so later menu
// edits never change an already placed order.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	aggregate, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsOrderable() {
		return nil, errs.NewObjectNotFoundError("restaurantID", cmd.RestaurantID())
	}

	lineItems, err := buildLineItems(aggregate, cmd.Lines())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.RestaurantID(), lineItems)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

func buildLineItems(aggregate *restaurant.Restaurant, lines []OrderLine) ([]order.LineItem, error) {
	lineItems := make([]order.LineItem, 0, len(lines))

	for _, line := range lines {
		item, err := aggregate.Item(line.ItemID)
		if err != nil {
			return nil, errs.NewObjectNotFoundError("itemID", line.ItemID)
		}

		if item.IsBlocked() {
			return nil, errs.NewObjectNotFoundError("itemID", line.ItemID)
		}

		lineItem, err := order.NewLineItem(item.ID(), line.Quantity, item.Price())
		if err != nil {
			return nil, err
		}

		lineItems = append(lineItems, lineItem)
	}

	return lineItems, nil
}
