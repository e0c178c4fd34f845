package http

import (
	"time"

	"wroom/internal/core/application/usecases/queries"
	"wroom/internal/core/domain/model/order"
)

// Envelope wraps every successful response body.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse wraps every error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
// Prices are never part of the request; they come from the menu.
type PlaceOrderRequest struct {
	RestaurantID string             `json:"restaurantId"`
	Items        []OrderLineRequest `json:"items"`
}

// OrderLineRequest is one requested menu item.
type OrderLineRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// UpdateOrderStatusRequest is the body of the order PATCH endpoints.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// BlockUserRequest is the body of PATCH /api/v1/admin/users/:id/block.
type BlockUserRequest struct {
	Blocked bool `json:"blocked"`
}

// OrderLineResponse is one line of an order in responses.
// UnitPrice and total are in minor currency units.
type OrderLineResponse struct {
	ItemID    string `json:"itemId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// OrderResponse is the full order representation returned by commands.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customerId"`
	RestaurantID string              `json:"restaurantId"`
	CourierID    *string             `json:"courierId,omitempty"`
	Status       string              `json:"status"`
	TotalPrice   int64               `json:"totalPrice"`
	Items        []OrderLineResponse `json:"items"`
}

// OrderSummaryResponse is the compact representation used by listings.
type OrderSummaryResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	RestaurantID string    `json:"restaurantId"`
	CourierID    *string   `json:"courierId,omitempty"`
	Status       string    `json:"status"`
	TotalPrice   int64     `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	var courierID *string
	if id := aggregate.Courier(); id != nil {
		s := id.String()
		courierID = &s
	}

	lineItems := aggregate.LineItems()
	items := make([]OrderLineResponse, 0, len(lineItems))
	for _, lineItem := range lineItems {
		items = append(items, OrderLineResponse{
			ItemID:    lineItem.ItemID().String(),
			Quantity:  lineItem.Quantity(),
			UnitPrice: lineItem.UnitPrice().MinorUnits(),
		})
	}

	return OrderResponse{
		ID:           aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		CourierID:    courierID,
		Status:       aggregate.Status().String(),
		TotalPrice:   aggregate.TotalPrice().MinorUnits(),
		Items:        items,
	}
}

func viewsToResponse(views []queries.OrderView) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, 0, len(views))
	for _, view := range views {
		var courierID *string
		if view.CourierID != nil {
			s := view.CourierID.String()
			courierID = &s
		}

		response = append(response, OrderSummaryResponse{
			ID:           view.ID.String(),
			CustomerID:   view.CustomerID.String(),
			RestaurantID: view.RestaurantID.String(),
			CourierID:    courierID,
			Status:       view.Status,
			TotalPrice:   view.TotalPrice.MinorUnits(),
			CreatedAt:    view.CreatedAt,
			UpdatedAt:    view.UpdatedAt,
		})
	}

	return response
}
