// Package http exposes the application's use cases over a REST API.
// Handlers translate between transport concerns (JSON, status codes,
// bearer tokens) and application commands and queries.
package http

import (
	"errors"
	"net/http"

	"wroom/internal/core/application/usecases/commands"
	"wroom/internal/core/application/usecases/queries"
	"wroom/internal/core/domain/model/kernel"
	"wroom/internal/core/domain/model/order"
	"wroom/internal/core/domain/model/user"
	"wroom/internal/core/domain/services"
	"wroom/internal/core/ports"
	"wroom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	blockUserHandler         commands.BlockUserCommandHandler

	// Query handlers
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	getPartnerOrdersHandler    queries.GetPartnerOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	blockUserHandler commands.BlockUserCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	getPartnerOrdersHandler queries.GetPartnerOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:          placeOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		blockUserHandler:           blockUserHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
		getPartnerOrdersHandler:    getPartnerOrdersHandler,
		getOrderHandler:            getOrderHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
// Role gates reject wrong-role principals with 403 before any handler runs;
// per-order ownership checks live in the application layer.
func (s *Server) RegisterRoutes(e *echo.Echo, codec *TokenCodec) {
	api := e.Group("/api/v1", Authenticate(codec))

	customer := api.Group("", RequireRole(user.Customer))
	customer.POST("/orders", s.PlaceOrder)
	customer.GET("/orders", s.GetCustomerOrders)
	customer.GET("/orders/:id", s.GetCustomerOrder)

	restaurant := api.Group("/restaurant", RequireRole(user.Restaurant))
	restaurant.GET("/orders", s.GetRestaurantOrders)
	restaurant.GET("/orders/:id", s.GetRestaurantOrder)
	restaurant.PATCH("/orders/:id", s.UpdateRestaurantOrder)

	partner := api.Group("/partner", RequireRole(user.Partner))
	partner.GET("/orders", s.GetPartnerOrders)
	partner.GET("/orders/:id", s.GetPartnerOrder)
	partner.PATCH("/orders/:id", s.UpdatePartnerOrder)

	admin := api.Group("/admin", RequireRole(user.Admin))
	admin.PATCH("/users/:id/block", s.BlockUser)
}

// PlaceOrder handles POST /api/v1/orders.
//
//	@Summary	Place a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		request	body	PlaceOrderRequest	true	"order to place"
//	@Success	201	{object}	Envelope{data=OrderResponse}
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) PlaceOrder(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid restaurant id"})
	}

	lines := make([]commands.OrderLine, 0, len(request.Items))
	for _, item := range request.Items {
		itemID, itemErr := kernel.UUIDFromString(item.ItemID)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
		}
		lines = append(lines, commands.OrderLine{ItemID: itemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), principal.ID(), restaurantID, lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{
		Message: "Order placed",
		Data:    orderToResponse(placed),
	})
}

// GetCustomerOrders handles GET /api/v1/orders.
//
//	@Summary	List the caller's orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	Envelope{data=[]OrderSummaryResponse}
//	@Router		/orders [get]
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}

	query, err := queries.NewGetCustomerOrdersQuery(principal.ID())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	views, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Orders retrieved",
		Data:    viewsToResponse(views),
	})
}

// GetRestaurantOrders handles GET /api/v1/restaurant/orders.
//
//	@Summary	List the caller's restaurant's orders
//	@Tags		restaurant
//	@Produce	json
//	@Success	200	{object}	Envelope{data=[]OrderSummaryResponse}
//	@Router		/restaurant/orders [get]
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}

	restaurantID := principal.RestaurantID()
	if restaurantID == nil {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{Error: "no restaurant bound to this account"})
	}

	query, err := queries.NewGetRestaurantOrdersQuery(*restaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	views, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Orders retrieved",
		Data:    viewsToResponse(views),
	})
}

// GetCustomerOrder handles GET /api/v1/orders/:id.
//
//	@Summary	Get one of the caller's orders
//	@Tags		orders
//	@Produce	json
//	@Param		id	path	string	true	"order id"
//	@Success	200	{object}	Envelope{data=OrderResponse}
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetCustomerOrder(ctx echo.Context) error {
	return s.getOrder(ctx)
}

// UpdateRestaurantOrder handles PATCH /api/v1/restaurant/orders/:id.
//
//	@Summary	Progress or cancel an order as restaurant staff
//	@Tags		restaurant
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string						true	"order id"
//	@Param		request	body	UpdateOrderStatusRequest	true	"target status"
//	@Success	200	{object}	Envelope{data=OrderResponse}
//	@Failure	400	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/restaurant/orders/{id} [patch]
func (s *Server) UpdateRestaurantOrder(ctx echo.Context) error {
	return s.updateOrder(ctx)
}

// GetPartnerOrders handles GET /api/v1/partner/orders.
//
//	@Summary	List claimable and claimed orders for a delivery partner
//	@Tags		partner
//	@Produce	json
//	@Success	200	{object}	Envelope{data=[]OrderSummaryResponse}
//	@Router		/partner/orders [get]
func (s *Server) GetPartnerOrders(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}

	query, err := queries.NewGetPartnerOrdersQuery(principal.ID())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	views, err := s.getPartnerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Orders retrieved",
		Data:    viewsToResponse(views),
	})
}

// GetRestaurantOrder handles GET /api/v1/restaurant/orders/:id.
//
//	@Summary	Get one of the caller's restaurant's orders
//	@Tags		restaurant
//	@Produce	json
//	@Param		id	path	string	true	"order id"
//	@Success	200	{object}	Envelope{data=OrderResponse}
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/restaurant/orders/{id} [get]
func (s *Server) GetRestaurantOrder(ctx echo.Context) error {
	return s.getOrder(ctx)
}

// GetPartnerOrder handles GET /api/v1/partner/orders/:id.
// Partners see unclaimed handoff-ready orders and their own claims.
//
//	@Summary	Get a claimable or claimed order
//	@Tags		partner
//	@Produce	json
//	@Param		id	path	string	true	"order id"
//	@Success	200	{object}	Envelope{data=OrderResponse}
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/partner/orders/{id} [get]
func (s *Server) GetPartnerOrder(ctx echo.Context) error {
	return s.getOrder(ctx)
}

// UpdatePartnerOrder handles PATCH /api/v1/partner/orders/:id.
// A partner PATCHing an unclaimed order to WAITING_FOR_PICKUP claims it;
// losing a concurrent claim returns 409.
//
//	@Summary	Claim an order or progress a claimed delivery
//	@Tags		partner
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string						true	"order id"
//	@Param		request	body	UpdateOrderStatusRequest	true	"target status"
//	@Success	200	{object}	Envelope{data=OrderResponse}
//	@Failure	400	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/partner/orders/{id} [patch]
func (s *Server) UpdatePartnerOrder(ctx echo.Context) error {
	return s.updateOrder(ctx)
}

// BlockUser handles PATCH /api/v1/admin/users/:id/block.
//
//	@Summary	Block or unblock a user account
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string				true	"user id"
//	@Param		request	body	BlockUserRequest	true	"desired blocked state"
//	@Success	200	{object}	Envelope
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/users/{id}/block [patch]
func (s *Server) BlockUser(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}

	var request BlockUserRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewBlockUserCommand(principal.ID(), userID, request.Blocked)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if err = s.blockUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Message: "User block updated"})
}

// getOrder is the shared body of the per-role GET /orders/:id endpoints.
// Role separation happens in the route groups; per-order visibility is the
// query handler's access policy check.
func (s *Server) getOrder(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	query, err := queries.NewGetOrderQuery(orderID, principal)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Order retrieved",
		Data:    orderToResponse(aggregate),
	})
}

// updateOrder is the shared body of both PATCH endpoints. Role separation
// happens in the route groups; the command handler enforces everything else.
func (s *Server) updateOrder(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	nextStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status"})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, principal, nextStatus)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Order updated",
		Data:    orderToResponse(updated),
	})
}

// mapError translates domain and application errors to HTTP status codes.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, ports.ErrOrderClaimConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrNotClaimed),
		errors.Is(err, order.ErrAlreadyClaimed),
		errors.Is(err, commands.ErrCannotBlockSelf):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
