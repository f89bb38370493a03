package http

import (
	"net/http"
	"strings"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders - order history, newest first.
// Staff and admins see every order and students their own; ?contact=
// narrows either to the orders placed with that mobile number.
func (s *Server) GetOrders(ctx echo.Context, params GetOrdersParams) error {
	query, err := historyQuery(ctx, params)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	orders, err := s.h.OrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

func historyQuery(ctx echo.Context, params GetOrdersParams) (queries.GetOrderHistoryQuery, error) {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return queries.GetOrderHistoryQuery{}, err
	}

	if params.Contact == nil || strings.TrimSpace(*params.Contact) == "" {
		return queries.NewGetOrderHistoryForPrincipalQuery(principal)
	}
	contact, err := kernel.NewContactNumber(*params.Contact)
	if err != nil {
		return queries.GetOrderHistoryQuery{}, err
	}
	return queries.NewGetOrderHistoryForPrincipalByContactQuery(principal, contact)
}

// GetOrder handles GET /api/v1/orders/{id} - one order with its items.
// Students may only open their own orders.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	query, err := queries.NewGetOrderDetailsQuery(order.ID(id))
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	details, err := s.h.OrderDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve order")
	}

	if !principal.SeesAllOrders() && (details.UserID == nil || *details.UserID != principal.ID) {
		return s.writeError(ctx, errForbidden, "")
	}

	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// GetActiveOrders handles GET /api/v1/orders/active - the kitchen display,
// oldest first. Staff only.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	if _, err := requireStaff(ctx); err != nil {
		return s.writeError(ctx, err, "")
	}

	orders, err := s.h.ActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve active orders")
	}

	out := make([]OrderDetails, len(orders))
	for i, o := range orders {
		out[i] = toOrderDetails(o)
	}
	return ctx.JSON(http.StatusOK, out)
}

// SetOrderStatus handles PATCH /api/v1/orders/{id}/status. Staff only.
func (s *Server) SetOrderStatus(ctx echo.Context, id int64) error {
	if _, err := requireStaff(ctx); err != nil {
		return s.writeError(ctx, err, "")
	}

	var body StatusInput
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	cmd, err := commands.NewSetOrderStatusCommand(order.ID(id), status)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	if err := s.h.SetOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitFeedback handles POST /api/v1/orders/{id}/feedback - rates a
// completed order once.
func (s *Server) SubmitFeedback(ctx echo.Context, id int64) error {
	var body FeedbackInput
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitFeedbackCommand(order.ID(id), userIDOf(ctx), body.Rating, body.Comment)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	if err := s.h.SubmitFeedback.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to submit feedback")
	}

	return ctx.NoContent(http.StatusCreated)
}
