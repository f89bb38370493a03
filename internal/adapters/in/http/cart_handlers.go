package http

import (
	"errors"
	"math"
	"net/http"

	"canteen/internal/core/application/checkout"
	"canteen/internal/core/application/payment"
	"canteen/internal/core/domain/model/menu"

	"github.com/labstack/echo/v4"
)

// StartSession handles POST /api/v1/sessions - opens a session with an empty cart.
func (s *Server) StartSession(ctx echo.Context) error {
	id, err := s.h.Carts.StartSession()
	if err != nil {
		return s.writeError(ctx, err, "Failed to start session")
	}
	return ctx.JSON(http.StatusCreated, Session{ID: id.String()})
}

// EndSession handles DELETE /api/v1/sessions/{session} - discards the cart.
func (s *Server) EndSession(ctx echo.Context, session string) error {
	id, err := sessionID(session)
	if err != nil {
		return s.writeError(ctx, err, "")
	}
	s.h.Carts.EndSession(id)
	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/sessions/{session}/cart - shows the cart and,
// when it has lines, the priced bill. ?parcel=true adds the parcel fee.
func (s *Server) GetCart(ctx echo.Context, session string, params GetCartParams) error {
	id, err := sessionID(session)
	if err != nil {
		return s.writeError(ctx, err, "")
	}
	parcel := params.Parcel != nil && *params.Parcel

	view, err := s.h.Carts.View(id)
	if err != nil {
		return s.writeError(ctx, err, "Failed to load cart")
	}
	if len(view.Lines) == 0 {
		return ctx.JSON(http.StatusOK, toCart(view, nil))
	}

	quote, err := s.h.Checkout.Preview(ctx.Request().Context(), id, parcel)
	if err != nil {
		return s.writeError(ctx, err, "Failed to price cart")
	}
	return ctx.JSON(http.StatusOK, toCart(view, &quote))
}

// AddCartItem handles POST /api/v1/sessions/{session}/cart/items.
func (s *Server) AddCartItem(ctx echo.Context, session string) error {
	id, err := sessionID(session)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	var body CartItemInput
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	view, err := s.h.Carts.Add(ctx.Request().Context(), id, menu.ItemID(body.MenuItemID), body.Quantity)
	if err != nil {
		return s.writeError(ctx, err, "Failed to update cart")
	}
	return ctx.JSON(http.StatusOK, toCart(view, nil))
}

// SetCartItem handles PUT /api/v1/sessions/{session}/cart/items/{id} - a
// quantity of zero removes the line.
func (s *Server) SetCartItem(ctx echo.Context, session string, itemID int64) error {
	id, err := sessionID(session)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	var body QuantityInput
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	view, err := s.h.Carts.SetQuantity(ctx.Request().Context(), id, menu.ItemID(itemID), body.Quantity)
	if err != nil {
		return s.writeError(ctx, err, "Failed to update cart")
	}
	return ctx.JSON(http.StatusOK, toCart(view, nil))
}

// RemoveCartItem handles DELETE /api/v1/sessions/{session}/cart/items/{id} -
// removes ?quantity= portions, or the whole line when quantity is absent.
func (s *Server) RemoveCartItem(ctx echo.Context, session string, itemID int64, params RemoveCartItemParams) error {
	id, err := sessionID(session)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	view, err := s.h.Carts.Remove(id, menu.ItemID(itemID), intOr(params.Quantity, math.MaxInt))
	if err != nil {
		return s.writeError(ctx, err, "Failed to update cart")
	}
	return ctx.JSON(http.StatusOK, toCart(view, nil))
}

// Checkout handles POST /api/v1/sessions/{session}/checkout - prices the
// cart, takes payment from the request's payment answers and commits the
// order. An unfinished payment answers 402 with the processor's message and,
// for online payments, the UPI link and QR code to pay with.
func (s *Server) Checkout(ctx echo.Context, session string) error {
	id, err := sessionID(session)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	var body CheckoutInput
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	terminal := newRequestTerminal(body.Payment)
	receipt, err := s.h.Checkout.PlaceOrder(ctx.Request().Context(), checkout.Request{
		SessionID:    id,
		CustomerName: body.CustomerName,
		Contact:      body.Contact,
		UserID:       userIDOf(ctx),
		Parcel:       body.Parcel,
	}, terminal)

	if errors.Is(err, payment.ErrAborted) {
		pending, renderErr := terminal.pending(http.StatusPaymentRequired, "Payment awaits confirmation")
		if renderErr != nil {
			return s.writeError(ctx, renderErr, "Failed to render payment instructions")
		}
		return ctx.JSON(http.StatusPaymentRequired, pending)
	}
	if err != nil {
		return s.writeError(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, toReceipt(receipt))
}
