package http

import (
	"net/http"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"

	"github.com/labstack/echo/v4"
)

// GetMenu handles GET /api/v1/menu - lists the catalog, optionally by ?category=.
func (s *Server) GetMenu(ctx echo.Context, params GetMenuParams) error {
	var category string
	if params.Category != nil {
		category = *params.Category
	}
	query := queries.NewGetMenuQuery(category)

	items, err := s.h.Menu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve menu")
	}

	return ctx.JSON(http.StatusOK, toMenuItems(items))
}

// AddMenuItem handles POST /api/v1/menu - adds a catalog entry. Staff only.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	if _, err := requireStaff(ctx); err != nil {
		return s.writeError(ctx, err, "")
	}

	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.ParseMoney(body.Price)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	cmd, err := commands.NewAddMenuItemCommand(body.Name, price, body.Stock, body.Category, body.Description)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	id, err := s.h.AddMenuItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, "Failed to add menu item")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: int64(id)})
}

// SetStock handles PUT /api/v1/menu/{id}/stock - sets an item's stock. Staff only.
func (s *Server) SetStock(ctx echo.Context, id int64) error {
	if _, err := requireStaff(ctx); err != nil {
		return s.writeError(ctx, err, "")
	}

	var body StockLevel
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRestockMenuItemCommand(menu.ItemID(id), body.Stock)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	if err := s.h.Restock.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err, "Failed to update stock")
	}

	return ctx.NoContent(http.StatusNoContent)
}
