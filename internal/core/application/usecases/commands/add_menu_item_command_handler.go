package commands

import (
	"context"

	"canteen/internal/core/domain/model/menu"
)

// AddMenuItemCommandHandler inserts a new catalog entry.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the item and returns the id allocated for it.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (menu.ItemID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	id, err := menuRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	item, err := menu.NewMenuItem(id, cmd.Name(), cmd.Price(), cmd.Stock(), cmd.Category(), cmd.Description())
	if err != nil {
		return 0, err
	}

	if err = menuRepo.Add(ctx, item); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
