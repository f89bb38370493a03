package commands

import (
	"context"
)

// RestockMenuItemCommandHandler overwrites an item's stock. It locks the row
// like the ledger does, so a restock never interleaves with a checkout
// withdrawing from the same item.
type RestockMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewRestockMenuItemCommandHandler(uowFactory MenuUoWFactory) RestockMenuItemCommandHandler {
	return RestockMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RestockMenuItemCommandHandler) Handle(ctx context.Context, cmd RestockMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.SetStock(cmd.Stock()); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
