package commands

import (
	"errors"

	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/guard"
)

var ErrRestockMenuItemCommandIsNotConstructed = errors.New(
	"RestockMenuItemCommand must be created via NewRestockMenuItemCommand constructor",
)

// RestockMenuItemCommand sets an item's stock to an absolute count,
// e.g. after the morning delivery is counted.
type RestockMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID menu.ItemID
	stock  int

	guard guard.ConstructorGuard
}

func NewRestockMenuItemCommand(itemID menu.ItemID, stock int) (RestockMenuItemCommand, error) {
	if err := errors.Join(itemID.Validate(), menu.ValidateStock(stock)); err != nil {
		return RestockMenuItemCommand{}, err
	}

	return RestockMenuItemCommand{
		itemID: itemID,
		stock:  stock,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RestockMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRestockMenuItemCommandIsNotConstructed)
}

func (c RestockMenuItemCommand) ItemID() menu.ItemID {
	return c.itemID
}

func (c RestockMenuItemCommand) Stock() int {
	return c.stock
}
