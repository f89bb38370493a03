package order

import (
	"errors"
	"fmt"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"
)

// Item is an immutable order line. The name and unit price are snapshots
// taken at checkout and do not follow later catalog changes.
type Item struct {
	menuItemID menu.ItemID
	name       string
	unitPrice  kernel.Money
	quantity   int
}

func NewItem(menuItemID menu.ItemID, name string, unitPrice kernel.Money, quantity int) (Item, error) {
	var nameErr, qtyErr error
	name = strings.TrimSpace(name)
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(menuItemID.Validate(), nameErr, qtyErr); err != nil {
		return Item{}, err
	}

	return Item{menuItemID: menuItemID, name: name, unitPrice: unitPrice, quantity: quantity}, nil
}

func (i Item) MenuItemID() menu.ItemID {
	return i.menuItemID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

// Total is unit price × quantity.
func (i Item) Total() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}
