package cart

import (
	"errors"
	"fmt"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("cart Line must be created via NewLine")

// Line is one entry of a cart: a menu item, the unit price captured when it
// was added, and a positive quantity.
type Line struct {
	itemID    menu.ItemID
	name      string
	unitPrice kernel.Money
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLine validates and builds a cart line.
//
// Example:
//
//	line, err := cart.NewLine(1, "Veg Burger", kernel.MoneyFromUnits(50), 2)
//	line.Total() // 100.00
func NewLine(itemID menu.ItemID, name string, unitPrice kernel.Money, quantity int) (Line, error) {
	line := Line{
		itemID:    itemID,
		name:      strings.TrimSpace(name),
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}

	var nameErr, qtyErr error
	if line.name == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(itemID.Validate(), nameErr, qtyErr); err != nil {
		return Line{}, err
	}

	return line, nil
}

func (l Line) ItemID() menu.ItemID {
	return l.itemID
}

func (l Line) Name() string {
	return l.name
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Quantity() int {
	return l.quantity
}

// Total is unit price × quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}
