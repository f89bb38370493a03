package pgtest

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"
)

// Seeded menu ids after Reset.
const (
	VegBurger       menu.ItemID = 1
	MargheritaPizza menu.ItemID = 2
	ColdCoffee      menu.ItemID = 3
	FrenchFries     menu.ItemID = 4
)

// Line is an order line for fixtures. Price is in whole rupees.
type Line struct {
	ItemID   menu.ItemID
	Name     string
	Price    int64
	Quantity int
}

// NewOrder builds a Received, online-paid order without discount, tax or
// parcel fee.
func NewOrder(
	id order.ID,
	name, contact string,
	userID *user.ID,
	createdAt time.Time,
	lines ...Line,
) (*order.Order, error) {
	customer, err := order.NewCustomer(name, userID)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewContactNumber(contact)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(lines))
	subtotal := kernel.Zero
	for _, l := range lines {
		item, err := order.NewItem(l.ItemID, l.Name, kernel.MoneyFromUnits(l.Price), l.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.Total())
	}

	bill, err := order.NewBill(subtotal, kernel.Zero, kernel.Zero, kernel.Zero)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(id, customer, phone, items, bill, order.NewOnlineSettlement(), createdAt)
}

// Advance walks an order forward through the given statuses.
func Advance(o *order.Order, at time.Time, statuses ...order.Status) error {
	for _, s := range statuses {
		if err := o.ChangeStatus(s, at); err != nil {
			return err
		}
	}
	return nil
}
