// Package orderrepo persists the order ledger: orders with their items.
package orderrepo

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Money columns are numeric(12,2).
type OrderDTO struct {
	ID            int64           `gorm:"primaryKey"`
	UserID        *string         `gorm:"index"`
	CustomerName  string          `gorm:"not null"`
	ContactNumber string          `gorm:"type:char(10);not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ParcelFee     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	GrandTotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string          `gorm:"not null"`
	ChangeGiven   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status        string          `gorm:"not null;index"`
	Items         []OrderItemDTO  `gorm:"foreignKey:OrderID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order_items row. Name and price are snapshots taken
// at checkout and never follow later catalog edits.
type OrderItemDTO struct {
	ID         int64           `gorm:"primaryKey"`
	OrderID    int64           `gorm:"not null;index"`
	MenuItemID int64           `gorm:"not null"`
	ItemName   string          `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity   int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var userID *string
	if id := o.Customer().UserID(); id != nil {
		raw := string(*id)
		userID = &raw
	}

	bill := o.Bill()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    int64(o.ID()),
			MenuItemID: int64(it.MenuItemID()),
			ItemName:   it.Name(),
			UnitPrice:  it.UnitPrice().Decimal(),
			Quantity:   it.Quantity(),
		})
	}

	return OrderDTO{
		ID:            int64(o.ID()),
		UserID:        userID,
		CustomerName:  o.Customer().Name(),
		ContactNumber: o.Contact().String(),
		CreatedAt:     o.CreatedAt(),
		Subtotal:      bill.Subtotal().Decimal(),
		Discount:      bill.Discount().Decimal(),
		Tax:           bill.Tax().Decimal(),
		ParcelFee:     bill.ParcelFee().Decimal(),
		GrandTotal:    bill.GrandTotal().Decimal(),
		PaymentMethod: o.Settlement().Method().String(),
		ChangeGiven:   o.Settlement().Change().Decimal(),
		Status:        o.Status().String(),
		Items:         items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	var userID *user.ID
	if dto.UserID != nil {
		id := user.ID(*dto.UserID)
		userID = &id
	}

	customer, err := order.NewCustomer(dto.CustomerName, userID)
	if err != nil {
		return nil, err
	}

	contact, err := kernel.NewContactNumber(dto.ContactNumber)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		price, err := kernel.NewMoney(it.UnitPrice)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(menu.ItemID(it.MenuItemID), it.ItemName, price, it.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	amounts, err := moneys(dto.Subtotal, dto.Discount, dto.Tax, dto.ParcelFee, dto.GrandTotal, dto.ChangeGiven)
	if err != nil {
		return nil, err
	}

	bill, err := order.RestoreBill(amounts[0], amounts[1], amounts[2], amounts[3], amounts[4])
	if err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	settlement, err := order.RestoreSettlement(method, amounts[5])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		order.ID(dto.ID),
		customer,
		contact,
		items,
		bill,
		settlement,
		status,
		dto.CreatedAt,
	)
}

func moneys(values ...decimal.Decimal) ([]kernel.Money, error) {
	result := make([]kernel.Money, 0, len(values))
	for _, v := range values {
		m, err := kernel.NewMoney(v)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, nil
}
