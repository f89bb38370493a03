// Package queries contains read-only operations of the canteen.
// Query handlers read straight from the relational store with raw SQL and
// return flat views; they never load aggregates and never write.
package queries

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// OrderSummary is one row of an order list.
type OrderSummary struct {
	ID            order.ID
	UserID        *user.ID
	CustomerName  string
	Contact       string
	CreatedAt     time.Time
	GrandTotal    kernel.Money
	PaymentMethod order.PaymentMethod
	Status        order.Status
}

// OrderItemView is one line of an order.
type OrderItemView struct {
	MenuItemID menu.ItemID
	Name       string
	UnitPrice  kernel.Money
	Quantity   int
	Total      kernel.Money
}

// OrderDetails is an order with its bill breakdown and lines.
type OrderDetails struct {
	OrderSummary
	Subtotal  kernel.Money
	Discount  kernel.Money
	Tax       kernel.Money
	ParcelFee kernel.Money
	Change    kernel.Money
	Items     []OrderItemView
}

// orderSummaryRow is the scan target shared by the order list queries.
type orderSummaryRow struct {
	ID            int64
	UserID        *string
	CustomerName  string
	ContactNumber string
	CreatedAt     time.Time
	GrandTotal    decimal.Decimal
	PaymentMethod string
	Status        string
}

const orderSummaryColumns = `
	o.id,
	o.user_id,
	o.customer_name,
	o.contact_number,
	o.created_at,
	o.grand_total,
	o.payment_method,
	o.status`

func (r *orderSummaryRow) targets() []any {
	return []any{
		&r.ID,
		&r.UserID,
		&r.CustomerName,
		&r.ContactNumber,
		&r.CreatedAt,
		&r.GrandTotal,
		&r.PaymentMethod,
		&r.Status,
	}
}

func (r orderSummaryRow) toView() (OrderSummary, error) {
	total, err := kernel.NewMoney(r.GrandTotal)
	if err != nil {
		return OrderSummary{}, err
	}
	method, err := order.ParsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return OrderSummary{}, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderSummary{}, err
	}

	view := OrderSummary{
		ID:            order.ID(r.ID),
		CustomerName:  r.CustomerName,
		Contact:       r.ContactNumber,
		CreatedAt:     r.CreatedAt,
		GrandTotal:    total,
		PaymentMethod: method,
		Status:        status,
	}
	if r.UserID != nil {
		id := user.ID(*r.UserID)
		view.UserID = &id
	}
	return view, nil
}

func toViews(rows []orderSummaryRow) ([]OrderSummary, error) {
	views := make([]OrderSummary, 0, len(rows))
	for _, r := range rows {
		v, err := r.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
