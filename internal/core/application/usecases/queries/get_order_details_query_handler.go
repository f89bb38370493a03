package queries

import (
	"context"
	"database/sql"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle returns the order or ObjectNotFoundError.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	db := h.db.WithContext(ctx)

	var row orderDetailsRow
	err := db.Raw(`
		SELECT `+orderDetailsColumns+`
		FROM orders o
		WHERE o.id = ?
	`, int64(query.OrderID())).Row().Scan(row.targets()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetails{}, errs.NewObjectNotFoundError("order", int64(query.OrderID()))
		}
		return OrderDetails{}, err
	}

	details, err := row.toView()
	if err != nil {
		return OrderDetails{}, err
	}

	items, err := loadItems(ctx, db, []order.ID{details.ID})
	if err != nil {
		return OrderDetails{}, err
	}
	details.Items = items[details.ID]

	return details, nil
}

// orderDetailsRow extends the summary row with the bill breakdown.
type orderDetailsRow struct {
	orderSummaryRow
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Tax       decimal.Decimal
	ParcelFee decimal.Decimal
	Change    decimal.Decimal
}

const orderDetailsColumns = orderSummaryColumns + `,
	o.subtotal,
	o.discount,
	o.tax,
	o.parcel_fee,
	o.change_given`

func (r *orderDetailsRow) targets() []any {
	return append(r.orderSummaryRow.targets(),
		&r.Subtotal,
		&r.Discount,
		&r.Tax,
		&r.ParcelFee,
		&r.Change,
	)
}

func (r orderDetailsRow) toView() (OrderDetails, error) {
	summary, err := r.orderSummaryRow.toView()
	if err != nil {
		return OrderDetails{}, err
	}

	amounts := make([]kernel.Money, 0, 5)
	for _, d := range []decimal.Decimal{r.Subtotal, r.Discount, r.Tax, r.ParcelFee, r.Change} {
		m, err := kernel.NewMoney(d)
		if err != nil {
			return OrderDetails{}, err
		}
		amounts = append(amounts, m)
	}

	return OrderDetails{
		OrderSummary: summary,
		Subtotal:     amounts[0],
		Discount:     amounts[1],
		Tax:          amounts[2],
		ParcelFee:    amounts[3],
		Change:       amounts[4],
		Items:        []OrderItemView{},
	}, nil
}

// loadItems reads the lines of the given orders in insertion order.
func loadItems(ctx context.Context, db *gorm.DB, ids []order.ID) (map[order.ID][]OrderItemView, error) {
	result := make(map[order.ID][]OrderItemView, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, int64(id))
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT order_id, menu_item_id, item_name, unit_price, quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, raw).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, itemID int64
			name            string
			unitPrice       decimal.Decimal
			quantity        int
		)
		if err = rows.Scan(&orderID, &itemID, &name, &unitPrice, &quantity); err != nil {
			return nil, err
		}

		price, err := kernel.NewMoney(unitPrice)
		if err != nil {
			return nil, err
		}

		key := order.ID(orderID)
		result[key] = append(result[key], OrderItemView{
			MenuItemID: menu.ItemID(itemID),
			Name:       name,
			UnitPrice:  price,
			Quantity:   quantity,
			Total:      price.Times(quantity),
		})
	}

	return result, rows.Err()
}
