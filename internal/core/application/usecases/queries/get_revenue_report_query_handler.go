package queries

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetRevenueReportQueryHandler struct {
	db *gorm.DB
}

func NewGetRevenueReportQueryHandler(db *gorm.DB) GetRevenueReportQueryHandler {
	return GetRevenueReportQueryHandler{db: db}
}

// Handle sums grand totals and ranks items by quantity sold.
func (h GetRevenueReportQueryHandler) Handle(ctx context.Context, query GetRevenueReportQuery) (RevenueReport, error) {
	if err := query.Validate(); err != nil {
		return RevenueReport{}, err
	}

	db := h.db.WithContext(ctx)
	cancelled := order.Cancelled.String()
	since := query.Since()

	var totals struct {
		Revenue decimal.Decimal
		Orders  int
	}
	err := db.Raw(`
		SELECT COALESCE(SUM(grand_total), 0) AS revenue, COUNT(*) AS orders
		FROM orders
		WHERE status <> ? AND created_at >= ?
	`, cancelled, since).Scan(&totals).Error
	if err != nil {
		return RevenueReport{}, err
	}

	revenue, err := kernel.NewMoney(totals.Revenue)
	if err != nil {
		return RevenueReport{}, err
	}

	report := RevenueReport{
		TotalRevenue:  revenue,
		OrderCount:    totals.Orders,
		AverageTicket: kernel.Zero,
		TopSellers:    []TopSeller{},
	}
	if totals.Orders > 0 {
		avg, err := kernel.NewMoney(totals.Revenue.Div(decimal.NewFromInt(int64(totals.Orders))).Round(kernel.MoneyScale))
		if err != nil {
			return RevenueReport{}, err
		}
		report.AverageTicket = avg
	}

	rows, err := db.Raw(`
		SELECT oi.menu_item_id, MIN(oi.item_name), SUM(oi.quantity), SUM(oi.unit_price * oi.quantity)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status <> ? AND o.created_at >= ?
		GROUP BY oi.menu_item_id
		ORDER BY SUM(oi.quantity) DESC, oi.menu_item_id
		LIMIT ?
	`, cancelled, since, query.TopSellers()).Rows()
	if err != nil {
		return RevenueReport{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id       int64
			name     string
			quantity int
			amount   decimal.Decimal
		)
		if err = rows.Scan(&id, &name, &quantity, &amount); err != nil {
			return RevenueReport{}, err
		}
		money, err := kernel.NewMoney(amount)
		if err != nil {
			return RevenueReport{}, err
		}
		report.TopSellers = append(report.TopSellers, TopSeller{
			MenuItemID: menu.ItemID(id),
			Name:       name,
			Quantity:   quantity,
			Revenue:    money,
		})
	}

	return report, rows.Err()
}
