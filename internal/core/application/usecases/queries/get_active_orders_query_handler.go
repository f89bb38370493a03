package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(`
		SELECT `+orderDetailsColumns+`
		FROM orders o
		WHERE o.status IN ?
		ORDER BY o.created_at, o.id
	`, []string{order.Received.String(), order.Preparing.String(), order.Ready.String()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderDetails, 0)
	ids := make([]order.ID, 0)
	for rows.Next() {
		var r orderDetailsRow
		if err = rows.Scan(r.targets()...); err != nil {
			return nil, err
		}
		view, err := r.toView()
		if err != nil {
			return nil, err
		}
		orders = append(orders, view)
		ids = append(ids, view.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	items, err := loadItems(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if lines, ok := items[orders[i].ID]; ok {
			orders[i].Items = lines
		}
	}

	return orders, nil
}
