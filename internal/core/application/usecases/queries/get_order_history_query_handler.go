package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads order summaries for a history screen.
//
// Example:
//
//	contact, _ := kernel.NewContactNumber("9876543210")
//	query, _ := NewGetOrderHistoryByContactQuery(contact)
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("#%d %s %s %s\n", o.ID, o.CreatedAt.Format(time.DateTime), o.GrandTotal, o.Status)
//	}
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns matching orders, newest first. An empty history is an
// empty slice, not an error.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := query.filter()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders o
		`+where+`
		ORDER BY o.created_at DESC, o.id DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []orderSummaryRow
	for rows.Next() {
		var r orderSummaryRow
		if err = rows.Scan(r.targets()...); err != nil {
			return nil, err
		}
		found = append(found, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return toViews(found)
}
