package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetPendingFeedbackQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingFeedbackQueryHandler(db *gorm.DB) GetPendingFeedbackQueryHandler {
	return GetPendingFeedbackQueryHandler{db: db}
}

func (h GetPendingFeedbackQueryHandler) Handle(
	ctx context.Context,
	query GetPendingFeedbackQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var found []orderSummaryRow
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders o
		LEFT JOIN feedback f ON f.order_id = o.id
		WHERE o.user_id = ? AND o.status = ? AND f.order_id IS NULL
		ORDER BY o.created_at DESC, o.id DESC
	`, string(query.UserID()), order.Completed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
