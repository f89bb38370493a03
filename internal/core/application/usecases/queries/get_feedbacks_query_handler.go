package queries

import (
	"context"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"

	"gorm.io/gorm"
)

type GetFeedbacksQueryHandler struct {
	db *gorm.DB
}

func NewGetFeedbacksQueryHandler(db *gorm.DB) GetFeedbacksQueryHandler {
	return GetFeedbacksQueryHandler{db: db}
}

func (h GetFeedbacksQueryHandler) Handle(ctx context.Context, query GetFeedbacksQuery) ([]FeedbackView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT f.order_id, f.user_id, o.customer_name, f.rating, f.comment, f.submitted_at
		FROM feedback f
		JOIN orders o ON o.id = f.order_id
		ORDER BY f.submitted_at DESC, f.order_id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedbacks := make([]FeedbackView, 0)
	for rows.Next() {
		var (
			view    FeedbackView
			orderID int64
			userID  *string
		)
		err = rows.Scan(&orderID, &userID, &view.CustomerName, &view.Rating, &view.Comment, &view.SubmittedAt)
		if err != nil {
			return nil, err
		}
		view.OrderID = order.ID(orderID)
		if userID != nil {
			id := user.ID(*userID)
			view.UserID = &id
		}
		feedbacks = append(feedbacks, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feedbacks, nil
}
