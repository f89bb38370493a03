// Package feedbackrepo persists customer feedback, at most one row per order.
package feedbackrepo

import (
	"time"

	"canteen/internal/core/domain/model/feedback"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"
)

type FeedbackDTO struct {
	ID          int64     `gorm:"primaryKey"`
	OrderID     int64     `gorm:"not null;uniqueIndex:feedback_order_id_key"`
	UserID      *string   `gorm:"index"`
	Rating      int       `gorm:"type:smallint;not null"`
	Comment     string    `gorm:"not null"`
	SubmittedAt time.Time `gorm:"not null"`
}

func (FeedbackDTO) TableName() string {
	return "feedback"
}

func fromDomain(fb *feedback.Feedback) FeedbackDTO {
	var userID *string
	if id := fb.UserID(); id != nil {
		raw := string(*id)
		userID = &raw
	}

	return FeedbackDTO{
		OrderID:     int64(fb.OrderID()),
		UserID:      userID,
		Rating:      fb.Rating(),
		Comment:     fb.Comment(),
		SubmittedAt: fb.SubmittedAt(),
	}
}

func toDomain(dto FeedbackDTO) (*feedback.Feedback, error) {
	var userID *user.ID
	if dto.UserID != nil {
		id := user.ID(*dto.UserID)
		userID = &id
	}
	return feedback.RestoreFeedback(order.ID(dto.OrderID), userID, dto.Rating, dto.Comment, dto.SubmittedAt)
}
