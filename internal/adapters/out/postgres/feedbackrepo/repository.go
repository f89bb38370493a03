package feedbackrepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/feedback"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFeedbackRepository implements ports.FeedbackRepository using GORM.
type GormFeedbackRepository struct {
	db *gorm.DB
}

func NewGormFeedbackRepository(db *gorm.DB) *GormFeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// Add inserts the feedback row. The unique index on order_id turns a
// second submission, including a racing one, into FeedbackNotAllowedError.
func (r *GormFeedbackRepository) Add(ctx context.Context, fb *feedback.Feedback) error {
	if err := fb.Validate(); err != nil {
		return err
	}

	dto := fromDomain(fb)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewFeedbackNotAllowedError(dto.OrderID, "feedback already submitted")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewFeedbackNotAllowedError(dto.OrderID, "order does not exist")
		}
		return err
	}
	return nil
}

func (r *GormFeedbackRepository) ExistsForOrder(ctx context.Context, orderID order.ID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FeedbackDTO{}).
		Where("order_id = ?", int64(orderID)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByOrder returns the feedback recorded for an order.
func (r *GormFeedbackRepository) GetByOrder(ctx context.Context, orderID order.ID) (*feedback.Feedback, error) {
	var dto FeedbackDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", int64(orderID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("feedback", int64(orderID))
		}
		return nil, err
	}
	return toDomain(dto)
}
