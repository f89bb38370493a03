package ports

import (
	"context"

	"canteen/internal/core/domain/model/feedback"
	"canteen/internal/core/domain/model/order"
)

// FeedbackRepository defines the persistence contract for feedback.
type FeedbackRepository interface {
	// Add persists feedback. The storage holds at most one row per order;
	// a second insert for the same order fails with
	// *errs.FeedbackNotAllowedError, even when two inserts race.
	Add(ctx context.Context, fb *feedback.Feedback) error

	// ExistsForOrder reports whether feedback was already recorded for the order.
	ExistsForOrder(ctx context.Context, orderID order.ID) (bool, error)
}
