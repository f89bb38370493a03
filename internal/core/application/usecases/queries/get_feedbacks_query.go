package queries

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

const (
	DefaultFeedbackLimit = 50
	MaxFeedbackLimit     = 500
)

var ErrGetFeedbacksQueryIsNotConstructed = errors.New(
	"GetFeedbacksQuery must be created via NewGetFeedbacksQuery constructor",
)

// GetFeedbacksQuery lists submitted feedback, newest first.
type GetFeedbacksQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewGetFeedbacksQuery builds the query. A limit of zero picks
// DefaultFeedbackLimit.
func NewGetFeedbacksQuery(limit int) (GetFeedbacksQuery, error) {
	if limit == 0 {
		limit = DefaultFeedbackLimit
	}
	if limit < 1 || limit > MaxFeedbackLimit {
		return GetFeedbacksQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxFeedbackLimit)
	}
	return GetFeedbacksQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetFeedbacksQuery) Validate() error {
	return q.guard.Validate(ErrGetFeedbacksQueryIsNotConstructed)
}

func (q GetFeedbacksQuery) Limit() int {
	return q.limit
}

// FeedbackView is one feedback entry joined with its order.
type FeedbackView struct {
	OrderID      order.ID
	UserID       *user.ID
	CustomerName string
	Rating       int
	Comment      string
	SubmittedAt  time.Time
}
