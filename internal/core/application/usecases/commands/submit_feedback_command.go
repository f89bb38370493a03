package commands

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/feedback"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

// SubmitFeedbackCommand rates a completed order.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	userID  *user.ID
	rating  int
	comment string

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand validates the order id and the rating range.
// userID may be nil when the customer is not signed in.
func NewSubmitFeedbackCommand(orderID order.ID, userID *user.ID, rating int, comment string) (SubmitFeedbackCommand, error) {
	cmd := SubmitFeedbackCommand{
		userID:  userID,
		comment: strings.TrimSpace(comment),
		guard:   guard.NewConstructorGuard(),
	}

	var ratingErr error
	if rating < feedback.MinRating || rating > feedback.MaxRating {
		ratingErr = errs.NewValueIsOutOfRangeError("rating", rating, feedback.MinRating, feedback.MaxRating)
	}
	if err := errors.Join(orderID.Validate(), ratingErr); err != nil {
		return SubmitFeedbackCommand{}, err
	}

	cmd.orderID = orderID
	cmd.rating = rating
	return cmd, nil
}

func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

func (c SubmitFeedbackCommand) OrderID() order.ID {
	return c.orderID
}

func (c SubmitFeedbackCommand) UserID() *user.ID {
	return c.userID
}

func (c SubmitFeedbackCommand) Rating() int {
	return c.rating
}

func (c SubmitFeedbackCommand) Comment() string {
	return c.comment
}
