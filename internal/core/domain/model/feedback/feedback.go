// Package feedback provides the Feedback entity: a customer's rating of a
// completed order. Each order receives at most one feedback.
package feedback

import (
	"errors"
	"strings"
	"time"

	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

const (
	MinRating = 1
	MaxRating = 5

	// MaxCommentLength bounds the free-text comment, in runes.
	MaxCommentLength = 1000
)

var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback or RestoreFeedback")

// Feedback is a rating between MinRating and MaxRating plus an optional comment.
type Feedback struct {
	orderID     order.ID
	userID      *user.ID
	rating      int
	comment     string
	submittedAt time.Time
	guard       guard.ConstructorGuard
}

// NewFeedback records feedback for o. The order must be Completed; otherwise
// an *errs.FeedbackNotAllowedError is returned. Whether feedback already
// exists for the order is enforced by the storage.
//
// Example:
//
//	fb, err := feedback.NewFeedback(o, nil, 5, "Great burger", time.Now())
//	if errors.Is(err, errs.ErrFeedbackNotAllowed) {
//	    // order not completed yet
//	}
func NewFeedback(o *order.Order, userID *user.ID, rating int, comment string, at time.Time) (*Feedback, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	fb, err := build(o.ID(), userID, rating, comment, at)
	if err != nil {
		return nil, err
	}

	if err := o.CanReceiveFeedback(); err != nil {
		return nil, err
	}
	return fb, nil
}

// RestoreFeedback rebuilds a stored feedback row.
func RestoreFeedback(orderID order.ID, userID *user.ID, rating int, comment string, at time.Time) (*Feedback, error) {
	return build(orderID, userID, rating, comment, at)
}

func build(orderID order.ID, userID *user.ID, rating int, comment string, at time.Time) (*Feedback, error) {
	fb := &Feedback{
		submittedAt: at,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fb.setOrderID(orderID),
		fb.setRating(rating),
		fb.setComment(comment),
	); err != nil {
		return nil, err
	}

	if userID != nil && strings.TrimSpace(string(*userID)) != "" {
		id := *userID
		fb.userID = &id
	}
	return fb, nil
}

func (f *Feedback) Validate() error {
	if f == nil {
		return ErrFeedbackIsNotConstructed
	}
	return f.guard.Validate(ErrFeedbackIsNotConstructed)
}

func (f *Feedback) OrderID() order.ID {
	return f.orderID
}

func (f *Feedback) UserID() *user.ID {
	return f.userID
}

func (f *Feedback) Rating() int {
	return f.rating
}

func (f *Feedback) Comment() string {
	return f.comment
}

func (f *Feedback) SubmittedAt() time.Time {
	return f.submittedAt
}

func (f *Feedback) setOrderID(id order.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.orderID = id
	return nil
}

func (f *Feedback) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	f.rating = rating
	return nil
}

func (f *Feedback) setComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if n := len([]rune(comment)); n > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", n, 0, MaxCommentLength)
	}
	f.comment = comment
	return nil
}
