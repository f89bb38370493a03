package errs

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrFeedbackNotAllowed = errors.New("feedback not allowed")
)

// EmptyCartError is returned when pricing or checkout is attempted on a cart
// without lines. No commit is attempted.
type EmptyCartError struct{}

func NewEmptyCartError() *EmptyCartError {
	return &EmptyCartError{}
}

func (e *EmptyCartError) Error() string {
	return ErrEmptyCart.Error() + ": add at least one item before checkout"
}

func (e *EmptyCartError) Unwrap() error {
	return ErrEmptyCart
}

// InsufficientStockError is returned when a line asks for more units than
// the catalog holds. The whole commit is aborted and the cart is left as is.
type InsufficientStockError struct {
	ItemID    any
	ItemName  string
	Requested int
	Available int
}

func NewInsufficientStockError(itemID any, itemName string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ItemID:    itemID,
		ItemName:  itemName,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %q (item %v) requested %d, only %d left",
		ErrInsufficientStock, sanitize(e.ItemName), e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// InvalidTransitionError is returned when an order status change is not in
// the legal transition set. The status stays unchanged.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move order from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// FeedbackNotAllowedError is returned when feedback cannot be recorded for an
// order. Reason names the failed precondition.
type FeedbackNotAllowedError struct {
	OrderID any
	Reason  string
}

func NewFeedbackNotAllowedError(orderID any, reason string) *FeedbackNotAllowedError {
	return &FeedbackNotAllowedError{OrderID: orderID, Reason: reason}
}

func (e *FeedbackNotAllowedError) Error() string {
	return fmt.Sprintf("%s for order %v: %s", ErrFeedbackNotAllowed, e.OrderID, e.Reason)
}

func (e *FeedbackNotAllowedError) Unwrap() error {
	return ErrFeedbackNotAllowed
}
