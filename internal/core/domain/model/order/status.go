package order

import (
	"fmt"
	"strings"

	"canteen/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements the kitchen's state machine: an order only ever moves
// forward, and once it reaches a terminal state it stays there.
//
// State transitions:
//
//	Received ──> Preparing ──> Ready ──> Completed
//	    │            │           │
//	    └────────────┴───────────┴─────> Cancelled
//
// Forward moves may skip steps (a counter order can go from Received straight
// to Ready or Completed). Moving backwards, staying in place, or leaving
// Completed or Cancelled fails with errs.InvalidTransitionError.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status set when an order is committed.
	Received

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order waits at the counter.
	Ready

	// Completed means the order was handed over. Terminal.
	// Only completed orders accept feedback.
	Completed

	// Cancelled means the order will not be served. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Received:  "Received",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "Received",
		Preparing: "Preparing",
		Ready:     "Ready",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// ParseStatus converts a status name, in any case, into a Status.
// It is used for values coming from HTTP requests and from storage.
//
// Example:
//
//	status, err := order.ParseStatus("ready") // Ready, nil
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Received, Preparing, Ready, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether the kitchen still has to act on the order.
func (s Status) IsActive() bool {
	return s == Received || s == Preparing || s == Ready
}

// CanTransitionTo reports whether next is reachable from s without
// performing the transition. Any later status is reachable, so the counter
// may mark a Received order Completed directly.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil || s.IsTerminal() {
		return false
	}
	if next == Cancelled {
		return true
	}
	return next > s
}

// TransitionTo returns next if the move from s is legal.
//
// Returns:
//   - (next, nil) on a legal transition
//   - (s, validation error) if next is not a valid status
//   - (s, *errs.InvalidTransitionError) if the move regresses, repeats the
//     current status, or leaves a terminal status
//
// The receiver is returned unchanged on error so callers can keep using it.
//
// Example:
//
//	next, err := order.Received.TransitionTo(order.Preparing) // Preparing, nil
//	_, err = order.Completed.TransitionTo(order.Preparing)    // InvalidTransitionError
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return s, err
	}
	if !s.CanTransitionTo(next) {
		return s, errs.NewInvalidTransitionError(s, next)
	}
	return next, nil
}
