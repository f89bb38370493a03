// Package errs provides standardized error types for the canteen application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types:
//   - Validation errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError).
//     All of them match ErrValidation through errors.Is, so callers can treat
//     any malformed input the same way and re-prompt.
//   - Business rule errors (EmptyCartError, InsufficientStockError,
//     InvalidTransitionError, FeedbackNotAllowedError) and ObjectNotFoundError.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The core only classifies failures. Adapters (HTTP, console) decide how a
// class of error is presented to the user.
package errs
