// Package kernel provides the value objects shared by every aggregate of the
// canteen domain.
//
// The package includes:
//   - Money: a non-negative, two-decimal amount built on shopspring/decimal
//   - ContactNumber: a validated ten digit mobile number
//   - UUID: random identifiers for cart sessions and checkout references
//
// Values are immutable. Constructors validate their input and return errors
// from internal/pkg/errs, so a malformed value never reaches an aggregate.
package kernel
