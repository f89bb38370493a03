package kernel

import (
	"errors"
	"strings"

	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

// ContactNumberLength is the exact number of digits of a mobile number.
const ContactNumberLength = 10

var ErrContactNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"contact number must be created via NewContactNumber")

// ContactNumber is a customer's mobile number: exactly ten ASCII digits.
// Orders are looked up by it when a customer asks for their history.
type ContactNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewContactNumber validates raw after trimming surrounding spaces.
//
// Example:
//
//	contact, err := kernel.NewContactNumber("9876543210")
//	if errors.Is(err, errs.ErrValidation) {
//	    // ask again
//	}
func NewContactNumber(raw string) (ContactNumber, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ContactNumber{}, errs.NewValueIsRequiredError("mobile number")
	}
	if len(value) != ContactNumberLength {
		return ContactNumber{}, errs.NewValueIsInvalidErrorWithCause("mobile number",
			errors.New("mobile number must be exactly 10 digits"))
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return ContactNumber{}, errs.NewValueIsInvalidErrorWithCause("mobile number",
				errors.New("mobile number must contain digits only"))
		}
	}

	return ContactNumber{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c ContactNumber) String() string {
	return c.value
}

func (c ContactNumber) IsEqual(other ContactNumber) bool {
	return c.value == other.value
}

func (c ContactNumber) Validate() error {
	return c.guard.Validate(ErrContactNumberIsNotConstructed)
}
