package order

import (
	"errors"
	"strings"
	"unicode"

	"canteen/internal/core/domain/model/user"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer")

// Customer is who the order is for: a display name and, when the order was
// placed by a signed-in user, that user's id.
type Customer struct {
	name   string
	userID *user.ID
	guard  guard.ConstructorGuard
}

// NewCustomer validates the customer name: required, letters and spaces only.
// userID may be nil for walk-in customers served at the till.
//
// Example:
//
//	customer, err := order.NewCustomer("Asha Rao", nil)
func NewCustomer(name string, userID *user.ID) (Customer, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	for _, r := range name {
		if r != ' ' && !unicode.IsLetter(r) {
			return Customer{}, errs.NewValueIsInvalidErrorWithCause("customer name",
				errors.New("please use letters and spaces only"))
		}
	}

	c := Customer{name: name, guard: guard.NewConstructorGuard()}
	if userID != nil && strings.TrimSpace(string(*userID)) != "" {
		id := *userID
		c.userID = &id
	}
	return c, nil
}

func (c Customer) Name() string {
	return c.name
}

// UserID returns nil for walk-in customers.
func (c Customer) UserID() *user.ID {
	return c.userID
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}
