package order

import (
	"errors"
	"fmt"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrSettlementIsNotConstructed = errors.New("Settlement must be created via NewCashSettlement or NewOnlineSettlement")

// PaymentMethod is how the customer paid.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	Cash
	Online
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPaymentMethod: "Unknown",
		Cash:                 "Cash",
		Online:               "Online",
	}
}

// ParsePaymentMethod accepts "Cash" or "Online" in any case.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "cash"):
		return Cash, nil
	case strings.EqualFold(s, "online"):
		return Online, nil
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

func (m PaymentMethod) Validate() error {
	if m != Cash && m != Online {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// Settlement is the outcome of collecting a payment: the method used and the
// change handed back. Online payments never produce change.
type Settlement struct {
	method PaymentMethod
	change kernel.Money
	guard  guard.ConstructorGuard
}

// NewCashSettlement records a cash payment of tendered against due.
// Tendering less than due is a validation error; the caller asks again.
func NewCashSettlement(due, tendered kernel.Money) (Settlement, error) {
	change, err := tendered.Sub(due)
	if err != nil {
		return Settlement{}, errs.NewValueIsOutOfRangeError("tendered", tendered.String(), due.String(), "unbounded")
	}
	return Settlement{method: Cash, change: change, guard: guard.NewConstructorGuard()}, nil
}

// NewOnlineSettlement records a confirmed online payment.
func NewOnlineSettlement() Settlement {
	return Settlement{method: Online, guard: guard.NewConstructorGuard()}
}

// RestoreSettlement rebuilds a stored settlement.
func RestoreSettlement(method PaymentMethod, change kernel.Money) (Settlement, error) {
	if err := method.Validate(); err != nil {
		return Settlement{}, err
	}
	if method == Online && !change.IsZero() {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause("change",
			fmt.Errorf("online payment cannot give %s change", change))
	}
	return Settlement{method: method, change: change, guard: guard.NewConstructorGuard()}, nil
}

func (s Settlement) Method() PaymentMethod {
	return s.method
}

// Change is the amount handed back to a cash customer.
func (s Settlement) Change() kernel.Money {
	return s.change
}

func (s Settlement) Validate() error {
	return s.guard.Validate(ErrSettlementIsNotConstructed)
}
