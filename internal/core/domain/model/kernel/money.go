package kernel

import (
	"fmt"

	"canteen/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every amount is kept at.
const MoneyScale = 2

// Money is a non-negative fixed-point amount in the canteen's single currency.
// It is backed by shopspring/decimal, so prices, taxes and totals never pick up
// floating point error. The zero value is a valid amount of 0.00.
//
// Example:
//
//	price := kernel.MoneyFromUnits(50)
//	line := price.Times(2) // 100.00
//	tax := line.ApplyRate(decimal.RequireFromString("0.05")) // 5.00
type Money struct {
	amount decimal.Decimal
}

// Zero is an amount of 0.00.
var Zero = Money{}

// NewMoney wraps d as an amount, rounded to MoneyScale places.
// Negative amounts are rejected.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", d.String(), "0", "unbounded")
	}
	return Money{amount: d.Round(MoneyScale)}, nil
}

// MoneyFromUnits returns a whole amount, e.g. 50 for 50.00.
// It panics on a negative argument; use it for constants and tests.
func MoneyFromUnits(units int64) Money {
	m, err := NewMoney(decimal.NewFromInt(units))
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney parses user input such as "120" or "49.50".
// More than MoneyScale decimal places, negative values and
// non-numeric input are validation errors.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a number", s))
	}
	if !d.Equal(d.Round(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%q has more than %d decimal places", s, MoneyScale))
	}
	return NewMoney(d)
}

// MustParseMoney is ParseMoney for literals known to be valid. It panics
// otherwise.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other. A negative result is an error, since Money
// cannot represent it.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

// Times returns m multiplied by a quantity. Non-positive quantities yield Zero.
func (m Money) Times(qty int) Money {
	if qty <= 0 {
		return Zero
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// ApplyRate returns m × rate rounded half away from zero to MoneyScale places.
// Negative rates yield Zero.
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	if rate.IsNegative() {
		return Zero
	}
	return Money{amount: m.amount.Mul(rate).Round(MoneyScale)}
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares amounts numerically, so 20 and 20.00 are equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// String formats the amount with exactly MoneyScale decimals, e.g. "231.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
