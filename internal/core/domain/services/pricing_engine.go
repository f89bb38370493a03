package services

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingPolicy holds the adjustable pricing constants.
type PricingPolicy struct {
	// DiscountThreshold is the smallest subtotal that earns the discount.
	DiscountThreshold kernel.Money
	// DiscountRate is the share of the subtotal taken off, in [0, 1].
	DiscountRate decimal.Decimal
	// TaxRate is applied to the subtotal before discount, in [0, 1].
	TaxRate decimal.Decimal
	// ParcelFee is added when the customer takes the order away.
	ParcelFee kernel.Money
}

// DefaultPricingPolicy returns 10% off from 499, 5% tax and a 20 parcel fee.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		DiscountThreshold: kernel.MoneyFromUnits(499),
		DiscountRate:      decimal.RequireFromString("0.10"),
		TaxRate:           decimal.RequireFromString("0.05"),
		ParcelFee:         kernel.MoneyFromUnits(20),
	}
}

// Validate checks that both rates lie in [0, 1].
func (p PricingPolicy) Validate() error {
	return errors.Join(
		validateRate("discount rate", p.DiscountRate),
		validateRate("tax rate", p.TaxRate),
	)
}

func validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return errs.NewValueIsOutOfRangeError(name, rate.String(), 0, 1)
	}
	return nil
}

// PricingEngine turns cart lines into a bill. It is a pure computation:
// no storage access and no side effects, so the bill previewed to the
// customer is the same bill that is charged.
//
// Business rules:
//   - subtotal = Σ unit price × quantity
//   - discount = DiscountRate × subtotal when subtotal ≥ DiscountThreshold, else 0
//   - tax = TaxRate × subtotal (the pre-discount subtotal)
//   - parcel fee = ParcelFee when requested, else 0
//   - grand total = subtotal + tax + parcel fee - discount
//
// Rate products are rounded half away from zero to two decimals.
//
// Example usage:
//
//	engine, _ := services.NewPricingEngine(services.DefaultPricingPolicy())
//	bill, err := engine.Price(c.Lines(), true)
//	if errors.Is(err, errs.ErrEmptyCart) {
//	    // nothing to bill
//	}
type PricingEngine struct {
	policy PricingPolicy
}

// NewPricingEngine validates the policy and returns an engine using it.
func NewPricingEngine(policy PricingPolicy) (PricingEngine, error) {
	if err := policy.Validate(); err != nil {
		return PricingEngine{}, err
	}
	return PricingEngine{policy: policy}, nil
}

func (e PricingEngine) Policy() PricingPolicy {
	return e.policy
}

// Price computes the bill for lines.
//
// Returns:
//   - order.Bill with the derived grand total
//   - *errs.EmptyCartError when lines is empty
//   - a validation error when a line was not built with cart.NewLine
func (e PricingEngine) Price(lines []cart.Line, parcel bool) (order.Bill, error) {
	if len(lines) == 0 {
		return order.Bill{}, errs.NewEmptyCartError()
	}

	subtotal := kernel.Zero
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return order.Bill{}, fmt.Errorf("line %d: %w", i, err)
		}
		subtotal = subtotal.Add(line.Total())
	}

	discount := kernel.Zero
	if subtotal.GreaterThanOrEqual(e.policy.DiscountThreshold) {
		discount = subtotal.ApplyRate(e.policy.DiscountRate)
	}

	tax := subtotal.ApplyRate(e.policy.TaxRate)

	parcelFee := kernel.Zero
	if parcel {
		parcelFee = e.policy.ParcelFee
	}

	return order.NewBill(subtotal, discount, tax, parcelFee)
}
