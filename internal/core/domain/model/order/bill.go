package order

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill or RestoreBill")

// Bill is the priced breakdown of an order.
//
// Invariant:
//
//	GrandTotal == Subtotal + Tax + ParcelFee - Discount
//
// The grand total is derived once, in NewBill, and is never recomputed.
type Bill struct {
	subtotal   kernel.Money
	discount   kernel.Money
	tax        kernel.Money
	parcelFee  kernel.Money
	grandTotal kernel.Money
	guard      guard.ConstructorGuard
}

// NewBill derives the grand total from the four components.
// A discount larger than everything it is subtracted from is rejected.
//
// Example:
//
//	bill, err := order.NewBill(
//	    kernel.MoneyFromUnits(600), // subtotal
//	    kernel.MoneyFromUnits(60),  // discount
//	    kernel.MoneyFromUnits(30),  // tax
//	    kernel.MoneyFromUnits(20),  // parcel fee
//	)
//	bill.GrandTotal() // 590.00
func NewBill(subtotal, discount, tax, parcelFee kernel.Money) (Bill, error) {
	grand, err := subtotal.Add(tax).Add(parcelFee).Sub(discount)
	if err != nil {
		return Bill{}, errs.NewValueIsOutOfRangeErrorWithCause("discount", discount.String(), "0",
			subtotal.Add(tax).Add(parcelFee).String(), err)
	}

	return Bill{
		subtotal:   subtotal,
		discount:   discount,
		tax:        tax,
		parcelFee:  parcelFee,
		grandTotal: grand,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreBill rebuilds a stored bill and checks that the stored grand total
// still satisfies the invariant.
func RestoreBill(subtotal, discount, tax, parcelFee, grandTotal kernel.Money) (Bill, error) {
	bill, err := NewBill(subtotal, discount, tax, parcelFee)
	if err != nil {
		return Bill{}, err
	}
	if !bill.grandTotal.Equal(grandTotal) {
		return Bill{}, errs.NewValueIsInvalidErrorWithCause("grand total",
			fmt.Errorf("stored %s, components add up to %s", grandTotal, bill.grandTotal))
	}
	return bill, nil
}

func (b Bill) Subtotal() kernel.Money {
	return b.subtotal
}

func (b Bill) Discount() kernel.Money {
	return b.discount
}

func (b Bill) Tax() kernel.Money {
	return b.tax
}

func (b Bill) ParcelFee() kernel.Money {
	return b.parcelFee
}

func (b Bill) GrandTotal() kernel.Money {
	return b.grandTotal
}

func (b Bill) Validate() error {
	return b.guard.Validate(ErrBillIsNotConstructed)
}
