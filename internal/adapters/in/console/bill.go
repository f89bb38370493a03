package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"canteen/internal/core/application/checkout"
	"canteen/internal/core/application/payment"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

func (t *Till) generateBill(ctx context.Context) error {
	view, err := t.deps.Carts.View(t.session)
	if err != nil {
		return err
	}
	if len(view.Lines) == 0 {
		t.println("Cart empty")
		return nil
	}

	name, err := t.askName()
	if err != nil {
		return err
	}
	contact, err := t.askContact()
	if err != nil {
		return err
	}
	parcel, err := t.prompt("Food Parcel? (yes/no): ")
	if err != nil {
		return err
	}

	receipt, err := t.deps.Checkout.PlaceOrder(ctx, checkout.Request{
		SessionID:    t.session,
		CustomerName: name,
		Contact:      contact.String(),
		Parcel:       strings.EqualFold(parcel, "yes") || strings.EqualFold(parcel, "y"),
	}, terminal{till: t})

	switch {
	case errors.Is(err, payment.ErrAborted):
		t.println("Bill generation aborted")
		return nil
	case errors.Is(err, errs.ErrInsufficientStock):
		t.println(reason(err))
		t.println("The cart was kept. Adjust it and generate the bill again.")
		return nil
	case err != nil:
		return err
	}

	t.printReceipt(receipt)
	return nil
}

// askName repeats until the name holds letters and spaces only.
func (t *Till) askName() (string, error) {
	for {
		name, err := t.prompt("Customer Name: ")
		if err != nil {
			return "", err
		}
		customer, err := order.NewCustomer(name, nil)
		if err == nil {
			return customer.Name(), nil
		}
		t.println("Invalid name. Please use characters only.")
	}
}

func (t *Till) askContact() (kernel.ContactNumber, error) {
	for {
		raw, err := t.prompt("Mobile: ")
		if err != nil {
			return kernel.ContactNumber{}, err
		}
		contact, err := kernel.NewContactNumber(raw)
		if err == nil {
			return contact, nil
		}
		if errors.Is(err, errs.ErrValueIsRequired) {
			t.println("Mobile number is required")
			continue
		}
		t.println(capitalize(reason(err)))
	}
}

func (t *Till) printReceipt(r checkout.Receipt) {
	rule := strings.Repeat("=", 30)
	w := t.table()
	t.println("\n========= FINAL BILL =========")
	fmt.Fprintf(w, "Order ID\t: %d\n", r.OrderID)
	fmt.Fprintf(w, "Reference\t: %s\n", r.Reference.Short())
	fmt.Fprintf(w, "Customer\t: %s\n", r.CustomerName)
	fmt.Fprintf(w, "Date\t: %s\n", r.PlacedAt.Local().Format(dateLayout))
	for _, l := range r.Lines {
		fmt.Fprintf(w, "  %s x%d\t: %s\n", l.Name(), l.Quantity(), l.Total())
	}
	fmt.Fprintf(w, "Subtotal\t: %s\n", r.Bill.Subtotal())
	if !r.Bill.Discount().IsZero() {
		fmt.Fprintf(w, "Discount\t: -%s\n", r.Bill.Discount())
	}
	fmt.Fprintf(w, "GST\t: %s\n", r.Bill.Tax())
	if !r.Bill.ParcelFee().IsZero() {
		fmt.Fprintf(w, "Parcel\t: %s\n", r.Bill.ParcelFee())
	}
	fmt.Fprintf(w, "Grand Total\t: %s\n", r.Bill.GrandTotal())
	fmt.Fprintf(w, "Payment Mode\t: %s\n", r.Settlement.Method())
	if r.Settlement.Method() == order.Cash {
		fmt.Fprintf(w, "Change Given\t: %s\n", r.Settlement.Change())
	}
	_ = w.Flush()
	t.println(rule)

	if !r.CartCleared {
		t.println("The cart changed during payment and was kept.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
