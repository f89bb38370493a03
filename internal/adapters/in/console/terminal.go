package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"canteen/internal/core/application/payment"
	"canteen/internal/core/domain/model/kernel"
)

// terminal takes payment on the till's own input and output. Running out
// of input aborts the payment.
type terminal struct {
	till *Till
}

func (t terminal) SelectMethod(_ context.Context, due kernel.Money) (string, error) {
	t.till.println("\n====== PAYMENT ======")
	t.till.printf("Amount to Pay: %s\n", due)
	t.till.println("1. Cash")
	t.till.println("2. Online")
	return t.read("Choose option: ")
}

func (t terminal) ReadTendered(context.Context, kernel.Money) (string, error) {
	return t.read("Enter cash given: ")
}

func (t terminal) ShowInstructions(_ context.Context, instructions payment.Instructions) error {
	qr, err := instructions.QRText()
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 33)
	t.till.println("\n" + rule)
	t.till.println("    SCAN & PAY via UPI")
	t.till.println(rule)
	t.till.printf("    UPI ID   : %s\n", instructions.PayeeVPA)
	t.till.printf("    PAYEE    : %s\n", instructions.PayeeName)
	t.till.printf("    AMOUNT   : %s %s\n", instructions.Amount, instructions.Currency)
	t.till.printf("    REF      : %s\n", instructions.Reference)
	t.till.println(rule)
	t.till.print(qr)
	t.till.println(rule)
	return nil
}

func (t terminal) AwaitConfirmation(context.Context, payment.Instructions) error {
	if _, err := t.read("Press Enter after payment is done..."); err != nil {
		return err
	}
	return nil
}

func (t terminal) Notify(_ context.Context, message string) {
	t.till.println(message)
}

func (t terminal) read(label string) (string, error) {
	line, err := t.till.prompt(label)
	if errors.Is(err, io.EOF) {
		return "", payment.ErrAborted
	}
	return line, err
}
