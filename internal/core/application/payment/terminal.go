package payment

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
)

// ErrAborted is returned when the payer walks away from the terminal.
var ErrAborted = errors.New("payment aborted")

// Confirmer blocks until an online payment is acknowledged. In the canteen
// this is the cashier pressing enter after seeing the payment on their
// phone; it can be swapped for a gateway callback.
type Confirmer interface {
	AwaitConfirmation(ctx context.Context, instructions Instructions) error
}

// Terminal is the payer-facing side of collection. Read methods return the
// raw text the payer entered; parsing and validation stay in the Processor.
type Terminal interface {
	Confirmer

	// SelectMethod asks how the payer wants to pay.
	SelectMethod(ctx context.Context, due kernel.Money) (string, error)

	// ReadTendered asks for the cash amount handed over.
	ReadTendered(ctx context.Context, due kernel.Money) (string, error)

	// ShowInstructions presents UPI details and the QR code.
	ShowInstructions(ctx context.Context, instructions Instructions) error

	// Notify shows a message, such as why the last input was rejected.
	Notify(ctx context.Context, message string)
}
