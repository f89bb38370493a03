package http

import (
	"context"
	"encoding/base64"

	"canteen/internal/core/application/payment"
	"canteen/internal/core/domain/model/kernel"
)

const qrSize = 256

// PaymentInput is what an HTTP client answers up front for the payment
// prompts. A request cannot be re-prompted, so the second ask of any prompt
// aborts the payment.
type PaymentInput struct {
	Method    string `json:"method"`
	Tendered  string `json:"tendered,omitempty"`
	Confirmed bool   `json:"confirmed"`
}

// requestTerminal answers payment.Terminal prompts from a PaymentInput and
// records what the processor showed, so the response can carry it.
type requestTerminal struct {
	input         PaymentInput
	methodAsked   bool
	tenderedAsked bool
	notices       []string
	instructions  *payment.Instructions
}

func newRequestTerminal(input PaymentInput) *requestTerminal {
	return &requestTerminal{input: input}
}

func (t *requestTerminal) SelectMethod(context.Context, kernel.Money) (string, error) {
	if t.methodAsked {
		return "", payment.ErrAborted
	}
	t.methodAsked = true
	return t.input.Method, nil
}

func (t *requestTerminal) ReadTendered(context.Context, kernel.Money) (string, error) {
	if t.tenderedAsked {
		return "", payment.ErrAborted
	}
	t.tenderedAsked = true
	return t.input.Tendered, nil
}

func (t *requestTerminal) ShowInstructions(_ context.Context, instructions payment.Instructions) error {
	t.instructions = &instructions
	return nil
}

func (t *requestTerminal) AwaitConfirmation(context.Context, payment.Instructions) error {
	if !t.input.Confirmed {
		return payment.ErrAborted
	}
	return nil
}

func (t *requestTerminal) Notify(_ context.Context, message string) {
	t.notices = append(t.notices, message)
}

// lastNotice is the processor's latest rejection message, if any.
func (t *requestTerminal) lastNotice() string {
	if len(t.notices) == 0 {
		return ""
	}
	return t.notices[len(t.notices)-1]
}

// PaymentPending is returned with 402 when an online payment still needs
// the payer's confirmation.
type PaymentPending struct {
	Error
	URI       string `json:"upi_uri,omitempty"`
	Amount    string `json:"amount,omitempty"`
	Reference string `json:"reference,omitempty"`
	QRCodePNG string `json:"qr_png_base64,omitempty"`
}

func (t *requestTerminal) pending(code int, message string) (PaymentPending, error) {
	if notice := t.lastNotice(); notice != "" {
		message = notice
	}
	body := PaymentPending{Error: Error{Code: code, Message: message}}
	if t.instructions == nil {
		return body, nil
	}

	png, err := t.instructions.QRPNG(qrSize)
	if err != nil {
		return PaymentPending{}, err
	}
	body.URI = t.instructions.URI()
	body.Amount = t.instructions.Amount.String()
	body.Reference = t.instructions.Reference
	body.QRCodePNG = base64.StdEncoding.EncodeToString(png)
	return body, nil
}
