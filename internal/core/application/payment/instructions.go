package payment

import (
	"net/url"

	"canteen/internal/core/domain/model/kernel"

	qrcode "github.com/skip2/go-qrcode"
)

// Instructions tell the payer where to send an online payment.
type Instructions struct {
	PayeeVPA  string
	PayeeName string
	Amount    kernel.Money
	Currency  string
	Reference string
}

// URI is the upi://pay deep link encoded in the QR code.
func (i Instructions) URI() string {
	q := url.Values{}
	q.Set("pa", i.PayeeVPA)
	q.Set("pn", i.PayeeName)
	q.Set("am", i.Amount.String())
	q.Set("cu", i.Currency)
	if i.Reference != "" {
		q.Set("tr", i.Reference)
		q.Set("tn", "Order "+i.Reference)
	}
	return "upi://pay?" + q.Encode()
}

// QRText renders the QR code with block characters for a terminal.
func (i Instructions) QRText() (string, error) {
	code, err := qrcode.New(i.URI(), qrcode.Medium)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}

// QRPNG renders the QR code as a PNG image of size×size pixels.
func (i Instructions) QRPNG(size int) ([]byte, error) {
	return qrcode.Encode(i.URI(), qrcode.Medium, size)
}
