package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
)

// Config holds the payee details shown for online payments.
type Config struct {
	PayeeVPA  string
	PayeeName string
	Currency  string
}

func DefaultConfig() Config {
	return Config{
		PayeeVPA:  "canteen@upi",
		PayeeName: "SmartCanteen",
		Currency:  "INR",
	}
}

func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.PayeeVPA) == "":
		return errs.NewValueIsRequiredError("payee vpa")
	case !strings.Contains(c.PayeeVPA, "@"):
		return errs.NewValueIsInvalidErrorWithCause("payee vpa", fmt.Errorf("%q has no @handle", c.PayeeVPA))
	case strings.TrimSpace(c.PayeeName) == "":
		return errs.NewValueIsRequiredError("payee name")
	case len(c.Currency) != 3:
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not an ISO 4217 code", c.Currency))
	}
	return nil
}

// Processor runs the collection protocol. It is stateless and safe for
// concurrent use; each call works against its own Terminal.
type Processor struct {
	cfg    Config
	logger *slog.Logger
}

func NewProcessor(cfg Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Processor{
		cfg:    cfg,
		logger: slog.Default().With("component", "payment_processor"),
	}, nil
}

// Collect takes payment of amount through terminal and returns how it was
// settled. reference is shown to the payer and embedded in UPI requests.
func (p *Processor) Collect(
	ctx context.Context,
	amount kernel.Money,
	reference string,
	terminal Terminal,
) (order.Settlement, error) {
	method, err := p.selectMethod(ctx, amount, terminal)
	if err != nil {
		return order.Settlement{}, err
	}

	switch method {
	case order.Cash:
		return p.collectCash(ctx, amount, terminal)
	default:
		return p.collectOnline(ctx, amount, reference, terminal)
	}
}

// ParseMethod maps the till menu choices to a payment method.
func ParseMethod(input string) (order.PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "cash":
		return order.Cash, true
	case "2", "online", "upi":
		return order.Online, true
	default:
		return order.UnknownPaymentMethod, false
	}
}

func (p *Processor) selectMethod(
	ctx context.Context,
	amount kernel.Money,
	terminal Terminal,
) (order.PaymentMethod, error) {
	for {
		if err := ctx.Err(); err != nil {
			return order.UnknownPaymentMethod, err
		}

		input, err := terminal.SelectMethod(ctx, amount)
		if err != nil {
			return order.UnknownPaymentMethod, err
		}

		if method, ok := ParseMethod(input); ok {
			return method, nil
		}
		terminal.Notify(ctx, "Invalid choice. Enter 1 for Cash or 2 for Online/UPI.")
	}
}

func (p *Processor) collectCash(ctx context.Context, amount kernel.Money, terminal Terminal) (order.Settlement, error) {
	for {
		if err := ctx.Err(); err != nil {
			return order.Settlement{}, err
		}

		input, err := terminal.ReadTendered(ctx, amount)
		if err != nil {
			return order.Settlement{}, err
		}

		tendered, err := kernel.ParseMoney(strings.TrimSpace(input))
		if err != nil {
			terminal.Notify(ctx, "Enter a valid amount, for example 250 or 250.50.")
			continue
		}

		if tendered.LessThan(amount) {
			short, _ := amount.Sub(tendered)
			terminal.Notify(ctx, fmt.Sprintf("Insufficient cash! Need %s more.", short))
			continue
		}

		settlement, err := order.NewCashSettlement(amount, tendered)
		if err != nil {
			return order.Settlement{}, err
		}

		terminal.Notify(ctx, fmt.Sprintf("Payment successful. Change to return: %s", settlement.Change()))
		p.logger.InfoContext(ctx, "cash collected", "amount", amount.String(), "change", settlement.Change().String())
		return settlement, nil
	}
}

func (p *Processor) collectOnline(
	ctx context.Context,
	amount kernel.Money,
	reference string,
	terminal Terminal,
) (order.Settlement, error) {
	instructions := Instructions{
		PayeeVPA:  p.cfg.PayeeVPA,
		PayeeName: p.cfg.PayeeName,
		Amount:    amount,
		Currency:  p.cfg.Currency,
		Reference: reference,
	}

	if err := terminal.ShowInstructions(ctx, instructions); err != nil {
		return order.Settlement{}, err
	}

	if err := terminal.AwaitConfirmation(ctx, instructions); err != nil {
		return order.Settlement{}, err
	}
	if err := ctx.Err(); err != nil {
		return order.Settlement{}, err
	}

	terminal.Notify(ctx, "Payment confirmed.")
	p.logger.InfoContext(ctx, "online payment confirmed", "amount", amount.String(), "reference", reference)
	return order.NewOnlineSettlement(), nil
}
