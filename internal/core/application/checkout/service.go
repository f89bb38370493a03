// Package checkout turns a session cart into a paid, committed order.
//
// PlaceOrder runs the pipeline in a fixed order: validate the customer,
// snapshot the cart, price it, collect payment, commit the ledger
// transaction, then clear the cart. Payment is collected before the
// transaction opens, so no row lock is held while a payer counts coins.
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"canteen/internal/core/application/payment"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"
	"canteen/internal/core/domain/services"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("canteen/checkout")

// Collector takes payment for an amount through a terminal.
type Collector interface {
	Collect(ctx context.Context, amount kernel.Money, reference string, terminal payment.Terminal) (order.Settlement, error)
}

// Ledger commits a paid order atomically.
type Ledger interface {
	Handle(ctx context.Context, cmd commands.CommitOrderCommand) (order.ID, error)
}

// Request is everything a customer supplies at checkout besides the cart.
type Request struct {
	SessionID    kernel.UUID
	CustomerName string
	Contact      string
	UserID       *user.ID
	Parcel       bool
}

// Quote is a priced preview of a cart.
type Quote struct {
	Lines []cart.Line
	Bill  order.Bill
}

// Receipt describes a placed order.
type Receipt struct {
	OrderID      order.ID
	Reference    kernel.UUID
	CustomerName string
	Contact      kernel.ContactNumber
	Lines        []cart.Line
	Bill         order.Bill
	Settlement   order.Settlement
	PlacedAt     time.Time
	// CartCleared is false when the cart was edited while payment was
	// being collected; the edited cart is kept for the customer.
	CartCleared bool
}

type Service struct {
	sessions ports.SessionStore
	pricing  services.PricingEngine
	payments Collector
	ledger   Ledger
	clock    commands.Clock
	logger   *slog.Logger
	metrics  *checkoutMetrics
}

func NewService(
	sessions ports.SessionStore,
	pricing services.PricingEngine,
	payments Collector,
	ledger Ledger,
	clock commands.Clock,
) (*Service, error) {
	if sessions == nil {
		return nil, errs.NewValueIsRequiredError("sessions")
	}
	if payments == nil {
		return nil, errs.NewValueIsRequiredError("payments")
	}
	if ledger == nil {
		return nil, errs.NewValueIsRequiredError("ledger")
	}

	metrics, err := newCheckoutMetrics(otel.Meter("canteen/checkout"))
	if err != nil {
		return nil, err
	}

	if clock == nil {
		clock = time.Now
	}

	return &Service{
		sessions: sessions,
		pricing:  pricing,
		payments: payments,
		ledger:   ledger,
		clock:    clock,
		logger:   slog.Default().With("component", "checkout"),
		metrics:  metrics,
	}, nil
}

// Preview prices the session's cart without touching it.
func (s *Service) Preview(ctx context.Context, sessionID kernel.UUID, parcel bool) (Quote, error) {
	_, span := tracer.Start(ctx, "checkout.Preview")
	defer span.End()

	lines, _, err := s.snapshot(sessionID)
	if err != nil {
		return Quote{}, recordError(span, err)
	}

	bill, err := s.pricing.Price(lines, parcel)
	if err != nil {
		return Quote{}, recordError(span, err)
	}

	return Quote{Lines: lines, Bill: bill}, nil
}

// PlaceOrder prices the session's cart, collects payment through terminal
// and commits the order. On any error nothing is persisted and the cart is
// left as it was.
func (s *Service) PlaceOrder(ctx context.Context, req Request, terminal payment.Terminal) (Receipt, error) {
	ctx, span := tracer.Start(ctx, "checkout.PlaceOrder",
		trace.WithAttributes(
			attribute.String("canteen.session_id", req.SessionID.String()),
			attribute.Bool("canteen.parcel", req.Parcel),
		),
	)
	defer span.End()

	started := s.clock()
	receipt, err := s.placeOrder(ctx, span, req, terminal)
	if err != nil {
		s.metrics.failed(ctx, err)
		return Receipt{}, recordError(span, err)
	}

	s.metrics.placed(ctx, receipt, s.clock().Sub(started))
	span.SetAttributes(attribute.Int64("canteen.order_id", int64(receipt.OrderID)))
	return receipt, nil
}

func (s *Service) placeOrder(
	ctx context.Context,
	span trace.Span,
	req Request,
	terminal payment.Terminal,
) (Receipt, error) {
	customer, contact, err := customerOf(req)
	if err != nil {
		return Receipt{}, err
	}

	lines, version, err := s.snapshot(req.SessionID)
	if err != nil {
		return Receipt{}, err
	}

	bill, err := s.pricing.Price(lines, req.Parcel)
	if err != nil {
		return Receipt{}, err
	}
	span.AddEvent("priced", trace.WithAttributes(attribute.String("canteen.grand_total", bill.GrandTotal().String())))

	reference := kernel.NewUUID()
	settlement, err := s.payments.Collect(ctx, bill.GrandTotal(), reference.Short(), terminal)
	if err != nil {
		return Receipt{}, err
	}
	span.AddEvent("paid", trace.WithAttributes(attribute.String("canteen.payment_method", settlement.Method().String())))

	cmd, err := commands.NewCommitOrderCommand(customer, contact, lines, bill, settlement)
	if err != nil {
		return Receipt{}, err
	}

	orderID, err := s.ledger.Handle(ctx, cmd)
	if err != nil {
		// Money has changed hands but no order exists; the cashier refunds
		// by reference.
		s.logger.ErrorContext(ctx, "order commit failed after payment",
			"reference", reference.Short(),
			"amount", bill.GrandTotal().String(),
			"method", settlement.Method().String(),
			"error", err,
		)
		return Receipt{}, err
	}

	cleared := s.clearIfUnchanged(ctx, req.SessionID, version)

	s.logger.InfoContext(ctx, "order placed",
		"order_id", int64(orderID),
		"reference", reference.Short(),
		"grand_total", bill.GrandTotal().String(),
		"method", settlement.Method().String(),
	)

	return Receipt{
		OrderID:      orderID,
		Reference:    reference,
		CustomerName: customer.Name(),
		Contact:      contact,
		Lines:        lines,
		Bill:         bill,
		Settlement:   settlement,
		PlacedAt:     s.clock(),
		CartCleared:  cleared,
	}, nil
}

func customerOf(req Request) (order.Customer, kernel.ContactNumber, error) {
	customer, nameErr := order.NewCustomer(req.CustomerName, req.UserID)
	contact, contactErr := kernel.NewContactNumber(req.Contact)
	if err := errors.Join(nameErr, contactErr); err != nil {
		return order.Customer{}, kernel.ContactNumber{}, err
	}
	return customer, contact, nil
}

func (s *Service) snapshot(sessionID kernel.UUID) ([]cart.Line, uint64, error) {
	var (
		lines   []cart.Line
		version uint64
	)
	err := s.sessions.WithCart(sessionID, func(c *cart.Cart) error {
		lines = c.Lines()
		version = c.Version()
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if len(lines) == 0 {
		return nil, 0, errs.NewEmptyCartError()
	}
	return lines, version, nil
}

func (s *Service) clearIfUnchanged(ctx context.Context, sessionID kernel.UUID, version uint64) bool {
	cleared := false
	err := s.sessions.WithCart(sessionID, func(c *cart.Cart) error {
		if c.Version() == version {
			c.Clear()
			cleared = true
		}
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "cart not cleared after checkout", "session_id", sessionID.String(), "error", err)
		return false
	}
	return cleared
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

type checkoutMetrics struct {
	orders   metric.Int64Counter
	failures metric.Int64Counter
	revenue  metric.Float64Counter
	duration metric.Float64Histogram
}

func newCheckoutMetrics(meter metric.Meter) (*checkoutMetrics, error) {
	orders, err := meter.Int64Counter("canteen.orders.placed",
		metric.WithDescription("Orders committed to the ledger"))
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("canteen.checkout.failures",
		metric.WithDescription("Checkouts that ended without an order"))
	if err != nil {
		return nil, err
	}
	revenue, err := meter.Float64Counter("canteen.revenue",
		metric.WithDescription("Grand totals of placed orders"),
		metric.WithUnit("{INR}"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("canteen.checkout.duration",
		metric.WithDescription("Time from checkout start to commit, payment included"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &checkoutMetrics{orders: orders, failures: failures, revenue: revenue, duration: duration}, nil
}

func (m *checkoutMetrics) placed(ctx context.Context, r Receipt, took time.Duration) {
	method := metric.WithAttributes(attribute.String("payment_method", r.Settlement.Method().String()))
	m.orders.Add(ctx, 1, method)
	m.revenue.Add(ctx, r.Bill.GrandTotal().Decimal().InexactFloat64(), method)
	m.duration.Record(ctx, took.Seconds(), method)
}

func (m *checkoutMetrics) failed(ctx context.Context, err error) {
	m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", failureReason(err))))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return "validation"
	case errors.Is(err, errs.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, errs.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, payment.ErrAborted), errors.Is(err, context.Canceled):
		return "aborted"
	default:
		return "internal"
	}
}
