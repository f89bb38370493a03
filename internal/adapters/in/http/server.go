package http

import (
	"context"
	"log/slog"

	"canteen/internal/core/application/checkout"
	"canteen/internal/core/application/payment"
	"canteen/internal/core/application/shopping"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
)

// Use case contracts the server depends on. Command handlers are passed by
// pointer, query handlers by value.
type (
	MenuReader interface {
		Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.MenuItemView, error)
	}
	MenuItemAdder interface {
		Handle(ctx context.Context, cmd commands.AddMenuItemCommand) (menu.ItemID, error)
	}
	MenuRestocker interface {
		Handle(ctx context.Context, cmd commands.RestockMenuItemCommand) error
	}
	OrderStatusSetter interface {
		Handle(ctx context.Context, cmd commands.SetOrderStatusCommand) error
	}
	FeedbackSubmitter interface {
		Handle(ctx context.Context, cmd commands.SubmitFeedbackCommand) error
	}
	OrderHistoryReader interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.OrderSummary, error)
	}
	OrderDetailsReader interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderDetails, error)
	}
	ActiveOrdersReader interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderDetails, error)
	}
	RevenueReportReader interface {
		Handle(ctx context.Context, query queries.GetRevenueReportQuery) (queries.RevenueReport, error)
	}
	FeedbackReader interface {
		Handle(ctx context.Context, query queries.GetFeedbacksQuery) ([]queries.FeedbackView, error)
	}
	PendingFeedbackReader interface {
		Handle(ctx context.Context, query queries.GetPendingFeedbackQuery) ([]queries.OrderSummary, error)
	}

	Carts interface {
		StartSession() (kernel.UUID, error)
		EndSession(id kernel.UUID)
		Add(ctx context.Context, sessionID kernel.UUID, itemID menu.ItemID, qty int) (shopping.CartView, error)
		SetQuantity(ctx context.Context, sessionID kernel.UUID, itemID menu.ItemID, qty int) (shopping.CartView, error)
		Remove(sessionID kernel.UUID, itemID menu.ItemID, qty int) (shopping.CartView, error)
		View(sessionID kernel.UUID) (shopping.CartView, error)
	}
	Checkout interface {
		Preview(ctx context.Context, sessionID kernel.UUID, parcel bool) (checkout.Quote, error)
		PlaceOrder(ctx context.Context, req checkout.Request, terminal payment.Terminal) (checkout.Receipt, error)
	}
)

// Handlers bundles the use cases exposed over HTTP.
type Handlers struct {
	Menu            MenuReader
	AddMenuItem     MenuItemAdder
	Restock         MenuRestocker
	SetOrderStatus  OrderStatusSetter
	SubmitFeedback  FeedbackSubmitter
	OrderHistory    OrderHistoryReader
	OrderDetails    OrderDetailsReader
	ActiveOrders    ActiveOrdersReader
	RevenueReport   RevenueReportReader
	Feedbacks       FeedbackReader
	PendingFeedback PendingFeedbackReader
	Carts           Carts
	Checkout        Checkout
}

var _ ServerInterface = (*Server)(nil)

// Server handles HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}
