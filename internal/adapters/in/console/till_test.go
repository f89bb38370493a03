package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"canteen/internal/adapters/in/console"
	"canteen/internal/adapters/out/memory"
	"canteen/internal/core/application/checkout"
	"canteen/internal/core/application/payment"
	"canteen/internal/core/application/shopping"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/services"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMenuReader struct{ mock.Mock }

func (m *MockMenuReader) Handle(ctx context.Context, q queries.GetMenuQuery) ([]queries.MenuItemView, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]queries.MenuItemView)
	return v, args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) Get(ctx context.Context, id menu.ItemID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

type MockLedger struct{ mock.Mock }

func (m *MockLedger) Handle(ctx context.Context, cmd commands.CommitOrderCommand) (order.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.ID), args.Error(1)
}

type MockRevenueReportReader struct{ mock.Mock }

func (m *MockRevenueReportReader) Handle(ctx context.Context, q queries.GetRevenueReportQuery) (queries.RevenueReport, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.RevenueReport), args.Error(1)
}

type MockOrderHistoryReader struct{ mock.Mock }

func (m *MockOrderHistoryReader) Handle(ctx context.Context, q queries.GetOrderHistoryQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]queries.OrderSummary)
	return v, args.Error(1)
}

func newPricing() (services.PricingEngine, error) {
	return services.NewPricingEngine(services.DefaultPricingPolicy())
}

type fixture struct {
	menu     *MockMenuReader
	catalog  *MockCatalog
	ledger   *MockLedger
	revenue  *MockRevenueReportReader
	history  *MockOrderHistoryReader
	sessions *memory.SessionStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		menu:     &MockMenuReader{},
		catalog:  &MockCatalog{},
		ledger:   &MockLedger{},
		revenue:  &MockRevenueReportReader{},
		history:  &MockOrderHistoryReader{},
		sessions: memory.NewSessionStore(nil),
	}

	burger, err := menu.NewMenuItem(1, "Burger", kernel.MoneyFromUnits(50), 20, "Snacks", "")
	require.NoError(t, err)
	pizza, err := menu.NewMenuItem(2, "Pizza", kernel.MoneyFromUnits(120), 2, "Main Course", "")
	require.NoError(t, err)

	f.catalog.On("Get", mock.Anything, menu.ItemID(1)).Return(burger, nil)
	f.catalog.On("Get", mock.Anything, menu.ItemID(2)).Return(pizza, nil)
	f.catalog.On("Get", mock.Anything, mock.Anything).Return(nil, errs.NewObjectNotFoundError("menu item", 0))

	f.menu.On("Handle", mock.Anything, mock.Anything).Return([]queries.MenuItemView{
		{ID: 1, Name: "Burger", Price: kernel.MoneyFromUnits(50), Stock: 20, Category: "Snacks"},
		{ID: 2, Name: "Pizza", Price: kernel.MoneyFromUnits(120), Stock: 2, Category: "Main Course"},
	}, nil).Maybe()

	return f
}

// run feeds script to a fresh till, one answer per line, and returns the
// screen output.
func (f *fixture) run(t *testing.T, script ...string) string {
	t.Helper()

	carts, err := shopping.NewService(f.sessions, f.catalog)
	require.NoError(t, err)
	pricing, err := newPricing()
	require.NoError(t, err)
	processor, err := payment.NewProcessor(payment.DefaultConfig())
	require.NoError(t, err)
	service, err := checkout.NewService(f.sessions, pricing, processor, f.ledger, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	till, err := console.NewTill(console.Dependencies{
		Menu:     f.menu,
		Carts:    carts,
		Checkout: service,
		Revenue:  f.revenue,
		History:  f.history,
	}, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	require.NoError(t, err)

	require.NoError(t, till.Run(context.Background()))
	return out.String()
}

func TestTill_CashBill(t *testing.T) {
	f := newFixture(t)
	f.ledger.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CommitOrderCommand) bool {
		return cmd.Customer().Name() == "Asha Rao" &&
			cmd.Contact().String() == "9876543210" &&
			cmd.Bill().GrandTotal().String() == "105.00" &&
			cmd.Settlement().Method() == order.Cash
	})).Return(order.ID(1001), nil).Once()

	out := f.run(t,
		"2", "1", "2", "n",
		"5", "Asha 9", "Asha Rao", "98765", "9876543210", "no",
		"3", "1", "50", "200",
		"4",
		"8",
	)

	assert.Contains(t, out, "CANTEEN MENU")
	assert.Contains(t, out, "Item added")
	assert.Contains(t, out, "Invalid name. Please use characters only.")
	assert.Contains(t, out, "Mobile number must be exactly 10 digits")
	assert.Contains(t, out, "Invalid choice. Enter 1 for Cash or 2 for Online/UPI.")
	assert.Contains(t, out, "Insufficient cash! Need 55.00 more.")
	assert.Contains(t, out, "FINAL BILL")
	assert.Contains(t, out, "1001")
	assert.Contains(t, out, "105.00")
	assert.Contains(t, out, "95.00")
	assert.Contains(t, out, "Cart is empty!")
	assert.Contains(t, out, "Thank you!")
	f.ledger.AssertExpectations(t)
}

func TestTill_OnlineBillWithParcel(t *testing.T) {
	f := newFixture(t)
	f.ledger.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CommitOrderCommand) bool {
		return cmd.Settlement().Method() == order.Online && cmd.Bill().ParcelFee().String() == "20.00"
	})).Return(order.ID(7), nil).Once()

	out := f.run(t,
		"2", "1", "1", "n",
		"5", "Ravi", "9123456789", "yes",
		"2", "",
		"8",
	)

	assert.Contains(t, out, "SCAN & PAY via UPI")
	assert.Contains(t, out, "canteen@upi")
	assert.Contains(t, out, "Payment confirmed.")
	assert.Contains(t, out, "Online")
	assert.NotContains(t, out, "Change Given")
	f.ledger.AssertExpectations(t)
}

func TestTill_AddItemsRejections(t *testing.T) {
	f := newFixture(t)

	out := f.run(t,
		"2", "abc", "y", "9", "1", "y", "2", "0", "y", "2", "3", "n",
		"8",
	)

	assert.Equal(t, 2, strings.Count(out, "Invalid item ID"))
	assert.Contains(t, out, "Invalid quantity")
	assert.Contains(t, out, `insufficient stock: "Pizza"`)
	assert.NotContains(t, out, "Item added")
}

func TestTill_RemoveItem(t *testing.T) {
	f := newFixture(t)

	out := f.run(t,
		"3",
		"2", "1", "3", "n",
		"3", "fries", "1",
		"3", "BURGER", "2",
		"4",
		"3", "burger", "5",
		"4",
		"8",
	)

	assert.Contains(t, out, "Cart empty")
	assert.Contains(t, out, "Item not found")
	assert.Equal(t, 2, strings.Count(out, "Cart updated"))
	assert.Contains(t, out, "52.50")
	assert.Contains(t, out, "Cart is empty!")
}

func TestTill_EmptyCartBill(t *testing.T) {
	f := newFixture(t)

	out := f.run(t, "5", "8")

	assert.Contains(t, out, "Cart empty")
	f.ledger.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestTill_PaymentAbortedByEndOfInput(t *testing.T) {
	f := newFixture(t)

	out := f.run(t, "2", "1", "1", "n", "5", "Asha Rao", "9876543210", "no", "1")

	assert.Contains(t, out, "Bill generation aborted")
	assert.Contains(t, out, "Thank you!")
	f.ledger.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)

	_, err := f.sessions.Start()
	require.NoError(t, err)
	assert.Equal(t, 1, f.sessions.Len(), "the till session is ended on exit")
}

func TestTill_StockRanOutAtCommit(t *testing.T) {
	f := newFixture(t)
	f.ledger.On("Handle", mock.Anything, mock.Anything).
		Return(order.ID(0), errs.NewInsufficientStockError(int64(2), "Pizza", 2, 1)).Once()

	out := f.run(t, "2", "2", "2", "n", "5", "Asha Rao", "9876543210", "no", "1", "500", "4", "8")

	assert.Contains(t, out, "The cart was kept.")
	assert.NotContains(t, out, "FINAL BILL")
	assert.Contains(t, out, "Pizza")
}

func TestTill_ShowRevenue(t *testing.T) {
	f := newFixture(t)
	f.revenue.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetRevenueReportQuery) bool {
		return q.Since().IsZero()
	})).Return(queries.RevenueReport{
		TotalRevenue:  kernel.MustParseMoney("336.00"),
		OrderCount:    2,
		AverageTicket: kernel.MustParseMoney("168.00"),
		TopSellers: []queries.TopSeller{
			{MenuItemID: 1, Name: "Burger", Quantity: 4, Revenue: kernel.MoneyFromUnits(200)},
		},
	}, nil).Once()

	out := f.run(t, "6", "8")

	assert.Contains(t, out, "Total Revenue: 336.00")
	assert.Contains(t, out, "Orders: 2, average ticket: 168.00")
	assert.Contains(t, out, "Burger")
}

func TestTill_SearchHistory(t *testing.T) {
	f := newFixture(t)
	placed := time.Date(2025, 3, 4, 12, 30, 0, 0, time.Local)
	f.history.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderSummary{
		{ID: 1001, CreatedAt: placed, GrandTotal: kernel.MoneyFromUnits(105), Status: order.Completed},
	}, nil).Once()
	f.history.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderSummary{}, nil).Once()

	out := f.run(t, "7", "9876543210", "7", "9000000000", "7", "12ab", "8")

	assert.Contains(t, out, "Orders for Mobile: 9876543210")
	assert.Contains(t, out, "04-03-2025 12:30")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "No orders found for this mobile number.")
	assert.Contains(t, out, "mobile number must be exactly 10 digits")
}

func TestTill_InternalErrorKeepsRunning(t *testing.T) {
	f := newFixture(t)
	f.revenue.On("Handle", mock.Anything, mock.Anything).
		Return(queries.RevenueReport{}, errors.New("connection reset")).Once()

	out := f.run(t, "6", "9", "8")

	assert.Contains(t, out, "Something went wrong, please try again.")
	assert.NotContains(t, out, "connection reset")
	assert.Contains(t, out, "Invalid choice")
}

func TestTill_CancelledContext(t *testing.T) {
	f := newFixture(t)
	carts, err := shopping.NewService(f.sessions, f.catalog)
	require.NoError(t, err)

	till, err := console.NewTill(console.Dependencies{
		Menu:     f.menu,
		Carts:    carts,
		Checkout: &checkout.Service{},
		Revenue:  f.revenue,
		History:  f.history,
	}, strings.NewReader("1\n"), &bytes.Buffer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, till.Run(ctx), context.Canceled)
}

func TestNewTill_RequiresDependencies(t *testing.T) {
	_, err := console.NewTill(console.Dependencies{}, strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, err, errs.ErrValidation)
}
