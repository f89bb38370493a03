package commands_test

import (
	"context"
	"testing"
	"time"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/feedback"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) NextID(ctx context.Context) (menu.ItemID, error) {
	args := m.Called(ctx)
	return args.Get(0).(menu.ItemID), args.Error(1)
}

func (m *MockMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id menu.ItemID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

func (m *MockMenuRepository) GetForUpdate(ctx context.Context, id menu.ItemID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*menu.MenuItem)
	return item, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (order.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(order.ID), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockFeedbackRepository struct{ mock.Mock }

func (m *MockFeedbackRepository) Add(ctx context.Context, fb *feedback.Feedback) error {
	return m.Called(ctx, fb).Error(0)
}

func (m *MockFeedbackRepository) ExistsForOrder(ctx context.Context, id order.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work flavour of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) FeedbackRepository() ports.FeedbackRepository {
	return m.Called().Get(0).(ports.FeedbackRepository)
}

type ledgerFactory struct{ uow *MockUoW }

func (f ledgerFactory) Create() commands.LedgerUoW { return f.uow }

type orderFactory struct{ uow *MockUoW }

func (f orderFactory) Create() commands.OrderUoW { return f.uow }

type feedbackFactory struct{ uow *MockUoW }

func (f feedbackFactory) Create() commands.FeedbackUoW { return f.uow }

type menuFactory struct{ uow *MockUoW }

func (f menuFactory) Create() commands.MenuUoW { return f.uow }

func newMenuItem(t *testing.T, id menu.ItemID, name string, price int64, stock int) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(id, name, kernel.MoneyFromUnits(price), stock, "", "")
	require.NoError(t, err)
	return item
}

func orderWithStatus(t *testing.T, id order.ID, status order.Status) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Asha", nil)
	require.NoError(t, err)
	contact, err := kernel.NewContactNumber("9876543210")
	require.NoError(t, err)
	item, err := order.NewItem(1, "Veg Burger", kernel.MoneyFromUnits(50), 1)
	require.NoError(t, err)
	bill, err := order.NewBill(kernel.MoneyFromUnits(50), kernel.Zero, kernel.MoneyFromUnits(3), kernel.Zero)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, customer, contact, []order.Item{item}, bill,
		order.NewOnlineSettlement(), status, fixedNow)
	require.NoError(t, err)
	return o
}
