package http_test

import (
	"context"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockMenuReader struct{ mock.Mock }

func (m *MockMenuReader) Handle(ctx context.Context, q queries.GetMenuQuery) ([]queries.MenuItemView, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]queries.MenuItemView)
	return v, args.Error(1)
}

type MockMenuItemAdder struct{ mock.Mock }

func (m *MockMenuItemAdder) Handle(ctx context.Context, cmd commands.AddMenuItemCommand) (menu.ItemID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(menu.ItemID), args.Error(1)
}

type MockMenuRestocker struct{ mock.Mock }

func (m *MockMenuRestocker) Handle(ctx context.Context, cmd commands.RestockMenuItemCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderStatusSetter struct{ mock.Mock }

func (m *MockOrderStatusSetter) Handle(ctx context.Context, cmd commands.SetOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockFeedbackSubmitter struct{ mock.Mock }

func (m *MockFeedbackSubmitter) Handle(ctx context.Context, cmd commands.SubmitFeedbackCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderHistoryReader struct{ mock.Mock }

func (m *MockOrderHistoryReader) Handle(ctx context.Context, q queries.GetOrderHistoryQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]queries.OrderSummary)
	return v, args.Error(1)
}

type MockOrderDetailsReader struct{ mock.Mock }

func (m *MockOrderDetailsReader) Handle(ctx context.Context, q queries.GetOrderDetailsQuery) (queries.OrderDetails, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.OrderDetails), args.Error(1)
}

type MockActiveOrdersReader struct{ mock.Mock }

func (m *MockActiveOrdersReader) Handle(ctx context.Context, q queries.GetActiveOrdersQuery) ([]queries.OrderDetails, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]queries.OrderDetails)
	return v, args.Error(1)
}

type MockRevenueReportReader struct{ mock.Mock }

func (m *MockRevenueReportReader) Handle(ctx context.Context, q queries.GetRevenueReportQuery) (queries.RevenueReport, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.RevenueReport), args.Error(1)
}

type MockFeedbackReader struct{ mock.Mock }

func (m *MockFeedbackReader) Handle(ctx context.Context, q queries.GetFeedbacksQuery) ([]queries.FeedbackView, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]queries.FeedbackView)
	return v, args.Error(1)
}

type MockPendingFeedbackReader struct{ mock.Mock }

func (m *MockPendingFeedbackReader) Handle(
	ctx context.Context,
	q queries.GetPendingFeedbackQuery,
) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]queries.OrderSummary)
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
