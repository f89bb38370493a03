package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSweeper struct {
	mock.Mock
}

func (m *MockSweeper) Sweep(idle time.Duration) int {
	return m.Called(idle).Int(0)
}

type MockMenuReader struct {
	mock.Mock
}

func (m *MockMenuReader) Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.MenuItemView, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]queries.MenuItemView)
	return items, args.Error(1)
}

func testConfig() jobs.Config {
	return jobs.Config{
		SessionTTL:        30 * time.Minute,
		SweepSchedule:     "*/1 * * * * *",
		LowStockThreshold: 5,
		LowStockSchedule:  "0 * * * * *",
	}
}

func TestSessionSweepJob_Run(t *testing.T) {
	sweeper := &MockSweeper{}
	sweeper.On("Sweep", 30*time.Minute).Return(2).Once()

	job := jobs.NewSessionSweepJob(sweeper, 30*time.Minute, "* * * * * *", slog.Default())

	assert.Equal(t, 2, job.Run(context.Background()))
	sweeper.AssertExpectations(t)
}

func TestSessionSweepJob_RunsOnSchedule(t *testing.T) {
	sweeper := &MockSweeper{}
	swept := make(chan struct{}, 1)
	sweeper.On("Sweep", time.Minute).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	}).Return(0)

	job := jobs.NewSessionSweepJob(sweeper, time.Minute, "* * * * * *", slog.Default())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-swept:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run within 3s")
	}
}

func TestSessionSweepJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewSessionSweepJob(&MockSweeper{}, time.Minute, "not a schedule", slog.Default())
	require.Error(t, job.Start())
}

func TestLowStockJob_Run(t *testing.T) {
	menu := &MockMenuReader{}
	menu.On("Handle", mock.Anything, queries.NewGetMenuQuery("")).Return([]queries.MenuItemView{
		{ID: 1, Name: "Veg Burger", Price: kernel.MoneyFromUnits(50), Stock: 100},
		{ID: 2, Name: "Margherita Pizza", Price: kernel.MoneyFromUnits(120), Stock: 5},
		{ID: 3, Name: "Cold Coffee", Price: kernel.MoneyFromUnits(40), Stock: 0},
	}, nil).Once()

	job, err := jobs.NewLowStockJob(menu, 5, "0 * * * * *", slog.Default())
	require.NoError(t, err)

	low, err := job.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Margherita Pizza", low[0].Name)
	assert.Equal(t, "Cold Coffee", low[1].Name)
	menu.AssertExpectations(t)
}

func TestLowStockJob_RunPropagatesErrors(t *testing.T) {
	menu := &MockMenuReader{}
	menu.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	job, err := jobs.NewLowStockJob(menu, 5, "0 * * * * *", slog.Default())
	require.NoError(t, err)

	_, err = job.Run(context.Background())
	require.EqualError(t, err, "db down")
}

func TestJobManager_StartAndStop(t *testing.T) {
	sweeper := &MockSweeper{}
	sweeper.On("Sweep", mock.Anything).Return(0).Maybe()
	menu := &MockMenuReader{}
	menu.On("Handle", mock.Anything, mock.Anything).Return([]queries.MenuItemView{}, nil).Maybe()

	manager, err := jobs.NewJobManager(sweeper, menu, testConfig(), slog.Default())
	require.NoError(t, err)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	cfg := testConfig()
	cfg.LowStockSchedule = "bogus"

	sweeper := &MockSweeper{}
	sweeper.On("Sweep", mock.Anything).Return(0).Maybe()

	manager, err := jobs.NewJobManager(sweeper, &MockMenuReader{}, cfg, slog.Default())
	require.NoError(t, err)

	err = manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "low stock job")
}
