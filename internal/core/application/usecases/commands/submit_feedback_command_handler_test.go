package commands_test

import (
	"testing"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/feedback"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitFeedbackCommand(t *testing.T) {
	uid := user.ID("u-1")
	cmd, err := commands.NewSubmitFeedbackCommand(8, &uid, 4, "  tasty ")
	require.NoError(t, err)
	assert.Equal(t, "tasty", cmd.Comment())
	assert.Equal(t, 4, cmd.Rating())
	assert.Equal(t, uid, *cmd.UserID())

	for _, rating := range []int{0, 6} {
		_, err = commands.NewSubmitFeedbackCommand(8, nil, rating, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}

	_, err = commands.NewSubmitFeedbackCommand(0, nil, 3, "")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func feedbackUoW(t *testing.T) (*MockUoW, *MockOrderRepository, *MockFeedbackRepository) {
	t.Helper()
	orderRepo := new(MockOrderRepository)
	feedbackRepo := new(MockFeedbackRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo).Maybe()
	uow.On("FeedbackRepository").Return(feedbackRepo).Maybe()
	return uow, orderRepo, feedbackRepo
}

func TestSubmitFeedbackCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitFeedbackCommand(8, nil, 5, "great")
	uow, orderRepo, feedbackRepo := feedbackUoW(t)

	var stored *feedback.Feedback
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, order.ID(8)).Return(orderWithStatus(t, 8, order.Completed), nil).Once(),
		feedbackRepo.On("ExistsForOrder", ctx, order.ID(8)).Return(false, nil).Once(),
		feedbackRepo.On("Add", ctx, mock.AnythingOfType("*feedback.Feedback")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*feedback.Feedback) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewSubmitFeedbackCommandHandler(feedbackFactory{uow}, fixedClock)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, stored)
	assert.Equal(t, order.ID(8), stored.OrderID())
	assert.Equal(t, 5, stored.Rating())
	assert.Equal(t, fixedNow, stored.SubmittedAt())
	orderRepo.AssertExpectations(t)
	feedbackRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitFeedbackCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T, orderRepo *MockOrderRepository, feedbackRepo *MockFeedbackRepository)
		reason string
	}{
		{
			name: "order does not exist",
			setup: func(_ *testing.T, orderRepo *MockOrderRepository, _ *MockFeedbackRepository) {
				orderRepo.On("Get", mock.Anything, order.ID(8)).Return(nil, errs.NewObjectNotFoundError("order", 8))
			},
			reason: "order does not exist",
		},
		{
			name: "order not completed",
			setup: func(t *testing.T, orderRepo *MockOrderRepository, feedbackRepo *MockFeedbackRepository) {
				orderRepo.On("Get", mock.Anything, order.ID(8)).Return(orderWithStatus(t, 8, order.Ready), nil)
				feedbackRepo.On("ExistsForOrder", mock.Anything, order.ID(8)).Return(false, nil)
			},
			reason: "Ready",
		},
		{
			name: "feedback already submitted",
			setup: func(t *testing.T, orderRepo *MockOrderRepository, feedbackRepo *MockFeedbackRepository) {
				orderRepo.On("Get", mock.Anything, order.ID(8)).Return(orderWithStatus(t, 8, order.Completed), nil)
				feedbackRepo.On("ExistsForOrder", mock.Anything, order.ID(8)).Return(true, nil)
			},
			reason: "already submitted",
		},
		{
			name: "lost the race on insert",
			setup: func(t *testing.T, orderRepo *MockOrderRepository, feedbackRepo *MockFeedbackRepository) {
				orderRepo.On("Get", mock.Anything, order.ID(8)).Return(orderWithStatus(t, 8, order.Completed), nil)
				feedbackRepo.On("ExistsForOrder", mock.Anything, order.ID(8)).Return(false, nil)
				feedbackRepo.On("Add", mock.Anything, mock.Anything).
					Return(errs.NewFeedbackNotAllowedError(int64(8), "feedback already submitted"))
			},
			reason: "already submitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, _ := commands.NewSubmitFeedbackCommand(8, nil, 4, "")
			uow, orderRepo, feedbackRepo := feedbackUoW(t)
			uow.On("Begin", ctx).Return(nil)
			uow.On("Rollback", ctx).Return(nil).Once()
			tt.setup(t, orderRepo, feedbackRepo)

			h := commands.NewSubmitFeedbackCommandHandler(feedbackFactory{uow}, fixedClock)
			err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrFeedbackNotAllowed)
			assert.Contains(t, err.Error(), tt.reason)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			uow.AssertExpectations(t)
		})
	}
}
