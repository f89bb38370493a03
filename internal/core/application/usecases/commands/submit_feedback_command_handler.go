package commands

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/feedback"
	"canteen/internal/pkg/errs"
)

// SubmitFeedbackCommandHandler is the feedback gate. Feedback is accepted
// once per order, and only when the order exists and is Completed.
//
// The existence check gives a friendly answer in the common case; the unique
// index behind FeedbackRepository.Add settles concurrent submissions.
type SubmitFeedbackCommandHandler struct {
	uowFactory FeedbackUoWFactory
	clock      Clock
}

func NewSubmitFeedbackCommandHandler(uowFactory FeedbackUoWFactory, clock Clock) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle records the feedback or returns *errs.FeedbackNotAllowedError.
func (h *SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewFeedbackNotAllowedError(int64(cmd.OrderID()), "order does not exist")
	}
	if err != nil {
		return err
	}

	feedbackRepo := uow.FeedbackRepository()
	exists, err := feedbackRepo.ExistsForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewFeedbackNotAllowedError(int64(cmd.OrderID()), "feedback already submitted")
	}

	fb, err := feedback.NewFeedback(aggregate, cmd.UserID(), cmd.Rating(), cmd.Comment(), h.clock.now())
	if err != nil {
		return err
	}

	if err = feedbackRepo.Add(ctx, fb); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
