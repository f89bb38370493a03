package commands

import (
	"context"
)

// SetOrderStatusCommandHandler applies a kitchen status change.
// The order row is locked for the duration of the transaction, so two
// concurrent changes are applied one after the other and the second one is
// checked against the result of the first.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock Clock) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, applies the transition and persists the status.
// An illegal transition returns *errs.InvalidTransitionError and nothing is written.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), h.clock.now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
