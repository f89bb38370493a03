package commands

import (
	"context"
	"maps"
	"slices"

	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
)

// CommitOrderCommandHandler is the order ledger. It turns a paid cart into a
// stored order in a single transaction:
//
//  1. lock every referenced menu item, in ascending id order
//  2. withdraw the ordered quantities (insufficient stock aborts everything)
//  3. allocate the next order id
//  4. insert the order and its items
//  5. commit
//
// Locking in a fixed order keeps two checkouts that share items from
// deadlocking. Any failure rolls the whole transaction back, so no order
// without stock movement and no stock movement without an order is ever
// visible.
//
// Example:
//
//	handler := NewCommitOrderCommandHandler(uowFactory, time.Now)
//	id, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // nothing was stored; the cart can be adjusted and retried
//	}
type CommitOrderCommandHandler struct {
	uowFactory LedgerUoWFactory
	clock      Clock
}

// NewCommitOrderCommandHandler creates the ledger handler.
// A nil clock means time.Now.
func NewCommitOrderCommandHandler(uowFactory LedgerUoWFactory, clock Clock) CommitOrderCommandHandler {
	return CommitOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle commits the order and returns its id.
func (h *CommitOrderCommandHandler) Handle(ctx context.Context, cmd CommitOrderCommand) (order.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))
	wanted := make(map[menu.ItemID]int, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(line.ItemID(), line.Name(), line.UnitPrice(), line.Quantity())
		if err != nil {
			return 0, err
		}
		items = append(items, item)
		wanted[line.ItemID()] += line.Quantity()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	for _, id := range slices.Sorted(maps.Keys(wanted)) {
		item, err := menuRepo.GetForUpdate(ctx, id)
		if err != nil {
			return 0, err
		}
		if err = item.Withdraw(wanted[id]); err != nil {
			return 0, err
		}
		if err = menuRepo.Update(ctx, item); err != nil {
			return 0, err
		}
	}

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	aggregate, err := order.NewOrder(id, cmd.Customer(), cmd.Contact(), items, cmd.Bill(), cmd.Settlement(),
		h.clock.now())
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
