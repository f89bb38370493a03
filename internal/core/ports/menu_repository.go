// Package ports defines the contracts between the canteen core and its
// infrastructure: repositories, the unit of work, the event publisher and
// the session cart store. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"canteen/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
type MenuRepository interface {
	// NextID allocates the id for a new item from the catalog sequence.
	NextID(ctx context.Context) (menu.ItemID, error)

	// Add persists a new item.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists the item's mutable state (its stock).
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves an item by id without locking.
	// Returns *errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id menu.ItemID) (*menu.MenuItem, error)

	// GetForUpdate retrieves an item and locks its row until the surrounding
	// transaction ends. Concurrent stock withdrawals for the same item
	// serialize on this lock.
	//
	// Example:
	//   item, err := repo.GetForUpdate(ctx, line.ItemID())
	//   if err != nil {
	//       return err
	//   }
	//   if err := item.Withdraw(line.Quantity()); err != nil {
	//       return err // insufficient stock, transaction rolls back
	//   }
	//   err = repo.Update(ctx, item)
	GetForUpdate(ctx context.Context, id menu.ItemID) (*menu.MenuItem, error)
}
