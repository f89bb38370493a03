package ports

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// NextID allocates the next sequential order id.
	// Allocation happens inside the ledger transaction; ids of rolled back
	// orders are skipped, never reused.
	NextID(ctx context.Context) (order.ID, error)

	// Add persists a new order together with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order's status. Money fields and items are
	// immutable and are never written again.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns *errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the
	// surrounding transaction ends, so concurrent status changes serialize.
	GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error)
}
