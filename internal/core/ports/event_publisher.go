package ports

import (
	"context"

	"canteen/internal/core/domain/model/order"
)

// EventPublisher delivers committed order events to other systems
// (the kitchen display, notifications). Publishing happens after the
// transaction commits; a failed publish never undoes an order.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.DomainEvent) error
}
