package order

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
)

// DomainEvent is something that happened to an order. Events are collected
// on the aggregate and published by the unit of work after the transaction
// that produced them commits.
type DomainEvent interface {
	EventName() string
	AggregateID() ID
	OccurredAt() time.Time
}

// PlacedEvent is raised when an order is committed.
type PlacedEvent struct {
	OrderID       ID
	CustomerName  string
	GrandTotal    kernel.Money
	PaymentMethod PaymentMethod
	ItemCount     int
	At            time.Time
}

func (e PlacedEvent) EventName() string     { return "order.placed" }
func (e PlacedEvent) AggregateID() ID       { return e.OrderID }
func (e PlacedEvent) OccurredAt() time.Time { return e.At }

// StatusChangedEvent is raised on every successful status transition.
type StatusChangedEvent struct {
	OrderID ID
	From    Status
	To      Status
	At      time.Time
}

func (e StatusChangedEvent) EventName() string     { return "order.status_changed" }
func (e StatusChangedEvent) AggregateID() ID       { return e.OrderID }
func (e StatusChangedEvent) OccurredAt() time.Time { return e.At }
