// Package postgres provides the GORM-based Unit of Work and the connection
// helpers used by the ledger.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it run inside that transaction once Begin has been called. Order
// aggregates written through it are tracked, and their domain events are
// handed to the EventPublisher only after a successful Commit, so a rolled
// back checkout never announces an order.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	item, err := uow.MenuRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// ... withdraw stock, add the order ...
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork is single-goroutine. Concurrent operations create their
// own instances from the factory.
package postgres

import (
	"context"
	"log/slog"

	"canteen/internal/adapters/out/postgres/feedbackrepo"
	"canteen/internal/adapters/out/postgres/menurepo"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"gorm.io/gorm"
)

// eventSource is an aggregate that collects domain events.
type eventSource interface {
	DomainEvents() []order.DomainEvent
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates the factory. A nil publisher drops events.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    slog.Default().With("component", "unit_of_work"),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// GormUnitOfWork coordinates one transaction and the aggregates it touched.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
	tracked   []eventSource
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the transaction, then publishes the events collected from
// tracked aggregates. A publish failure is logged and does not undo the
// commit.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.tracked = nil
		return err
	}

	uow.publish(ctx)
	return nil
}

// Rollback discards the transaction. Without an open transaction, for
// example after Commit, it does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.tracked = nil
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) FeedbackRepository() ports.FeedbackRepository {
	return feedbackrepo.NewGormFeedbackRepository(uow.conn())
}

// TrackAggregate registers an aggregate written in this unit of work.
// Aggregates that carry no domain events are ignored.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	source, ok := aggregate.(eventSource)
	if !ok {
		return
	}
	for _, t := range uow.tracked {
		if t == source {
			return
		}
	}
	uow.tracked = append(uow.tracked, source)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publish(ctx context.Context) {
	tracked := uow.tracked
	uow.tracked = nil

	var events []order.DomainEvent
	for _, source := range tracked {
		events = append(events, source.DomainEvents()...)
		source.ClearDomainEvents()
	}

	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.WarnContext(ctx, "failed to publish domain events",
			"count", len(events),
			"error", err,
		)
	}
}
