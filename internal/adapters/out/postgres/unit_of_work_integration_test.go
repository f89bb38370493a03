package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgresadapter "canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/pgtest"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// recordingPublisher keeps every event it is asked to publish.
type recordingPublisher struct {
	mu     sync.Mutex
	events []order.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...order.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.EventName())
	}
	return names
}

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg        *pgtest.Database
	publisher *recordingPublisher
	factory   ports.UnitOfWorkFactory
	now       time.Time
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset(context.Background()))
	suite.publisher = &recordingPublisher{}
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.pg.DB, suite.publisher)
}

func (suite *UnitOfWorkIntegrationTestSuite) placeOrder(uow ports.UnitOfWork) *order.Order {
	ctx := context.Background()

	id, err := uow.OrderRepository().NextID(ctx)
	suite.Require().NoError(err)

	o, err := pgtest.NewOrder(id, "Meera Iyer", "9988776655", nil, suite.now,
		pgtest.Line{ItemID: pgtest.MargheritaPizza, Name: "Margherita Pizza", Price: 120, Quantity: 1},
	)
	suite.Require().NoError(err)

	item, err := uow.MenuRepository().GetForUpdate(ctx, pgtest.MargheritaPizza)
	suite.Require().NoError(err)
	suite.Require().NoError(item.Withdraw(1))
	suite.Require().NoError(uow.MenuRepository().Update(ctx, item))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.MenuRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.FeedbackRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx), "rollback after commit is a no-op")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	err := suite.factory.Create().Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAndPublishes() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.placeOrder(uow)
	suite.Empty(suite.publisher.names(), "nothing is published before commit")

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]string{"order.placed"}, suite.publisher.names())
	suite.Empty(o.DomainEvents())

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), loaded.ID())

	pizza, err := suite.factory.Create().MenuRepository().Get(ctx, pgtest.MargheritaPizza)
	suite.Require().NoError(err)
	suite.Equal(49, pizza.Stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.placeOrder(uow)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Empty(suite.publisher.names())

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err)

	pizza, err := suite.factory.Create().MenuRepository().Get(ctx, pgtest.MargheritaPizza)
	suite.Require().NoError(err)
	suite.Equal(50, pizza.Stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStatusChange_PublishesOnce() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := suite.placeOrder(uow)
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(order.Preparing, suite.now))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]string{"order.placed", "order.status_changed"}, suite.publisher.names())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPublishFailure_DoesNotUndoCommit() {
	ctx := context.Background()
	suite.publisher.err = errors.New("broker down")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := suite.placeOrder(uow)

	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
