package queries_test

import (
	"context"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/order"
)

func (suite *QueriesIntegrationTestSuite) TestActiveOrders_OldestFirstWithItems() {
	received := suite.place("9876543210", nil, 0, burgers(1))
	preparing := suite.place("9876543210", nil, 1, coffees(2), order.Preparing)
	ready := suite.place("9876543210", nil, 2, burgers(3), order.Preparing, order.Ready)
	suite.place("9876543210", nil, 3, burgers(1), order.Completed)
	suite.place("9876543210", nil, 4, burgers(1), order.Cancelled)

	active, err := queries.NewGetActiveOrdersQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(active, 3)
	suite.Equal(received.ID(), active[0].ID)
	suite.Equal(preparing.ID(), active[1].ID)
	suite.Equal(ready.ID(), active[2].ID)
	suite.Equal(order.Ready, active[2].Status)
	suite.Require().Len(active[1].Items, 1)
	suite.Equal(2, active[1].Items[0].Quantity)
}

func (suite *QueriesIntegrationTestSuite) TestActiveOrders_EmptyKitchen() {
	suite.place("9876543210", nil, 0, burgers(1), order.Completed)

	active, err := queries.NewGetActiveOrdersQueryHandler(suite.pg.DB).
		Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(active)
	suite.Empty(active)
}

func (suite *QueriesIntegrationTestSuite) TestActiveOrders_CancelledContext() {
	suite.place("9876543210", nil, 0, burgers(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	active, err := queries.NewGetActiveOrdersQueryHandler(suite.pg.DB).Handle(ctx, queries.NewGetActiveOrdersQuery())

	suite.Require().Error(err)
	suite.Nil(active)
}
