package queries_test

import (
	"context"

	"canteen/internal/adapters/out/postgres/pgtest"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/pkg/errs"
)

func (suite *QueriesIntegrationTestSuite) TestOrderDetails_IncludesBillAndItems() {
	placed := suite.place("9876543210", nil, 0, []pgtest.Line{
		{ItemID: pgtest.VegBurger, Name: "Veg Burger", Price: 50, Quantity: 2},
		{ItemID: pgtest.FrenchFries, Name: "French Fries", Price: 60, Quantity: 1},
	})

	query, err := queries.NewGetOrderDetailsQuery(placed.ID())
	suite.Require().NoError(err)

	details, err := queries.NewGetOrderDetailsQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(placed.ID(), details.ID)
	suite.Equal("160.00", details.Subtotal.String())
	suite.Equal("160.00", details.GrandTotal.String())
	suite.True(details.Change.IsZero())
	suite.Require().Len(details.Items, 2)
	suite.Equal("Veg Burger", details.Items[0].Name)
	suite.Equal("100.00", details.Items[0].Total.String())
	suite.Equal(pgtest.FrenchFries, details.Items[1].MenuItemID)
}

func (suite *QueriesIntegrationTestSuite) TestOrderDetails_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetOrderDetailsQuery(4242)
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderDetailsQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
