package queries_test

import (
	"context"
	"time"

	"canteen/internal/adapters/out/postgres/pgtest"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/order"
)

func (suite *QueriesIntegrationTestSuite) TestRevenueReport_ExcludesCancelled() {
	suite.place("9876543210", nil, 0, burgers(2))
	suite.place("9876543210", nil, 1, coffees(3), order.Completed)
	suite.place("9876543210", nil, 2, burgers(10), order.Cancelled)

	query, err := queries.NewGetRevenueReportQuery(time.Time{}, 0)
	suite.Require().NoError(err)

	report, err := queries.NewGetRevenueReportQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("220.00", report.TotalRevenue.String())
	suite.Equal(2, report.OrderCount)
	suite.Equal("110.00", report.AverageTicket.String())
	suite.Require().Len(report.TopSellers, 2)
	suite.Equal(pgtest.ColdCoffee, report.TopSellers[0].MenuItemID)
	suite.Equal(3, report.TopSellers[0].Quantity)
	suite.Equal("120.00", report.TopSellers[0].Revenue.String())
	suite.Equal("Veg Burger", report.TopSellers[1].Name)
}

func (suite *QueriesIntegrationTestSuite) TestRevenueReport_Since() {
	suite.place("9876543210", nil, 0, burgers(1))
	suite.place("9876543210", nil, 60, coffees(1))

	query, err := queries.NewGetRevenueReportQuery(suite.base.Add(30*time.Minute), 1)
	suite.Require().NoError(err)

	report, err := queries.NewGetRevenueReportQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("40.00", report.TotalRevenue.String())
	suite.Equal(1, report.OrderCount)
	suite.Len(report.TopSellers, 1)
}

func (suite *QueriesIntegrationTestSuite) TestRevenueReport_NoOrders() {
	query, err := queries.NewGetRevenueReportQuery(time.Time{}, 0)
	suite.Require().NoError(err)

	report, err := queries.NewGetRevenueReportQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(report.TotalRevenue.IsZero())
	suite.Zero(report.OrderCount)
	suite.True(report.AverageTicket.IsZero())
	suite.Empty(report.TopSellers)
}
