package queries_test

import (
	"context"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/order"
)

func (suite *QueriesIntegrationTestSuite) TestPendingFeedback_OnlyCompletedUnratedOwnOrders() {
	rated := suite.place("9876543210", userID("stu-1"), 0, burgers(1), order.Completed)
	pending := suite.place("9876543210", userID("stu-1"), 1, coffees(1), order.Completed)
	suite.place("9876543210", userID("stu-1"), 2, burgers(1), order.Preparing)
	suite.place("9876543210", userID("stu-2"), 3, burgers(1), order.Completed)
	suite.rate(rated, userID("stu-1"), 4, "", 10)

	query, err := queries.NewGetPendingFeedbackQuery("stu-1")
	suite.Require().NoError(err)

	orders, err := queries.NewGetPendingFeedbackQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Equal(pending.ID(), orders[0].ID)
}
