package queries_test

import (
	"context"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"
)

func (suite *QueriesIntegrationTestSuite) TestFeedbacks_NewestFirst() {
	older := suite.place("9876543210", userID("stu-1"), 0, burgers(1), order.Completed)
	newer := suite.place("9876543210", nil, 1, coffees(1), order.Completed)
	suite.rate(older, userID("stu-1"), 3, "Burger was cold", 30)
	suite.rate(newer, nil, 5, "", 40)

	query, err := queries.NewGetFeedbacksQuery(0)
	suite.Require().NoError(err)

	feedbacks, err := queries.NewGetFeedbacksQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(feedbacks, 2)
	suite.Equal(newer.ID(), feedbacks[0].OrderID)
	suite.Equal(5, feedbacks[0].Rating)
	suite.Nil(feedbacks[0].UserID)
	suite.Equal("Burger was cold", feedbacks[1].Comment)
	suite.Equal("Test Customer", feedbacks[1].CustomerName)
	suite.Require().NotNil(feedbacks[1].UserID)
	suite.Equal(user.ID("stu-1"), *feedbacks[1].UserID)
}

func (suite *QueriesIntegrationTestSuite) TestFeedbacks_Limit() {
	for i := range 3 {
		o := suite.place("9876543210", nil, i, burgers(1), order.Completed)
		suite.rate(o, nil, 4, "", 10+i)
	}

	query, err := queries.NewGetFeedbacksQuery(2)
	suite.Require().NoError(err)

	feedbacks, err := queries.NewGetFeedbacksQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(feedbacks, 2)
}
