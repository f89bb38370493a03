package queries_test

import (
	"context"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/user"
)

func (suite *QueriesIntegrationTestSuite) TestOrderHistory_ByContact_NewestFirst() {
	first := suite.place("9876543210", nil, 0, burgers(1))
	suite.place("9000000000", nil, 5, burgers(2))
	third := suite.place("9876543210", nil, 10, coffees(1), order.Completed)

	contact, err := kernel.NewContactNumber("9876543210")
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderHistoryByContactQuery(contact)
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(third.ID(), history[0].ID)
	suite.Equal(order.Completed, history[0].Status)
	suite.Equal(first.ID(), history[1].ID)
	suite.Equal("50.00", history[1].GrandTotal.String())
	suite.Equal(order.Online, history[1].PaymentMethod)
}

func (suite *QueriesIntegrationTestSuite) TestOrderHistory_UnknownContact_IsEmpty() {
	suite.place("9876543210", nil, 0, burgers(1))

	contact, err := kernel.NewContactNumber("9111111111")
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderHistoryByContactQuery(contact)
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(history)
	suite.Empty(history)
}

func (suite *QueriesIntegrationTestSuite) TestOrderHistory_StudentSeesOwnOrders() {
	mine := suite.place("9876543210", userID("stu-1"), 0, burgers(1))
	suite.place("9876543210", userID("stu-2"), 1, burgers(1))
	suite.place("9876543210", nil, 2, burgers(1))

	query, err := queries.NewGetOrderHistoryForPrincipalQuery(user.Principal{ID: "stu-1", Role: user.Student})
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(mine.ID(), history[0].ID)
	suite.Require().NotNil(history[0].UserID)
	suite.Equal(user.ID("stu-1"), *history[0].UserID)
}

func (suite *QueriesIntegrationTestSuite) TestOrderHistory_StaffSeesEverything() {
	suite.place("9876543210", userID("stu-1"), 0, burgers(1))
	suite.place("9876543210", userID("stu-2"), 1, burgers(1))
	suite.place("9000000000", nil, 2, burgers(1))

	query, err := queries.NewGetOrderHistoryForPrincipalQuery(user.Principal{ID: "kitchen", Role: user.Staff})
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(history, 3)
}

func (suite *QueriesIntegrationTestSuite) TestOrderHistory_StudentByContact_SeesOnlyOwnOrders() {
	mine := suite.place("9876543210", userID("stu-1"), 0, burgers(1))
	suite.place("9876543210", userID("stu-2"), 1, burgers(1))
	suite.place("9876543210", nil, 2, burgers(1))
	suite.place("9000000000", userID("stu-1"), 3, burgers(1))

	contact, err := kernel.NewContactNumber("9876543210")
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderHistoryForPrincipalByContactQuery(
		user.Principal{ID: "stu-1", Role: user.Student}, contact)
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(mine.ID(), history[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestOrderHistory_StaffByContact_SeesEveryOrderForTheNumber() {
	suite.place("9876543210", userID("stu-1"), 0, burgers(1))
	suite.place("9876543210", nil, 1, burgers(1))
	suite.place("9000000000", nil, 2, burgers(1))

	contact, err := kernel.NewContactNumber("9876543210")
	suite.Require().NoError(err)
	query, err := queries.NewGetOrderHistoryForPrincipalByContactQuery(
		user.Principal{ID: "kitchen", Role: user.Staff}, contact)
	suite.Require().NoError(err)

	history, err := queries.NewGetOrderHistoryQueryHandler(suite.pg.DB).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(history, 2)
}
