package queries_test

import (
	"context"

	"canteen/internal/core/application/usecases/queries"
)

func (suite *QueriesIntegrationTestSuite) TestGetMenu_ReturnsSeededCatalog() {
	handler := queries.NewGetMenuQueryHandler(suite.pg.DB)

	items, err := handler.Handle(context.Background(), queries.NewGetMenuQuery(""))

	suite.Require().NoError(err)
	suite.Require().Len(items, 4)

	// ordered by category, then id
	suite.Equal("Cold Coffee", items[0].Name)
	suite.Equal("Margherita Pizza", items[1].Name)
	suite.Equal("Veg Burger", items[2].Name)
	suite.Equal("French Fries", items[3].Name)
	suite.Equal("120.00", items[1].Price.String())
	suite.True(items[0].Available())
}

func (suite *QueriesIntegrationTestSuite) TestGetMenu_FiltersByCategoryIgnoringCase() {
	handler := queries.NewGetMenuQueryHandler(suite.pg.DB)

	items, err := handler.Handle(context.Background(), queries.NewGetMenuQuery("snacks"))

	suite.Require().NoError(err)
	suite.Len(items, 2)
	for _, item := range items {
		suite.Equal("Snacks", item.Category)
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetMenu_OutOfStockItemIsListedButUnavailable() {
	suite.Require().NoError(suite.pg.DB.Exec("UPDATE menu_items SET stock = 0 WHERE name = 'Cold Coffee'").Error)
	handler := queries.NewGetMenuQueryHandler(suite.pg.DB)

	items, err := handler.Handle(context.Background(), queries.NewGetMenuQuery("Beverages"))

	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.False(items[0].Available())
}

func (suite *QueriesIntegrationTestSuite) TestGetMenu_NotConstructed() {
	handler := queries.NewGetMenuQueryHandler(suite.pg.DB)

	_, err := handler.Handle(context.Background(), queries.GetMenuQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetMenuQueryIsNotConstructed)
}
