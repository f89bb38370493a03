package queries

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads the catalog ordered by category, then id.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		ID          int64
		Name        string
		Price       decimal.Decimal
		Stock       int
		Category    string
		Description string
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price, stock, category, description
		FROM menu_items
		WHERE ? = '' OR lower(category) = lower(?)
		ORDER BY category, id
	`, query.Category(), query.Category()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]MenuItemView, 0, len(rows))
	for _, r := range rows {
		price, err := kernel.NewMoney(r.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, MenuItemView{
			ID:          menu.ItemID(r.ID),
			Name:        r.Name,
			Price:       price,
			Stock:       r.Stock,
			Category:    r.Category,
			Description: r.Description,
		})
	}

	return items, nil
}
