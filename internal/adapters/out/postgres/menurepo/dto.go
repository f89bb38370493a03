// Package menurepo persists the menu catalog.
package menurepo

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// MenuItemDTO is the menu_items row.
type MenuItemDTO struct {
	ID          int64           `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null"`
	Category    string          `gorm:"not null"`
	Description string          `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          int64(item.ID()),
		Name:        item.Name(),
		Price:       item.Price().Decimal(),
		Stock:       item.Stock(),
		Category:    item.Category(),
		Description: item.Description(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return menu.RestoreMenuItem(menu.ItemID(dto.ID), dto.Name, price, dto.Stock, dto.Category, dto.Description)
}
