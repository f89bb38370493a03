package queries

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists the catalog for display, optionally narrowed to one
// category.
//
// Example:
//
//	query := NewGetMenuQuery("")
//	items, err := handler.Handle(ctx, query)
//	for _, item := range items {
//	    fmt.Printf("%d\t%-18s %s (%d left)\n", item.ID, item.Name, item.Price, item.Stock)
//	}
type GetMenuQuery struct {
	category string
	guard    guard.ConstructorGuard
}

// NewGetMenuQuery creates the query. An empty category lists everything.
func NewGetMenuQuery(category string) GetMenuQuery {
	return GetMenuQuery{category: strings.TrimSpace(category), guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

func (q GetMenuQuery) Category() string {
	return q.category
}

// MenuItemView is one catalog entry as shown to customers.
type MenuItemView struct {
	ID          menu.ItemID
	Name        string
	Price       kernel.Money
	Stock       int
	Category    string
	Description string
}

// Available reports whether at least one portion can be ordered.
func (v MenuItemView) Available() bool {
	return v.Stock > 0
}
