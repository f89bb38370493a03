package menu

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

// DefaultCategory is assigned when an item is added without a category.
const DefaultCategory = "General"

// MaxStock and MaxPrice are the largest values the catalog table can hold
// (INTEGER and NUMERIC(12,2) columns).
const MaxStock = math.MaxInt32

var MaxPrice = kernel.MustParseMoney("9999999999.99")

var (
	// ErrNameIsRequired is returned when an item is created with a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMenuItemIsNotConstructed is returned when using a MenuItem that did not come from a constructor.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem or RestoreMenuItem")
)

// ItemID identifies a menu item. Ids are allocated by the catalog storage
// and are always positive.
type ItemID int64

// Validate rejects zero and negative ids.
func (id ItemID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menu item id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// ValidateStock rejects a stock count outside [0, MaxStock].
func ValidateStock(stock int) error {
	if stock < 0 || stock > MaxStock {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, MaxStock)
	}
	return nil
}

// ValidatePrice rejects a price above MaxPrice.
func ValidatePrice(price kernel.Money) error {
	if !MaxPrice.GreaterThanOrEqual(price) {
		return errs.NewValueIsOutOfRangeError("price", price, kernel.Zero, MaxPrice)
	}
	return nil
}

// MenuItem is a dish or drink sold by the canteen, together with the number
// of portions that can still be sold.
//
// Invariants:
//   - name is not blank
//   - price is a non-negative amount (enforced by kernel.Money) up to MaxPrice
//   - stock is in [0, MaxStock]
//
// Example:
//
//	item, err := menu.NewMenuItem(1, "Veg Burger", kernel.MoneyFromUnits(50), 100, "Snacks", "")
//	if err != nil {
//	    return err
//	}
//	if err := item.Withdraw(2); err != nil {
//	    // errs.ErrInsufficientStock
//	}
type MenuItem struct {
	id          ItemID
	name        string
	price       kernel.Money
	stock       int
	category    string
	description string
	guard       guard.ConstructorGuard
}

// NewMenuItem creates a catalog entry. A blank category becomes DefaultCategory.
// Every invalid argument is reported, joined with errors.Join.
func NewMenuItem(
	id ItemID,
	name string,
	price kernel.Money,
	stock int,
	category string,
	description string,
) (*MenuItem, error) {
	item := &MenuItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		ValidatePrice(price),
		item.setStock(stock),
	); err != nil {
		return nil, err
	}

	item.price = price
	item.setCategory(category)
	item.description = strings.TrimSpace(description)

	return item, nil
}

// RestoreMenuItem rebuilds an item loaded from storage. It applies the same
// validation as NewMenuItem, so a corrupted row is reported instead of loaded.
func RestoreMenuItem(
	id ItemID,
	name string,
	price kernel.Money,
	stock int,
	category string,
	description string,
) (*MenuItem, error) {
	return NewMenuItem(id, name, price, stock, category, description)
}

// Validate reports whether the item was created through a constructor.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// IsEqual compares items by id.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id == other.id
}

func (m *MenuItem) ID() ItemID {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) Stock() int {
	return m.stock
}

func (m *MenuItem) Category() string {
	return m.category
}

func (m *MenuItem) Description() string {
	return m.description
}

// HasStock reports whether qty portions can be withdrawn right now.
func (m *MenuItem) HasStock(qty int) bool {
	return qty > 0 && qty <= m.stock
}

// Withdraw removes qty portions sold by an order.
//
// Returns:
//   - a validation error if qty is not positive
//   - *errs.InsufficientStockError if qty exceeds the current stock;
//     the stock is left unchanged
func (m *MenuItem) Withdraw(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, "stock")
	}
	if qty > m.stock {
		return errs.NewInsufficientStockError(int64(m.id), m.name, qty, m.stock)
	}
	m.stock -= qty
	return nil
}

// Restock adds qty delivered portions. The resulting stock may not exceed MaxStock.
func (m *MenuItem) Restock(qty int) error {
	if qty <= 0 || qty > MaxStock-m.stock {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, MaxStock-m.stock)
	}
	m.stock += qty
	return nil
}

// SetStock overwrites the stock count, e.g. after a stock-take.
func (m *MenuItem) SetStock(stock int) error {
	return m.setStock(stock)
}

func (m *MenuItem) setID(id ItemID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setStock(stock int) error {
	if err := ValidateStock(stock); err != nil {
		return err
	}
	m.stock = stock
	return nil
}

func (m *MenuItem) setCategory(category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	m.category = category
}
