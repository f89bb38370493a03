package cart

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart")

// Cart is the mutable order draft of one session.
//
// Invariants:
//   - at most one line per menu item
//   - every line has a positive quantity
//
// Example:
//
//	c, _ := cart.NewCart(kernel.NewUUID())
//	if err := c.Add(burger, 2); err != nil {
//	    return err
//	}
//	_ = c.Remove(burger.ID(), 1)
type Cart struct {
	id      kernel.UUID
	lines   []Line
	version uint64
	guard   guard.ConstructorGuard
}

// NewCart creates an empty cart for the session id.
func NewCart(id kernel.UUID) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Cart{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) ID() kernel.UUID {
	return c.id
}

// Version increases with every successful mutation.
func (c *Cart) Version() uint64 {
	return c.version
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Line returns the line for itemID, if the cart has one.
func (c *Cart) Line(itemID menu.ItemID) (Line, bool) {
	if i := c.indexOf(itemID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// LineByName finds a line by item name, ignoring case and surrounding spaces.
func (c *Cart) LineByName(name string) (Line, bool) {
	name = strings.TrimSpace(name)
	for _, l := range c.lines {
		if strings.EqualFold(l.name, name) {
			return l, true
		}
	}
	return Line{}, false
}

// Add puts qty portions of item into the cart. Adding an item that is already
// in the cart increases that line's quantity and keeps the price captured
// when the line was created.
//
// Returns:
//   - a validation error if qty is not positive
//   - *errs.InsufficientStockError if the merged quantity exceeds the
//     item's current stock; the cart is left unchanged
func (c *Cart) Add(item *menu.MenuItem, qty int) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}

	i := c.indexOf(item.ID())
	want := qty
	if i >= 0 {
		want += c.lines[i].quantity
	}
	if !item.HasStock(want) {
		return errs.NewInsufficientStockError(int64(item.ID()), item.Name(), want, item.Stock())
	}

	if i >= 0 {
		c.lines[i].quantity = want
	} else {
		line, err := NewLine(item.ID(), item.Name(), item.Price(), qty)
		if err != nil {
			return err
		}
		c.lines = append(c.lines, line)
	}
	c.version++
	return nil
}

// Remove takes qty portions of an item out of the cart. Removing as many
// portions as the line holds, or more, drops the line.
func (c *Cart) Remove(itemID menu.ItemID, qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", qty))
	}
	i := c.indexOf(itemID)
	if i < 0 {
		return errs.NewObjectNotFoundError("cart line", int64(itemID))
	}

	if qty >= c.lines[i].quantity {
		c.lines = slices.Delete(c.lines, i, i+1)
	} else {
		c.lines[i].quantity -= qty
	}
	c.version++
	return nil
}

// SetQuantity replaces the quantity of item's line, adding the line when
// missing. A quantity of zero removes the line.
func (c *Cart) SetQuantity(item *menu.MenuItem, qty int) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if qty < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 0, item.Stock())
	}

	i := c.indexOf(item.ID())
	if qty == 0 {
		if i < 0 {
			return nil
		}
		c.lines = slices.Delete(c.lines, i, i+1)
		c.version++
		return nil
	}
	if !item.HasStock(qty) {
		return errs.NewInsufficientStockError(int64(item.ID()), item.Name(), qty, item.Stock())
	}

	if i >= 0 {
		c.lines[i].quantity = qty
	} else {
		line, err := NewLine(item.ID(), item.Name(), item.Price(), qty)
		if err != nil {
			return err
		}
		c.lines = append(c.lines, line)
	}
	c.version++
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	if len(c.lines) == 0 {
		return
	}
	c.lines = nil
	c.version++
}

func (c *Cart) indexOf(itemID menu.ItemID) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.itemID == itemID })
}
