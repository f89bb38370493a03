package cart_test

import (
	"testing"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, id menu.ItemID, name string, price int64, stock int) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(id, name, kernel.MoneyFromUnits(price), stock, "", "")
	require.NoError(t, err)
	return item
}

func newCart(t *testing.T) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	t.Run("should start empty", func(t *testing.T) {
		c := newCart(t)

		require.NoError(t, c.Validate())
		assert.True(t, c.IsEmpty())
		assert.Equal(t, uint64(0), c.Version())
	})

	t.Run("should require a session id", func(t *testing.T) {
		_, err := cart.NewCart(kernel.UUID{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestCart_Add(t *testing.T) {
	burger := newItem(t, 1, "Veg Burger", 50, 10)
	pizza := newItem(t, 2, "Margherita Pizza", 120, 5)

	t.Run("should keep insertion order and capture prices", func(t *testing.T) {
		c := newCart(t)

		require.NoError(t, c.Add(pizza, 1))
		require.NoError(t, c.Add(burger, 2))

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, menu.ItemID(2), lines[0].ItemID())
		assert.Equal(t, "Veg Burger", lines[1].Name())
		assert.Equal(t, "50.00", lines[1].UnitPrice().String())
		assert.Equal(t, "100.00", lines[1].Total().String())
		assert.Equal(t, uint64(2), c.Version())
	})

	t.Run("should merge quantities of the same item", func(t *testing.T) {
		c := newCart(t)

		require.NoError(t, c.Add(burger, 2))
		require.NoError(t, c.Add(burger, 3))

		line, ok := c.Line(burger.ID())
		require.True(t, ok)
		assert.Equal(t, 5, line.Quantity())
		assert.Len(t, c.Lines(), 1)
	})

	t.Run("should refuse more than the stock and leave the cart unchanged", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.Add(pizza, 4))

		err := c.Add(pizza, 2)

		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		line, _ := c.Line(pizza.ID())
		assert.Equal(t, 4, line.Quantity())
		assert.Equal(t, uint64(1), c.Version())
	})

	t.Run("should refuse non-positive quantities", func(t *testing.T) {
		c := newCart(t)

		require.ErrorIs(t, c.Add(burger, 0), errs.ErrValidation)
		require.ErrorIs(t, c.Add(burger, -2), errs.ErrValidation)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should refuse an unconstructed item", func(t *testing.T) {
		c := newCart(t)
		require.ErrorIs(t, c.Add(&menu.MenuItem{}, 1), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestCart_Remove(t *testing.T) {
	burger := newItem(t, 1, "Veg Burger", 50, 10)

	t.Run("should decrease the quantity", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.Add(burger, 3))

		require.NoError(t, c.Remove(burger.ID(), 1))

		line, ok := c.Line(burger.ID())
		require.True(t, ok)
		assert.Equal(t, 2, line.Quantity())
	})

	t.Run("should drop the line when removing all or more", func(t *testing.T) {
		c := newCart(t)
		require.NoError(t, c.Add(burger, 3))

		require.NoError(t, c.Remove(burger.ID(), 5))

		assert.True(t, c.IsEmpty())
	})

	t.Run("should report a missing line", func(t *testing.T) {
		c := newCart(t)
		require.ErrorIs(t, c.Remove(99, 1), errs.ErrObjectNotFound)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	burger := newItem(t, 1, "Veg Burger", 50, 10)

	c := newCart(t)
	require.NoError(t, c.SetQuantity(burger, 4))
	line, _ := c.Line(burger.ID())
	assert.Equal(t, 4, line.Quantity())

	require.NoError(t, c.SetQuantity(burger, 2))
	line, _ = c.Line(burger.ID())
	assert.Equal(t, 2, line.Quantity())

	require.ErrorIs(t, c.SetQuantity(burger, 11), errs.ErrInsufficientStock)
	require.ErrorIs(t, c.SetQuantity(burger, -1), errs.ErrValidation)

	require.NoError(t, c.SetQuantity(burger, 0))
	assert.True(t, c.IsEmpty())

	version := c.Version()
	require.NoError(t, c.SetQuantity(burger, 0))
	assert.Equal(t, version, c.Version())
}

func TestCart_LineByName(t *testing.T) {
	c := newCart(t)
	require.NoError(t, c.Add(newItem(t, 3, "Cold Coffee", 40, 80), 1))

	line, ok := c.LineByName("  cold coffee ")
	require.True(t, ok)
	assert.Equal(t, menu.ItemID(3), line.ItemID())

	_, ok = c.LineByName("tea")
	assert.False(t, ok)
}

func TestCart_Clear(t *testing.T) {
	c := newCart(t)
	require.NoError(t, c.Add(newItem(t, 1, "Veg Burger", 50, 10), 1))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, uint64(2), c.Version())
}

func TestCart_LinesIsACopy(t *testing.T) {
	c := newCart(t)
	require.NoError(t, c.Add(newItem(t, 1, "Veg Burger", 50, 10), 1))

	lines := c.Lines()
	lines[0] = cart.Line{}

	line, ok := c.Line(1)
	require.True(t, ok)
	require.NoError(t, line.Validate())
}

func TestNewLine(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		line, err := cart.NewLine(1, "Veg Burger", kernel.MoneyFromUnits(50), 2)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, "100.00", line.Total().String())
	})

	t.Run("invalid arguments are all reported", func(t *testing.T) {
		_, err := cart.NewLine(0, "", kernel.Zero, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.ErrorIs(t, cart.Line{}.Validate(), cart.ErrLineIsNotConstructed)
	})
}
