package guard_test

import (
	"errors"
	"testing"

	"canteen/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("menu item not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardEmbedded shows the guard inside a domain-like struct.
func TestConstructorGuardEmbedded(t *testing.T) {
	errLineNotConstructed := errors.New("Line must be created via newLine")

	type line struct {
		quantity int
		guard    guard.ConstructorGuard
	}

	newLine := func(quantity int) (line, error) {
		if quantity <= 0 {
			return line{}, errors.New("quantity must be positive")
		}
		return line{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		l, err := newLine(2)

		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLineNotConstructed))
		assert.Equal(t, 2, l.quantity)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var l line

		assert.Equal(t, errLineNotConstructed, l.guard.Validate(errLineNotConstructed))
	})

	t.Run("constructor_rejects_invalid_input", func(t *testing.T) {
		_, err := newLine(0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity must be positive")
	})
}
