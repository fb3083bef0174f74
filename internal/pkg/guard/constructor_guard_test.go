package guard_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("Line must be created via NewLine")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbeddedInValue shows the guard inside a value object with business rules.
func TestConstructorGuardEmbeddedInValue(t *testing.T) {
	type price struct {
		won   int
		guard guard.ConstructorGuard
	}

	errPriceNotConstructed := errors.New("price must be created via newPrice")

	newPrice := func(won int) (price, error) {
		if won < 0 {
			return price{}, errors.New("price cannot be negative")
		}
		return price{won: won, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		p, err := newPrice(9900)

		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errPriceNotConstructed))
		assert.Equal(t, 9900, p.won)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p price

		err := p.guard.Validate(errPriceNotConstructed)

		assert.Equal(t, errPriceNotConstructed, err)
	})

	t.Run("copies_stay_valid", func(t *testing.T) {
		p, err := newPrice(12900)
		require.NoError(t, err)

		cp := p

		require.NoError(t, cp.guard.Validate(errPriceNotConstructed))
	})
}

func BenchmarkConstructorGuard(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
