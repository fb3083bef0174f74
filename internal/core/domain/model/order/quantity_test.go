package order_test

import (
	"math"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"min", order.MinQuantity, false},
		{"middle", 5, false},
		{"max", order.MaxQuantity, false},
		{"zero", 0, true},
		{"negative", -3, true},
		{"above max", order.MaxQuantity + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := order.NewQuantity(tt.value)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			require.NoError(t, q.Validate())
			assert.Equal(t, tt.value, q.Value())
		})
	}
}

func TestMustQuantity_Panics(t *testing.T) {
	assert.Panics(t, func() { order.MustQuantity(0) })
	assert.NotPanics(t, func() { order.MustQuantity(1) })
}

func TestQuantity_Add(t *testing.T) {
	t.Run("within bounds", func(t *testing.T) {
		q, err := order.MustQuantity(4).Add(1)

		require.NoError(t, err)
		assert.Equal(t, 5, q.Value())
	})

	t.Run("above max is rejected", func(t *testing.T) {
		_, err := order.MustQuantity(10).Add(1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "10+1")
	})

	t.Run("below min is rejected", func(t *testing.T) {
		_, err := order.MustQuantity(1).Add(-1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("huge deltas do not overflow", func(t *testing.T) {
		_, err := order.MustQuantity(5).Add(math.MaxInt)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.MustQuantity(5).Add(math.MinInt)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value quantity", func(t *testing.T) {
		_, err := order.Quantity{}.Add(1)

		require.ErrorIs(t, err, order.ErrQuantityIsNotConstructed)
	})
}

func TestQuantity_Bounds(t *testing.T) {
	assert.True(t, order.MustQuantity(1).CanIncrement())
	assert.False(t, order.MustQuantity(1).CanDecrement())
	assert.False(t, order.MustQuantity(10).CanIncrement())
	assert.True(t, order.MustQuantity(10).CanDecrement())
	assert.Equal(t, "Quantity(7)", order.MustQuantity(7).String())
}
