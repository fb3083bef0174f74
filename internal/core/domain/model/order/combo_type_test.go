package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComboType(t *testing.T) {
	single, err := order.ParseComboType("single")
	require.NoError(t, err)
	assert.Equal(t, order.Single, single)

	combo, err := order.ParseComboType("combo")
	require.NoError(t, err)
	assert.Equal(t, order.Combo, combo)

	_, err = order.ParseComboType("set")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestComboType(t *testing.T) {
	assert.False(t, order.Single.IsCombo())
	assert.True(t, order.Combo.IsCombo())
	assert.Equal(t, order.Combo, order.ComboTypeOf(true))
	assert.Equal(t, order.Single, order.ComboTypeOf(false))

	assert.NoError(t, order.Single.Validate())
	assert.NoError(t, order.Combo.Validate())
	assert.Error(t, order.UnknownComboType.Validate())
	assert.Error(t, order.ComboType(42).Validate())

	assert.Equal(t, "single", order.Single.String())
	assert.Equal(t, "combo", order.Combo.String())
	assert.Equal(t, "unknown", order.ComboType(42).String())
}
