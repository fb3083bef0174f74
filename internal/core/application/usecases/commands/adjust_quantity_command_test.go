package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAdjustQuantityCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewAdjustQuantityCommand(sessionID, id, -1)
	require.NoError(t, err)
	assert.Equal(t, sessionID, cmd.SessionID())
	assert.Equal(t, id, cmd.LineID())
	assert.Equal(t, -1, cmd.Delta())

	_, err = commands.NewAdjustQuantityCommand(sessionID, kernel.UUID{}, 1)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	require.ErrorIs(t, commands.AdjustQuantityCommand{}.Validate(), commands.ErrAdjustQuantityCommandIsNotConstructed)
}

func TestAdjustQuantityCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	burger := newBurger(t)

	run := func(t *testing.T, lines []order.Line, lineID kernel.UUID, delta int) (order.Line, bool, error) {
		t.Helper()
		provider := new(MockOrderContextProvider)
		oc := new(MockOrderContext)
		provider.On("Open", ctx, sessionID).Return(oc, nil).Once()
		oc.On("Modify", ctx).Return(lines).Once()
		cmd, err := commands.NewAdjustQuantityCommand(sessionID, lineID, delta)
		require.NoError(t, err)

		h := commands.NewAdjustQuantityCommandHandler(provider)
		line, applied, err := h.Handle(ctx, cmd)

		provider.AssertExpectations(t)
		oc.AssertExpectations(t)
		oc.AssertNotCalled(t, "ChangeOrder", mock.Anything, mock.Anything)
		return line, applied, err
	}

	t.Run("increment from 4 to 5", func(t *testing.T) {
		line := storedLine(t, burger, 4, true)
		id, _ := line.ID()

		got, applied, err := run(t, []order.Line{storedLine(t, burger, 1, false), line}, id, 1)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, 5, got.Quantity().Value())
		assert.True(t, got.IsCombo())
		assert.True(t, got.IsEqual(line))
	})

	t.Run("increment at 10 is not applied", func(t *testing.T) {
		line := storedLine(t, burger, 10, false)
		id, _ := line.ID()

		got, applied, err := run(t, []order.Line{line}, id, 1)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, line, got)
	})

	t.Run("decrement at 1 is not applied", func(t *testing.T) {
		line := storedLine(t, burger, 1, false)
		id, _ := line.ID()

		got, applied, err := run(t, []order.Line{line}, id, -1)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, 1, got.Quantity().Value())
	})

	t.Run("unknown line", func(t *testing.T) {
		_, applied, err := run(t, []order.Line{storedLine(t, burger, 1, false)}, kernel.NewUUID(), 1)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, applied)
	})
}
