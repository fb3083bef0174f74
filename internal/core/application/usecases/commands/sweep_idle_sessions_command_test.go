package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSweepIdleSessionsCommand(t *testing.T) {
	cmd, err := commands.NewSweepIdleSessionsCommand(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cmd.IdleFor())

	_, err = commands.NewSweepIdleSessionsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSweepIdleSessionsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSweepIdleSessionsCommand(30 * time.Minute)

	t.Run("returns evicted sessions", func(t *testing.T) {
		sweeper := new(MockSessionSweeper)
		sweeper.On("EvictIdle", ctx, 30*time.Minute).Return([]string{"a", "b"}, nil).Once()

		h := commands.NewSweepIdleSessionsCommandHandler(sweeper)
		evicted, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, evicted)
		sweeper.AssertExpectations(t)
	})

	t.Run("passes errors through", func(t *testing.T) {
		sweeper := new(MockSessionSweeper)
		sweeper.On("EvictIdle", ctx, 30*time.Minute).Return(nil, errors.New("sweep error")).Once()

		h := commands.NewSweepIdleSessionsCommandHandler(sweeper)
		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "sweep error")
	})

	t.Run("rejects unconstructed command", func(t *testing.T) {
		h := commands.NewSweepIdleSessionsCommandHandler(new(MockSessionSweeper))

		_, err := h.Handle(ctx, commands.SweepIdleSessionsCommand{})

		require.ErrorIs(t, err, commands.ErrSweepIdleSessionsCommandIsNotConstructed)
	})
}
