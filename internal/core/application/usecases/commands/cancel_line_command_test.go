package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelLineCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCancelLineCommand(sessionID, &id)
	require.NoError(t, err)
	got, ok := cmd.LineID()
	assert.True(t, ok)
	assert.Equal(t, id, got)

	empty, err := commands.NewCancelLineCommand(sessionID, nil)
	require.NoError(t, err)
	_, ok = empty.LineID()
	assert.False(t, ok)

	_, err = commands.NewCancelLineCommand(sessionID, &kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelLineCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should cancel by id", func(t *testing.T) {
		id := kernel.NewUUID()
		provider := new(MockOrderContextProvider)
		oc := new(MockOrderContext)
		mock.InOrder(
			provider.On("Open", ctx, sessionID).Return(oc, nil).Once(),
			oc.On("CancelOrder", ctx, id).Return(nil).Once(),
		)
		cmd, _ := commands.NewCancelLineCommand(sessionID, &id)

		h := commands.NewCancelLineCommandHandler(provider)
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		provider.AssertExpectations(t)
		oc.AssertExpectations(t)
	})

	t.Run("should do nothing without id", func(t *testing.T) {
		provider := new(MockOrderContextProvider)
		cmd, _ := commands.NewCancelLineCommand(sessionID, nil)

		h := commands.NewCancelLineCommandHandler(provider)
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		provider.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
	})

	t.Run("should pass not found through", func(t *testing.T) {
		id := kernel.NewUUID()
		provider := new(MockOrderContextProvider)
		oc := new(MockOrderContext)
		provider.On("Open", ctx, sessionID).Return(oc, nil).Once()
		oc.On("CancelOrder", ctx, id).Return(errs.NewObjectNotFoundError("line", id.String())).Once()
		cmd, _ := commands.NewCancelLineCommand(sessionID, &id)

		h := commands.NewCancelLineCommandHandler(provider)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
