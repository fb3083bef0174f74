package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/adapters/out/persistence"
	"ordering/internal/core/application/ordercontext"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddMenuCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewAddMenuCommand(sessionID, id, order.Combo)
	require.NoError(t, err)
	assert.Equal(t, sessionID, cmd.SessionID())
	assert.Equal(t, id, cmd.MenuID())
	assert.Equal(t, order.Combo, cmd.ComboType())

	_, err = commands.NewAddMenuCommand("", kernel.UUID{}, order.UnknownComboType)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, commands.AddMenuCommand{}.Validate(), commands.ErrAddMenuCommandIsNotConstructed)
}

func TestAddMenuCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	burger := newBurger(t)

	t.Run("should create a new line", func(t *testing.T) {
		menus := new(MockMenuRepository)
		provider := new(MockOrderContextProvider)
		oc := new(MockOrderContext)
		mock.InOrder(
			menus.On("Get", ctx, burger.ID()).Return(burger, nil).Once(),
			provider.On("Open", ctx, sessionID).Return(oc, nil).Once(),
			oc.On("Modify", ctx).Return([]order.Line{}).Once(),
		)
		cmd, _ := commands.NewAddMenuCommand(sessionID, burger.ID(), order.Combo)

		h := commands.NewAddMenuCommandHandler(menus, provider, services.NewOrderComposer())
		line, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, line.IsCombo())
		assert.Equal(t, 1, line.Quantity().Value())
		menus.AssertExpectations(t)
		provider.AssertExpectations(t)
		oc.AssertExpectations(t)
	})

	t.Run("should fail for unknown menu without opening the order", func(t *testing.T) {
		menus := new(MockMenuRepository)
		provider := new(MockOrderContextProvider)
		missing := kernel.NewUUID()
		menus.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("menu", missing.String())).Once()
		cmd, _ := commands.NewAddMenuCommand(sessionID, missing, order.Single)

		h := commands.NewAddMenuCommandHandler(menus, provider, services.NewOrderComposer())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		provider.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
	})

	t.Run("should reject combo drinks", func(t *testing.T) {
		drink := newDrink(t)
		menus := new(MockMenuRepository)
		provider := new(MockOrderContextProvider)
		oc := new(MockOrderContext)
		menus.On("Get", ctx, drink.ID()).Return(drink, nil).Once()
		provider.On("Open", ctx, sessionID).Return(oc, nil).Once()
		oc.On("Modify", ctx).Return([]order.Line{}).Once()
		cmd, _ := commands.NewAddMenuCommand(sessionID, drink.ID(), order.Combo)

		h := commands.NewAddMenuCommandHandler(menus, provider, services.NewOrderComposer())
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrComboNotAvailable)
	})

	t.Run("should pass open errors through", func(t *testing.T) {
		menus := new(MockMenuRepository)
		provider := new(MockOrderContextProvider)
		menus.On("Get", ctx, burger.ID()).Return(burger, nil).Once()
		provider.On("Open", ctx, sessionID).Return(nil, errors.New("open error")).Once()
		cmd, _ := commands.NewAddMenuCommand(sessionID, burger.ID(), order.Single)

		h := commands.NewAddMenuCommandHandler(menus, provider, services.NewOrderComposer())
		_, err := h.Handle(ctx, cmd)

		require.EqualError(t, err, "open error")
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		h := commands.NewAddMenuCommandHandler(new(MockMenuRepository), new(MockOrderContextProvider),
			services.NewOrderComposer())

		_, err := h.Handle(ctx, commands.AddMenuCommand{})

		require.ErrorIs(t, err, commands.ErrAddMenuCommandIsNotConstructed)
	})
}

func TestAddMenuCommandHandler_SameMenuTwice(t *testing.T) {
	ctx := t.Context()
	factory, err := persistence.NewInMemoryUnitOfWorkFactory(kernel.NewUUID().String())
	require.NoError(t, err)
	menus := factory.Create().MenuRepository()
	burger := newBurger(t)
	require.NoError(t, menus.Add(ctx, burger))
	registry := ordercontext.NewRegistry(factory, nil)
	h := commands.NewAddMenuCommandHandler(menus, registry, services.NewOrderComposer())
	cmd, _ := commands.NewAddMenuCommand(sessionID, burger.ID(), order.Single)

	first, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	second, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	oc, _ := registry.Open(ctx, sessionID)
	lines, err := oc.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity().Value())
	assert.Equal(t, kernel.Price(19800), lines[0].Total())
}
