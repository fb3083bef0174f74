package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// AddMenuCommandHandler merges a menu into the session's order. Picking a menu
// that is already ordered with the same combo choice increments that line.
// At the maximum quantity the line is returned unchanged and nothing is stored.
type AddMenuCommandHandler struct {
	menus    MenuGetter
	contexts ports.OrderContextProvider
	composer services.OrderComposer
}

func NewAddMenuCommandHandler(
	menus MenuGetter,
	contexts ports.OrderContextProvider,
	composer services.OrderComposer,
) AddMenuCommandHandler {
	return AddMenuCommandHandler{
		menus:    menus,
		contexts: contexts,
		composer: composer,
	}
}

// Handle returns the resulting line.
func (h *AddMenuCommandHandler) Handle(ctx context.Context, cmd AddMenuCommand) (order.Line, error) {
	if err := cmd.Validate(); err != nil {
		return order.Line{}, err
	}

	m, err := h.menus.Get(ctx, cmd.MenuID())
	if err != nil {
		return order.Line{}, err
	}

	orderContext, err := h.contexts.Open(ctx, cmd.SessionID())
	if err != nil {
		return order.Line{}, err
	}

	line, _, err := orderContext.Modify(ctx, func(lines []order.Line) (order.Line, bool, error) {
		return h.composer.Compose(lines, m, cmd.ComboType())
	})
	return line, err
}
