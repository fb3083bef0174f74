package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// ChangeComboTypeCommandHandler sets the combo flag of a line and always
// propagates the result, even when the flag did not change.
// Asking for a combo on a line that is not a burger fails with
// order.ErrComboNotAvailable.
type ChangeComboTypeCommandHandler struct {
	contexts ports.OrderContextProvider
}

func NewChangeComboTypeCommandHandler(contexts ports.OrderContextProvider) ChangeComboTypeCommandHandler {
	return ChangeComboTypeCommandHandler{contexts: contexts}
}

func (h *ChangeComboTypeCommandHandler) Handle(ctx context.Context, cmd ChangeComboTypeCommand) (order.Line, error) {
	if err := cmd.Validate(); err != nil {
		return order.Line{}, err
	}

	orderContext, err := h.contexts.Open(ctx, cmd.SessionID())
	if err != nil {
		return order.Line{}, err
	}

	line, _, err := orderContext.Modify(ctx, func(lines []order.Line) (order.Line, bool, error) {
		line, err := findLine(lines, cmd.LineID())
		if err != nil {
			return order.Line{}, false, err
		}
		next, err := line.SetComboType(cmd.ComboType())
		if err != nil {
			return order.Line{}, false, err
		}
		return next, true, nil
	})
	return line, err
}
