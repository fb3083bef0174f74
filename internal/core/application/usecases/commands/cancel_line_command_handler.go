package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// CancelLineCommandHandler asks the order context to remove one line.
// Without a line id it returns immediately and never opens the order context.
type CancelLineCommandHandler struct {
	contexts ports.OrderContextProvider
}

func NewCancelLineCommandHandler(contexts ports.OrderContextProvider) CancelLineCommandHandler {
	return CancelLineCommandHandler{contexts: contexts}
}

func (h *CancelLineCommandHandler) Handle(ctx context.Context, cmd CancelLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	id, ok := cmd.LineID()
	if !ok {
		return nil
	}

	orderContext, err := h.contexts.Open(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	return orderContext.CancelOrder(ctx, id)
}
