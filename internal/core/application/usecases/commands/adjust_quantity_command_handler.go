package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// AdjustQuantityCommandHandler applies a quantity adjustment to a line and
// propagates it to the order context. Adjustments that would leave
// [order.MinQuantity, order.MaxQuantity] are not errors: the line is returned
// unchanged, applied is false and the order context is not touched.
//
// Example:
//
//	line, applied, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !applied {
//	    // the button is at its bound, nothing happened
//	}
type AdjustQuantityCommandHandler struct {
	contexts ports.OrderContextProvider
}

func NewAdjustQuantityCommandHandler(contexts ports.OrderContextProvider) AdjustQuantityCommandHandler {
	return AdjustQuantityCommandHandler{contexts: contexts}
}

func (h *AdjustQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd AdjustQuantityCommand,
) (order.Line, bool, error) {
	if err := cmd.Validate(); err != nil {
		return order.Line{}, false, err
	}

	orderContext, err := h.contexts.Open(ctx, cmd.SessionID())
	if err != nil {
		return order.Line{}, false, err
	}

	return orderContext.Modify(ctx, func(lines []order.Line) (order.Line, bool, error) {
		line, err := findLine(lines, cmd.LineID())
		if err != nil {
			return order.Line{}, false, err
		}
		next, applied := line.AdjustQuantity(cmd.Delta())
		return next, applied, nil
	})
}

func findLine(lines []order.Line, id kernel.UUID) (order.Line, error) {
	for _, l := range lines {
		if lineID, ok := l.ID(); ok && lineID.IsEqual(id) {
			return l, nil
		}
	}
	return order.Line{}, errs.NewObjectNotFoundError("line", id.String())
}
