package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// GetOrderQueryHandler reads the order context of a session.
type GetOrderQueryHandler struct {
	contexts ports.OrderContextProvider
}

func NewGetOrderQueryHandler(contexts ports.OrderContextProvider) GetOrderQueryHandler {
	return GetOrderQueryHandler{contexts: contexts}
}

// Handle returns the lines in insertion order and the order summary. A session
// without lines yields an empty, non-nil Lines slice.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderContext, err := h.contexts.Open(ctx, query.SessionID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, err := orderContext.Lines(ctx)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	summary := order.Summarize(lines)
	resp := GetOrderQueryResponse{
		Lines:         make([]OrderLineResponse, 0, len(lines)),
		TotalPrice:    summary.TotalPrice(),
		TotalQuantity: summary.TotalQuantity(),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, NewOrderLineResponse(l))
	}

	return resp, nil
}

// NewOrderLineResponse flattens a stored line.
func NewOrderLineResponse(l order.Line) OrderLineResponse {
	id, _ := l.ID()
	m := l.Menu()
	return OrderLineResponse{
		ID:             id,
		MenuID:         m.ID(),
		Name:           m.Name(),
		NameEn:         m.NameEn(),
		Type:           m.Type().String(),
		AssetPath:      m.AssetPath(),
		Quantity:       l.Quantity().Value(),
		Combo:          l.IsCombo(),
		UnitPrice:      l.UnitPrice(),
		Total:          l.Total(),
		ComboAvailable: m.Type().OffersCombo(),
		CanIncrement:   l.Quantity().CanIncrement(),
		CanDecrement:   l.Quantity().CanDecrement(),
	}
}
