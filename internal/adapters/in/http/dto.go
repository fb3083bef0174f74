package http

import (
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Menu struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NameEn     string `json:"nameEn"`
	Type       string `json:"type"`
	AssetPath  string `json:"assetPath"`
	Price      int64  `json:"price"`
	ComboPrice *int64 `json:"comboPrice,omitempty"`
}

type OrderLine struct {
	ID             string `json:"id"`
	MenuID         string `json:"menuId"`
	Name           string `json:"name"`
	NameEn         string `json:"nameEn"`
	Type           string `json:"type"`
	AssetPath      string `json:"assetPath"`
	Quantity       int    `json:"quantity"`
	Combo          bool   `json:"combo"`
	UnitPrice      int64  `json:"unitPrice"`
	Total          int64  `json:"total"`
	ComboAvailable bool   `json:"comboAvailable"`
	CanIncrement   bool   `json:"canIncrement"`
	CanDecrement   bool   `json:"canDecrement"`
}

type Order struct {
	Lines         []OrderLine `json:"lines"`
	TotalPrice    int64       `json:"totalPrice"`
	TotalQuantity int         `json:"totalQuantity"`
}

// NewLine is the body of POST /api/v1/order/lines.
type NewLine struct {
	MenuID uuid.UUID `json:"menuId"`
	Combo  bool      `json:"combo"`
}

// QuantityAdjustment is the body of POST /api/v1/order/lines/{lineId}/quantity.
type QuantityAdjustment struct {
	Delta int `json:"delta"`
}

// AdjustedLine reports Applied false when the quantity was already at its bound.
type AdjustedLine struct {
	Line    OrderLine `json:"line"`
	Applied bool      `json:"applied"`
}

// ComboChoice is the body of PUT /api/v1/order/lines/{lineId}/combo.
type ComboChoice struct {
	Type string `json:"type"`
}

// OrderEvent is a websocket frame of the order event stream.
type OrderEvent struct {
	Kind   string     `json:"kind"`
	LineID string     `json:"lineId"`
	Line   *OrderLine `json:"line,omitempty"`
}

func newMenu(m queries.GetMenusQueryResponse) Menu {
	dto := Menu{
		ID:        m.ID.String(),
		Name:      m.Name,
		NameEn:    m.NameEn,
		Type:      m.Type,
		AssetPath: m.AssetPath,
		Price:     m.Price.Won(),
	}
	if m.ComboPrice != nil {
		won := m.ComboPrice.Won()
		dto.ComboPrice = &won
	}
	return dto
}

func newOrderLine(l queries.OrderLineResponse) OrderLine {
	return OrderLine{
		ID:             l.ID.String(),
		MenuID:         l.MenuID.String(),
		Name:           l.Name,
		NameEn:         l.NameEn,
		Type:           l.Type,
		AssetPath:      l.AssetPath,
		Quantity:       l.Quantity,
		Combo:          l.Combo,
		UnitPrice:      l.UnitPrice.Won(),
		Total:          l.Total.Won(),
		ComboAvailable: l.ComboAvailable,
		CanIncrement:   l.CanIncrement,
		CanDecrement:   l.CanDecrement,
	}
}

func newOrder(resp queries.GetOrderQueryResponse) Order {
	dto := Order{
		Lines:         make([]OrderLine, 0, len(resp.Lines)),
		TotalPrice:    resp.TotalPrice.Won(),
		TotalQuantity: resp.TotalQuantity,
	}
	for _, l := range resp.Lines {
		dto.Lines = append(dto.Lines, newOrderLine(l))
	}
	return dto
}

func newOrderEvent(e order.Event) OrderEvent {
	dto := OrderEvent{
		Kind:   e.Kind.String(),
		LineID: e.LineID.String(),
	}
	if e.Line != nil {
		line := newOrderLine(queries.NewOrderLineResponse(*e.Line))
		dto.Line = &line
	}
	return dto
}
