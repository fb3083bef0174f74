package services

import (
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
)

// OrderComposer merges a picked menu into the current order lines.
//
// Business rules:
//   - An order holds at most one line per menu and combo choice
//   - Picking a menu that is already ordered adds one to that line
//   - The adjustment is rejected at order.MaxQuantity, the line stays as is
//   - Otherwise a new line with quantity 1 is created
//
// Example usage:
//
//	composer := services.NewOrderComposer()
//	line, changed, err := composer.Compose(lines, cheeseBurger, order.Combo)
//	if err != nil {
//	    return err
//	}
//	if changed {
//	    line, err = orderContext.ChangeOrder(ctx, line)
//	}
type OrderComposer struct{}

// NewOrderComposer creates a new OrderComposer instance.
func NewOrderComposer() OrderComposer {
	return OrderComposer{}
}

// Compose returns the line that results from adding m to lines.
//
// Returns:
//   - order.Line: The new or incremented line, or the untouched existing line
//   - bool: Whether the line differs from what the order already holds
//   - error: Validation errors, order.ErrComboNotAvailable for non-burger combos
func (OrderComposer) Compose(lines []order.Line, m *menu.Menu, comboType order.ComboType) (order.Line, bool, error) {
	if m == nil {
		return order.Line{}, false, order.ErrMenuIsRequired
	}
	if err := m.Validate(); err != nil {
		return order.Line{}, false, err
	}
	if err := comboType.Validate(); err != nil {
		return order.Line{}, false, err
	}

	key := order.Key{MenuID: m.ID(), Combo: comboType.IsCombo()}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return order.Line{}, false, err
		}
		if l.Key() != key {
			continue
		}
		next, ok := l.AdjustQuantity(1)
		return next, ok, nil
	}

	line, err := order.NewLine(m, order.MustQuantity(order.MinQuantity), comboType.IsCombo())
	if err != nil {
		return order.Line{}, false, err
	}
	return line, true, nil
}
