package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrLineIsNotConstructed is returned when a Line was not created through NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")
	// ErrMenuIsRequired is returned when a line is built without a menu.
	ErrMenuIsRequired = errs.NewValueIsRequiredError("menu")
	// ErrComboNotAvailable is returned when a non-burger line is asked to become a combo.
	ErrComboNotAvailable = errors.New("combo is only available for burgers")
)

// Key identifies a line before it has an id: one line per menu and combo choice.
type Key struct {
	MenuID kernel.UUID
	Combo  bool
}

// Line is one menu in a customer's order.
//
// Line follows these invariants:
//   - Menu is a constructed catalog entry
//   - Quantity stays within [MinQuantity, MaxQuantity]
//   - Combo is only true for burgers
//   - Id is absent until the order context stores the line
//
// Line is a value: methods return modified copies and never change the receiver.
//
// Example:
//
//	line, _ := order.NewLine(cheeseBurger, order.MustQuantity(2), false)
//	line.Total()                           // 19800
//	combo, _ := line.SetComboType(order.Combo)
//	combo.Total()                          // 25800
type Line struct { //nolint:recvcheck //using for validation
	// id is nil until the line has been stored
	id *kernel.UUID

	menu     *menu.Menu
	quantity Quantity
	combo    bool

	guard guard.ConstructorGuard
}

// NewLine creates a line that has not been stored yet and therefore has no id.
//
// Returns:
//   - Line: The created line if all validations pass
//   - error: Joined validation errors, ErrComboNotAvailable for a non-burger combo
func NewLine(m *menu.Menu, quantity Quantity, combo bool) (Line, error) {
	line := Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setMenu(m),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}
	if err := line.setCombo(combo); err != nil {
		return Line{}, err
	}

	return line, nil
}

// RestoreLine rebuilds a stored line, e.g. from a repository row.
// The same rules as NewLine apply, plus a valid id.
func RestoreLine(id kernel.UUID, m *menu.Menu, quantity int, combo bool) (Line, error) {
	q, qErr := NewQuantity(quantity)
	line := Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		line.setID(id),
		line.setMenu(m),
		qErr,
	); err != nil {
		return Line{}, err
	}
	line.quantity = q
	if err := line.setCombo(combo); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the line was created by NewLine or RestoreLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line id and whether one has been assigned.
func (l Line) ID() (kernel.UUID, bool) {
	if l.id == nil {
		return kernel.UUID{}, false
	}
	return *l.id, true
}

// WithID returns a copy of the line carrying id. The order context uses it when
// storing a new line.
func (l Line) WithID(id kernel.UUID) (Line, error) {
	if err := l.Validate(); err != nil {
		return Line{}, err
	}
	next := l
	if err := next.setID(id); err != nil {
		return Line{}, err
	}
	return next, nil
}

func (l Line) Menu() *menu.Menu {
	return l.menu
}

func (l Line) Quantity() Quantity {
	return l.quantity
}

func (l Line) IsCombo() bool {
	return l.combo
}

func (l Line) ComboType() ComboType {
	return ComboTypeOf(l.combo)
}

// Key returns the menu and combo composite key used to match lines without ids.
func (l Line) Key() Key {
	return Key{MenuID: l.menu.ID(), Combo: l.combo}
}

// UnitPrice is the combo price for combo lines (base price when none is
// defined) and the base price otherwise.
func (l Line) UnitPrice() kernel.Price {
	return l.menu.UnitPrice(l.combo)
}

// Total is quantity times the unit price.
func (l Line) Total() kernel.Price {
	return l.UnitPrice().Times(l.quantity.Value())
}

// AdjustQuantity returns the line with its quantity moved by delta and true.
// If the new quantity would fall outside [MinQuantity, MaxQuantity] the
// adjustment is rejected: the receiver is returned unchanged with false.
//
// Example:
//
//	line, ok := line.AdjustQuantity(+1)
//	if !ok {
//	    // already at MaxQuantity, nothing to propagate
//	}
func (l Line) AdjustQuantity(delta int) (Line, bool) {
	q, err := l.quantity.Add(delta)
	if err != nil {
		return l, false
	}
	next := l
	next.quantity = q
	return next, true
}

// SetComboType returns the line switched to single or combo.
// Single is always accepted; Combo requires a burger.
func (l Line) SetComboType(comboType ComboType) (Line, error) {
	if err := comboType.Validate(); err != nil {
		return Line{}, err
	}
	next := l
	if err := next.setCombo(comboType.IsCombo()); err != nil {
		return Line{}, err
	}
	return next, nil
}

// IsEqual compares stored lines by id and unstored lines by Key.
func (l Line) IsEqual(other Line) bool {
	id, ok := l.ID()
	otherID, otherOk := other.ID()
	if ok && otherOk {
		return id.IsEqual(otherID)
	}
	if ok != otherOk {
		return false
	}
	return l.Key() == other.Key()
}

func (l Line) String() string {
	id := "new"
	if v, ok := l.ID(); ok {
		id = v.String()
	}
	return fmt.Sprintf("Line(%s, %s x%d, %s)", id, l.menu.Name(), l.quantity.Value(), l.ComboType())
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = &id
	return nil
}

func (l *Line) setMenu(m *menu.Menu) error {
	if m == nil {
		return ErrMenuIsRequired
	}
	if err := m.Validate(); err != nil {
		return err
	}
	l.menu = m
	return nil
}

func (l *Line) setQuantity(quantity Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	l.quantity = quantity
	return nil
}

// setCombo must run after setMenu.
func (l *Line) setCombo(combo bool) error {
	if combo && !l.menu.Type().OffersCombo() {
		return ErrComboNotAvailable
	}
	l.combo = combo
	return nil
}
