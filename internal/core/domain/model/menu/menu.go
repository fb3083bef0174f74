package menu

import (
	"errors"
	"fmt"
	"path"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a menu has no display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMenuIsNotConstructed is returned when using an improperly initialized Menu.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")
	// ErrComboPriceNotAllowed is returned when a non-burger menu is given a combo price.
	ErrComboPriceNotAllowed = errs.NewValueIsInvalidErrorWithCause(
		"combo price", errors.New("only burgers can have a combo price"))
)

// Menu is an entry of the shop catalog. It is reference data: order lines point
// at a Menu but never change it.
//
// Business rules:
//   - Menu must have a valid UUID, a non-empty name and a valid type
//   - Price and combo price are non-negative
//   - Combo price is optional and only allowed for burgers
//
// Example usage:
//
//	combo := kernel.Price(12900)
//	m, err := menu.NewMenu(kernel.NewUUID(), "치즈 버거", "Cheese Burger", menu.Burger,
//	    "cheese.png", 9900, &combo)
type Menu struct {
	id         kernel.UUID
	name       string
	nameEn     string
	menuType   Type
	img        string
	price      kernel.Price
	comboPrice *kernel.Price

	guard guard.ConstructorGuard
}

// NewMenu creates a validated Menu. comboPrice may be nil when the menu has no
// combo pricing; lines ordered as combo then fall back to price.
//
// Returns:
//   - *Menu: The created menu if all validations pass
//   - error: All validation failures joined together
func NewMenu(
	id kernel.UUID,
	name string,
	nameEn string,
	menuType Type,
	img string,
	price kernel.Price,
	comboPrice *kernel.Price,
) (*Menu, error) {
	m := &Menu{
		nameEn: nameEn,
		img:    img,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setType(menuType),
		m.setPrice(price),
		m.setComboPrice(menuType, comboPrice),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks that the menu was created with NewMenu.
func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

// IsEqual compares menus by identifier.
func (m *Menu) IsEqual(other *Menu) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Name() string {
	return m.name
}

// NameEn returns the English display name, which may be empty.
func (m *Menu) NameEn() string {
	return m.nameEn
}

func (m *Menu) Type() Type {
	return m.menuType
}

// Img returns the image file name inside the type's asset folder.
func (m *Menu) Img() string {
	return m.img
}

// AssetPath returns the public path of the menu image, e.g. "/assets/burger/cheese.png".
func (m *Menu) AssetPath() string {
	return path.Join("/assets", m.menuType.String(), m.img)
}

func (m *Menu) Price() kernel.Price {
	return m.price
}

// ComboPrice returns the combo price and whether one is defined.
func (m *Menu) ComboPrice() (kernel.Price, bool) {
	if m.comboPrice == nil {
		return kernel.ZeroPrice, false
	}
	return *m.comboPrice, true
}

// UnitPrice returns the price of one item ordered single or as combo.
// A combo without a defined combo price costs the base price.
func (m *Menu) UnitPrice(combo bool) kernel.Price {
	if !combo {
		return m.price
	}
	if p, ok := m.ComboPrice(); ok {
		return p
	}
	return m.price
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Menu) setType(menuType Type) error {
	if err := menuType.Validate(); err != nil {
		return err
	}
	m.menuType = menuType
	return nil
}

func (m *Menu) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Menu) setComboPrice(menuType Type, comboPrice *kernel.Price) error {
	if comboPrice == nil {
		return nil
	}
	if !menuType.OffersCombo() {
		return ErrComboPriceNotAllowed
	}
	if err := comboPrice.Validate(); err != nil {
		return fmt.Errorf("combo %w", err)
	}
	p := *comboPrice
	m.comboPrice = &p
	return nil
}
