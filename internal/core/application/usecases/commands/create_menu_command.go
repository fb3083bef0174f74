package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateMenuCommandIsNotConstructed = errors.New(
		"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
	)
)

// CreateMenuCommand registers a menu in the catalog.
//
// Example:
//
//	combo := kernel.Price(12900)
//	cmd, err := NewCreateMenuCommand(id, "치즈 버거", "Cheese Burger", menu.Burger, "cheese.png", 9900, &combo)
//	if err != nil {
//	    return fmt.Errorf("invalid menu data: %w", err)
//	}
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID     kernel.UUID
	name       string
	nameEn     string
	menuType   menu.Type
	img        string
	price      kernel.Price
	comboPrice *kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand validates the id; the remaining fields are checked by
// menu.NewMenu when the command is handled.
func NewCreateMenuCommand(
	menuID kernel.UUID,
	name, nameEn string,
	menuType menu.Type,
	img string,
	price kernel.Price,
	comboPrice *kernel.Price,
) (CreateMenuCommand, error) {
	if err := menuID.Validate(); err != nil {
		return CreateMenuCommand{}, err
	}

	return CreateMenuCommand{
		menuID:     menuID,
		name:       name,
		nameEn:     nameEn,
		menuType:   menuType,
		img:        img,
		price:      price,
		comboPrice: comboPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c CreateMenuCommand) Name() string {
	return c.name
}

func (c CreateMenuCommand) NameEn() string {
	return c.nameEn
}

func (c CreateMenuCommand) Type() menu.Type {
	return c.menuType
}

func (c CreateMenuCommand) Img() string {
	return c.img
}

func (c CreateMenuCommand) Price() kernel.Price {
	return c.price
}

func (c CreateMenuCommand) ComboPrice() *kernel.Price {
	return c.comboPrice
}
