package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddMenuCommandIsNotConstructed = errors.New(
		"AddMenuCommand must be created via NewAddMenuCommand constructor",
	)
)

// AddMenuCommand puts a catalog menu into the order of a session.
//
// Example:
//
//	cmd, err := NewAddMenuCommand(sessionID, cheeseBurgerID, order.Combo)
//	if err != nil {
//	    return err
//	}
//	line, err := handler.Handle(ctx, cmd)
type AddMenuCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	menuID    kernel.UUID
	comboType order.ComboType

	guard guard.ConstructorGuard
}

func NewAddMenuCommand(sessionID string, menuID kernel.UUID, comboType order.ComboType) (AddMenuCommand, error) {
	cmd := AddMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setMenuID(menuID),
		cmd.setComboType(comboType),
	); err != nil {
		return AddMenuCommand{}, err
	}

	return cmd, nil
}

func (c AddMenuCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuCommandIsNotConstructed)
}

func (c AddMenuCommand) SessionID() string {
	return c.sessionID
}

func (c AddMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c AddMenuCommand) ComboType() order.ComboType {
	return c.comboType
}

func (c *AddMenuCommand) setSessionID(sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *AddMenuCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	c.menuID = menuID
	return nil
}

func (c *AddMenuCommand) setComboType(comboType order.ComboType) error {
	if err := comboType.Validate(); err != nil {
		return err
	}
	c.comboType = comboType
	return nil
}
