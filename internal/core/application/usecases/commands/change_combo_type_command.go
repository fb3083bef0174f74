package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrChangeComboTypeCommandIsNotConstructed = errors.New(
		"ChangeComboTypeCommand must be created via NewChangeComboTypeCommand constructor",
	)
)

// ChangeComboTypeCommand switches a line between single and combo.
type ChangeComboTypeCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	lineID    kernel.UUID
	comboType order.ComboType

	guard guard.ConstructorGuard
}

func NewChangeComboTypeCommand(
	sessionID string,
	lineID kernel.UUID,
	comboType order.ComboType,
) (ChangeComboTypeCommand, error) {
	cmd := ChangeComboTypeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
		cmd.setComboType(comboType),
	); err != nil {
		return ChangeComboTypeCommand{}, err
	}

	return cmd, nil
}

func (c ChangeComboTypeCommand) Validate() error {
	return c.guard.Validate(ErrChangeComboTypeCommandIsNotConstructed)
}

func (c ChangeComboTypeCommand) SessionID() string {
	return c.sessionID
}

func (c ChangeComboTypeCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c ChangeComboTypeCommand) ComboType() order.ComboType {
	return c.comboType
}

func (c *ChangeComboTypeCommand) setSessionID(sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *ChangeComboTypeCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	c.lineID = lineID
	return nil
}

func (c *ChangeComboTypeCommand) setComboType(comboType order.ComboType) error {
	if err := comboType.Validate(); err != nil {
		return err
	}
	c.comboType = comboType
	return nil
}
