package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrCancelLineCommandIsNotConstructed = errors.New(
		"CancelLineCommand must be created via NewCancelLineCommand constructor",
	)
)

// CancelLineCommand removes a line from the order. A line that was never
// stored has no id; cancelling it does nothing.
type CancelLineCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	lineID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelLineCommand accepts a nil lineID.
func NewCancelLineCommand(sessionID string, lineID *kernel.UUID) (CancelLineCommand, error) {
	cmd := CancelLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
	); err != nil {
		return CancelLineCommand{}, err
	}

	return cmd, nil
}

func (c CancelLineCommand) Validate() error {
	return c.guard.Validate(ErrCancelLineCommandIsNotConstructed)
}

func (c CancelLineCommand) SessionID() string {
	return c.sessionID
}

// LineID returns the line to cancel and false when there is none.
func (c CancelLineCommand) LineID() (kernel.UUID, bool) {
	if c.lineID == nil {
		return kernel.UUID{}, false
	}
	return *c.lineID, true
}

func (c *CancelLineCommand) setSessionID(sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *CancelLineCommand) setLineID(lineID *kernel.UUID) error {
	if lineID == nil {
		return nil
	}
	if err := lineID.Validate(); err != nil {
		return err
	}
	id := *lineID
	c.lineID = &id
	return nil
}
