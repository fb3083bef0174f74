package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrAdjustQuantityCommandIsNotConstructed = errors.New(
		"AdjustQuantityCommand must be created via NewAdjustQuantityCommand constructor",
	)
)

// AdjustQuantityCommand moves the quantity of a line by delta. The +/- buttons
// of a line send deltas of 1 and -1; any integer is accepted.
type AdjustQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	lineID    kernel.UUID
	delta     int

	guard guard.ConstructorGuard
}

func NewAdjustQuantityCommand(sessionID string, lineID kernel.UUID, delta int) (AdjustQuantityCommand, error) {
	cmd := AdjustQuantityCommand{
		delta: delta,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineID(lineID),
	); err != nil {
		return AdjustQuantityCommand{}, err
	}

	return cmd, nil
}

func (c AdjustQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustQuantityCommandIsNotConstructed)
}

func (c AdjustQuantityCommand) SessionID() string {
	return c.sessionID
}

func (c AdjustQuantityCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c AdjustQuantityCommand) Delta() int {
	return c.delta
}

func (c *AdjustQuantityCommand) setSessionID(sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	c.sessionID = sessionID
	return nil
}

func (c *AdjustQuantityCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	c.lineID = lineID
	return nil
}
