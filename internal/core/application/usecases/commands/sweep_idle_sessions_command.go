package commands

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrSweepIdleSessionsCommandIsNotConstructed = errors.New(
		"SweepIdleSessionsCommand must be created via NewSweepIdleSessionsCommand constructor",
	)
)

// SweepIdleSessionsCommand drops order contexts that nobody opened for idleFor.
//
// Example:
//
//	cmd, _ := NewSweepIdleSessionsCommand(30 * time.Minute)
//	evicted, err := handler.Handle(ctx, cmd)
type SweepIdleSessionsCommand struct { //nolint:recvcheck //using for validation
	idleFor time.Duration

	guard guard.ConstructorGuard
}

func NewSweepIdleSessionsCommand(idleFor time.Duration) (SweepIdleSessionsCommand, error) {
	if idleFor <= 0 {
		return SweepIdleSessionsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"idle duration", fmt.Errorf("%s is not positive", idleFor))
	}

	return SweepIdleSessionsCommand{
		idleFor: idleFor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SweepIdleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrSweepIdleSessionsCommandIsNotConstructed)
}

func (c SweepIdleSessionsCommand) IdleFor() time.Duration {
	return c.idleFor
}
