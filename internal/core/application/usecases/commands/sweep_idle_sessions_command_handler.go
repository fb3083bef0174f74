package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// SweepIdleSessionsCommandHandler evicts idle sessions and their lines.
// It is typically called periodically by a scheduler.
type SweepIdleSessionsCommandHandler struct {
	sweeper ports.SessionSweeper
}

func NewSweepIdleSessionsCommandHandler(sweeper ports.SessionSweeper) SweepIdleSessionsCommandHandler {
	return SweepIdleSessionsCommandHandler{sweeper: sweeper}
}

// Handle returns the evicted session ids.
func (h *SweepIdleSessionsCommandHandler) Handle(ctx context.Context, cmd SweepIdleSessionsCommand) ([]string, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.sweeper.EvictIdle(ctx, cmd.IdleFor())
}
