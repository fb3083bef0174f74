package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sessionSweepJob *SessionSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweeper SessionSweeper,
	sweepSchedule string,
	sessionIdleTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionSweepJob: NewSessionSweepJob(sweeper, sweepSchedule, sessionIdleTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start session sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionSweepJob.Stop()
}
