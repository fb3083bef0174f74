package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionSweeper is the command handler the sweep job drives.
type SessionSweeper interface {
	Handle(ctx context.Context, cmd commands.SweepIdleSessionsCommand) ([]string, error)
}

// SessionSweepJob evicts order contexts of sessions that stayed idle for longer
// than the configured time to live.
type SessionSweepJob struct {
	handler  SessionSweeper
	schedule string
	idleFor  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionSweepJob creates the job. schedule is a cron expression with a
// leading seconds field, for example "0 * * * * *" for once a minute.
func NewSessionSweepJob(
	handler SessionSweeper,
	schedule string,
	idleFor time.Duration,
	logger *slog.Logger,
) *SessionSweepJob {
	return &SessionSweepJob{
		handler:  handler,
		schedule: schedule,
		idleFor:  idleFor,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *SessionSweepJob) Start() error {
	cmd, err := commands.NewSweepIdleSessionsCommand(j.idleFor)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background(), cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started",
		"schedule", j.schedule, "idle_for", j.idleFor)
	return nil
}

// Stop stops the session sweep job and waits for a running sweep to finish.
func (j *SessionSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}

// RunOnce sweeps immediately.
func (j *SessionSweepJob) RunOnce(ctx context.Context) error {
	cmd, err := commands.NewSweepIdleSessionsCommand(j.idleFor)
	if err != nil {
		return err
	}
	j.run(ctx, cmd)
	return nil
}

func (j *SessionSweepJob) run(ctx context.Context, cmd commands.SweepIdleSessionsCommand) {
	evicted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session sweep job failed", "error", err)
	}
	if len(evicted) > 0 {
		j.logger.InfoContext(ctx, "Evicted idle sessions", "count", len(evicted))
	}
}
