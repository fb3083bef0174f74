package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/adapters/out/persistence"
	"ordering/internal/core/application/ordercontext"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionSweeper struct {
	mock.Mock
}

func (m *MockSessionSweeper) Handle(ctx context.Context, cmd commands.SweepIdleSessionsCommand) ([]string, error) {
	args := m.Called(ctx, cmd.IdleFor())
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionSweepJob_RunOnce(t *testing.T) {
	ctx := t.Context()

	t.Run("sweeps with the configured ttl", func(t *testing.T) {
		sweeper := new(MockSessionSweeper)
		sweeper.On("Handle", ctx, 30*time.Minute).Return([]string{"a"}, nil).Once()

		job := jobs.NewSessionSweepJob(sweeper, "0 * * * * *", 30*time.Minute, discardLogger())

		require.NoError(t, job.RunOnce(ctx))
		sweeper.AssertExpectations(t)
	})

	t.Run("handler errors are logged, not returned", func(t *testing.T) {
		sweeper := new(MockSessionSweeper)
		sweeper.On("Handle", ctx, time.Minute).Return(nil, errors.New("db down")).Once()

		job := jobs.NewSessionSweepJob(sweeper, "0 * * * * *", time.Minute, discardLogger())

		require.NoError(t, job.RunOnce(ctx))
		sweeper.AssertExpectations(t)
	})

	t.Run("rejects a non-positive ttl", func(t *testing.T) {
		sweeper := new(MockSessionSweeper)
		job := jobs.NewSessionSweepJob(sweeper, "0 * * * * *", 0, discardLogger())

		require.Error(t, job.RunOnce(ctx))
		require.Error(t, job.Start())
		sweeper.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestSessionSweepJob_EvictsIdleSessions(t *testing.T) {
	ctx := t.Context()
	factory, err := persistence.NewInMemoryUnitOfWorkFactory("sweep-job")
	require.NoError(t, err)
	registry := ordercontext.NewRegistry(factory, discardLogger())
	_, err = registry.Open(ctx, "idle-session")
	require.NoError(t, err)
	handler := commands.NewSweepIdleSessionsCommandHandler(registry)

	job := jobs.NewSessionSweepJob(&handler, "0 * * * * *", time.Nanosecond, discardLogger())
	time.Sleep(time.Millisecond)

	require.NoError(t, job.RunOnce(ctx))
	assert.Equal(t, 0, registry.Len())
}

func TestSessionSweepJob_StartStop(t *testing.T) {
	sweeper := new(MockSessionSweeper)
	sweeper.On("Handle", mock.Anything, time.Minute).Return([]string{}, nil).Maybe()

	job := jobs.NewSessionSweepJob(sweeper, "* * * * * *", time.Minute, discardLogger())

	require.NoError(t, job.Start())
	job.Stop()
}

func TestSessionSweepJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewSessionSweepJob(new(MockSessionSweeper), "every minute", time.Minute, discardLogger())

	require.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	t.Run("starts and stops", func(t *testing.T) {
		sweeper := new(MockSessionSweeper)
		sweeper.On("Handle", mock.Anything, time.Minute).Return([]string{}, nil).Maybe()
		jm := jobs.NewJobManager(sweeper, "0 * * * * *", time.Minute, discardLogger())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("wraps start failures", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockSessionSweeper), "not a schedule", time.Minute, discardLogger())

		err := jm.StartAll()

		require.ErrorContains(t, err, "failed to start session sweep job")
	})
}
