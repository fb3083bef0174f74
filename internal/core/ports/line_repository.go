package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// LineRepository defines the persistence contract for order lines. Every line
// belongs to exactly one session; lines of other sessions are never visible.
type LineRepository interface {
	// List returns the lines of a session in insertion order.
	List(ctx context.Context, sessionID string) ([]order.Line, error)

	// Get retrieves a single line.
	// Returns errs.ErrObjectNotFound if the session has no such line.
	Get(ctx context.Context, sessionID string, id kernel.UUID) (order.Line, error)

	// Save inserts or updates a line. The line must carry an id.
	Save(ctx context.Context, sessionID string, line order.Line) error

	// Delete removes a line.
	// Returns errs.ErrObjectNotFound if the session has no such line.
	Delete(ctx context.Context, sessionID string, id kernel.UUID) error

	// DeleteSession removes every line of a session.
	DeleteSession(ctx context.Context, sessionID string) error

	// StaleSessions returns the sessions whose lines were all last written
	// before the given time.
	StaleSessions(ctx context.Context, before time.Time) ([]string, error)
}
