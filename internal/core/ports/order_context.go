package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// LineModifier derives a line from the current lines of an order context. It
// reports false when there is nothing to store.
type LineModifier func(lines []order.Line) (order.Line, bool, error)

// Listener receives order context events. Listeners are called synchronously
// after a mutation was committed and must not block.
type Listener func(order.Event)

// OrderContext is the mutable collection of order lines of one session.
type OrderContext interface {
	// SessionID identifies the session the context belongs to.
	SessionID() string

	// Lines returns a snapshot of all lines in insertion order.
	Lines(ctx context.Context) ([]order.Line, error)

	// Line returns a single line or errs.ErrObjectNotFound.
	Line(ctx context.Context, id kernel.UUID) (order.Line, error)

	// ChangeOrder inserts or replaces a line and returns the stored line.
	// Lines with an id replace the line with that id. Lines without one
	// replace the line with the same order.Key, or are inserted with a new id.
	// Subscribers receive an order.LineChanged event.
	ChangeOrder(ctx context.Context, line order.Line) (order.Line, error)

	// Modify runs fn against the current lines and stores the line it returns
	// as ChangeOrder would, without letting other mutations interleave.
	// The bool result reports whether a line was stored.
	Modify(ctx context.Context, fn LineModifier) (order.Line, bool, error)

	// CancelOrder removes the line with id, or returns errs.ErrObjectNotFound.
	// Subscribers receive an order.LineCancelled event.
	CancelOrder(ctx context.Context, id kernel.UUID) error

	// Subscribe registers a listener until the returned function is called.
	Subscribe(listener Listener) (unsubscribe func())
}

// OrderContextProvider hands out the order context of a session, creating it
// on first use.
type OrderContextProvider interface {
	Open(ctx context.Context, sessionID string) (OrderContext, error)
}

// SessionSweeper drops order contexts nobody used for a while.
type SessionSweeper interface {
	// EvictIdle removes sessions idle for longer than idleFor that have no
	// subscribers, together with their lines. Stored sessions that are not
	// open and whose lines are older than idleFor are removed as well. It
	// returns the evicted ids.
	EvictIdle(ctx context.Context, idleFor time.Duration) ([]string, error)
}
