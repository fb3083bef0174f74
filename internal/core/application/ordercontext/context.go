package ordercontext

import (
	"context"
	"log/slog"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

var _ ports.OrderContext = (*Context)(nil)

// Context is the order context of a single session.
type Context struct {
	sessionID  string
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger

	// mu serialises mutations
	mu sync.Mutex

	listenersMu  sync.RWMutex
	listeners    map[uint64]ports.Listener
	nextListener uint64
}

// NewContext creates the order context of sessionID over the given storage.
func NewContext(sessionID string, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) (*Context, error) {
	if err := ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		sessionID:  sessionID,
		uowFactory: uowFactory,
		logger:     logger.With("component", "order-context", "session", sessionID),
		listeners:  make(map[uint64]ports.Listener),
	}, nil
}

func (c *Context) SessionID() string {
	return c.sessionID
}

func (c *Context) Lines(ctx context.Context) ([]order.Line, error) {
	uow := c.uowFactory.Create()
	return uow.LineRepository().List(ctx, c.sessionID)
}

func (c *Context) Line(ctx context.Context, id kernel.UUID) (order.Line, error) {
	uow := c.uowFactory.Create()
	return uow.LineRepository().Get(ctx, c.sessionID, id)
}

func (c *Context) ChangeOrder(ctx context.Context, line order.Line) (order.Line, error) {
	if err := line.Validate(); err != nil {
		return order.Line{}, err
	}

	c.mu.Lock()
	stored, err := c.changeOrder(ctx, line)
	c.mu.Unlock()
	if err != nil {
		return order.Line{}, err
	}

	c.changed(ctx, stored)
	return stored, nil
}

func (c *Context) Modify(ctx context.Context, fn ports.LineModifier) (order.Line, bool, error) {
	c.mu.Lock()
	stored, changed, err := c.modify(ctx, fn)
	c.mu.Unlock()
	if err != nil || !changed {
		return stored, false, err
	}

	c.changed(ctx, stored)
	return stored, true, nil
}

func (c *Context) CancelOrder(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	err := c.cancelOrder(ctx, id)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "line cancelled", "line_id", id.String())
	c.publish(order.NewLineCancelledEvent(id))
	return nil
}

func (c *Context) Subscribe(listener ports.Listener) func() {
	c.listenersMu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = listener
	c.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.listenersMu.Lock()
			delete(c.listeners, id)
			c.listenersMu.Unlock()
		})
	}
}

// Subscribers returns the number of registered listeners.
func (c *Context) Subscribers() int {
	c.listenersMu.RLock()
	defer c.listenersMu.RUnlock()
	return len(c.listeners)
}

func (c *Context) modify(ctx context.Context, fn ports.LineModifier) (order.Line, bool, error) {
	lines, err := c.Lines(ctx)
	if err != nil {
		return order.Line{}, false, err
	}
	line, changed, err := fn(lines)
	if err != nil {
		return order.Line{}, false, err
	}
	if !changed {
		return line, false, nil
	}
	if err = line.Validate(); err != nil {
		return order.Line{}, false, err
	}
	stored, err := c.changeOrder(ctx, line)
	if err != nil {
		return order.Line{}, false, err
	}
	return stored, true, nil
}

func (c *Context) changeOrder(ctx context.Context, line order.Line) (order.Line, error) {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Line{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.LineRepository()
	if _, ok := line.ID(); !ok {
		lines, err := repo.List(ctx, c.sessionID)
		if err != nil {
			return order.Line{}, err
		}
		id := kernel.NewUUID()
		for _, l := range lines {
			if l.Key() == line.Key() {
				id, _ = l.ID()
				break
			}
		}
		if line, err = line.WithID(id); err != nil {
			return order.Line{}, err
		}
	}

	if err := repo.Save(ctx, c.sessionID, line); err != nil {
		return order.Line{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return order.Line{}, err
	}
	return line, nil
}

func (c *Context) cancelOrder(ctx context.Context, id kernel.UUID) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LineRepository().Delete(ctx, c.sessionID, id); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// deleteAll drops every line of the session without notifying anybody. The
// registry calls it for sessions that have no subscribers left.
func (c *Context) deleteAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LineRepository().DeleteSession(ctx, c.sessionID); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (c *Context) changed(ctx context.Context, stored order.Line) {
	c.logger.DebugContext(ctx, "line changed", "line", stored.String())
	c.publish(order.NewLineChangedEvent(stored))
}

func (c *Context) publish(event order.Event) {
	c.listenersMu.RLock()
	listeners := make([]ports.Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.listenersMu.RUnlock()

	for _, l := range listeners {
		l(event)
	}
}
