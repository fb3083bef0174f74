package ordercontext

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"ordering/internal/core/ports"
)

var (
	_ ports.OrderContextProvider = (*Registry)(nil)
	_ ports.SessionSweeper       = (*Registry)(nil)
)

// Registry keeps one Context per session id and remembers when each was last
// opened.
type Registry struct {
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
	// evicting holds the sessions whose lines are being deleted. The channel
	// closes when the sweep finishes.
	evicting map[string]chan struct{}
}

type session struct {
	orderContext *Context
	lastSeen     time.Time
}

func NewRegistry(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		uowFactory: uowFactory,
		logger:     logger,
		now:        time.Now,
		sessions:   make(map[string]*session),
		evicting:   make(map[string]chan struct{}),
	}
}

// Open returns the context of sessionID and marks the session as used. A
// session that is being evicted is reopened once its lines are gone.
func (r *Registry) Open(ctx context.Context, sessionID string) (ports.OrderContext, error) {
	r.mu.Lock()
	for {
		done, ok := r.evicting[sessionID]
		if !ok {
			break
		}
		r.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		r.mu.Lock()
	}
	defer r.mu.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		s.lastSeen = r.now()
		return s.orderContext, nil
	}

	orderContext, err := NewContext(sessionID, r.uowFactory, r.logger)
	if err != nil {
		return nil, err
	}
	r.sessions[sessionID] = &session{orderContext: orderContext, lastSeen: r.now()}
	return orderContext, nil
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle implements ports.SessionSweeper. Idle sessions leave the registry
// before their lines are deleted; Open blocks on them until the deletes are
// done and other sessions are not held up.
func (r *Registry) EvictIdle(ctx context.Context, idleFor time.Duration) ([]string, error) {
	deadline := r.now().Add(-idleFor)

	var errList []error
	stored, err := r.uowFactory.Create().LineRepository().StaleSessions(ctx, deadline)
	if err != nil {
		errList = append(errList, err)
	}

	victims, done := r.collectIdle(deadline, stored)
	defer func() {
		r.mu.Lock()
		for id := range victims {
			delete(r.evicting, id)
		}
		r.mu.Unlock()
		close(done)
	}()

	evicted := make([]string, 0, len(victims))
	for id, s := range victims {
		if err := s.orderContext.deleteAll(ctx); err != nil {
			errList = append(errList, err)
			if !s.lastSeen.IsZero() {
				r.restore(id, s)
			}
			continue
		}
		evicted = append(evicted, id)
	}
	slices.Sort(evicted)
	return evicted, errors.Join(errList...)
}

// collectIdle takes the idle sessions out of the registry and marks them,
// together with the stored sessions nobody has open, as evicting. Stored-only
// sessions get a zero lastSeen.
func (r *Registry) collectIdle(deadline time.Time, stored []string) (map[string]*session, chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	victims := make(map[string]*session)
	for id, s := range r.sessions {
		if s.lastSeen.After(deadline) || s.orderContext.Subscribers() > 0 {
			continue
		}
		victims[id] = s
		delete(r.sessions, id)
	}
	for _, id := range stored {
		if _, open := r.sessions[id]; open {
			continue
		}
		if _, busy := r.evicting[id]; busy {
			continue
		}
		if _, ok := victims[id]; ok {
			continue
		}
		orderContext, err := NewContext(id, r.uowFactory, r.logger)
		if err != nil {
			r.logger.Warn("stored session has an invalid id", "session", id, "error", err)
			continue
		}
		victims[id] = &session{orderContext: orderContext}
	}

	done := make(chan struct{})
	for id := range victims {
		r.evicting[id] = done
	}
	return victims, done
}

// restore puts back a session whose lines could not be deleted.
func (r *Registry) restore(id string, s *session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		r.sessions[id] = s
	}
}
