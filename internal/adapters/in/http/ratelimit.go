package http

import (
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// pruneThreshold is the number of tracked clients above which fully
	// replenished limiters are dropped.
	pruneThreshold = 1024

	// defaultMaxClients bounds the number of tracked limiters. New clients
	// are refused while the limit is reached.
	defaultMaxClients = 1 << 16

	// sessionsPerAddress scales the bucket of a client address relative to
	// the bucket of a session.
	sessionsPerAddress = 8
)

// RateLimiter hands every session a token bucket and every client address a
// larger one that all sessions behind it draw from as well.
type RateLimiter struct {
	limit      rate.Limit
	burst      int
	maxClients int

	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	nextPrune int
}

// NewRateLimiter allows perSecond requests per session with bursts of burst.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limit:      rate.Limit(perSecond),
		burst:      burst,
		maxClients: defaultMaxClients,
		limiters:   make(map[string]*rate.Limiter),
		nextPrune:  pruneThreshold,
	}
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c.RealIP(), requestSession(c)) {
				return ErrRateLimited
			}
			return next(c)
		}
	}
}

// Len returns the number of tracked limiters.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) allow(address, session string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if session != "" {
		limiter, ok := rl.limiter("session:"+session, 1)
		if !ok || !limiter.Allow() {
			return false
		}
	}

	limiter, ok := rl.limiter("ip:"+address, sessionsPerAddress)
	return ok && limiter.Allow()
}

// limiter returns the bucket of key, creating it with scale times the
// configured rate and burst. It reports false when no more clients can be
// tracked.
func (rl *RateLimiter) limiter(key string, scale int) (*rate.Limiter, bool) {
	if limiter, ok := rl.limiters[key]; ok {
		return limiter, true
	}

	if len(rl.limiters) >= min(rl.nextPrune, rl.maxClients) {
		rl.prune()
		rl.nextPrune = max(pruneThreshold, 2*len(rl.limiters))
	}
	if len(rl.limiters) >= rl.maxClients {
		return nil, false
	}

	limiter := rate.NewLimiter(rl.limit*rate.Limit(scale), rl.burst*scale)
	rl.limiters[key] = limiter
	return limiter, true
}

// prune forgets limiters that refilled completely; a new limiter for the same
// client starts in the same state.
func (rl *RateLimiter) prune() {
	for key, limiter := range rl.limiters {
		if limiter.Tokens() >= float64(limiter.Burst()) {
			delete(rl.limiters, key)
		}
	}
}

func requestSession(c echo.Context) string {
	if id := c.Request().Header.Get(SessionHeader); id != "" {
		return id
	}
	return c.QueryParam(sessionQueryParam)
}
