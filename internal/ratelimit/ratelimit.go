package ratelimit

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

//go:generate go run go.uber.org/mock/mockgen -source=ratelimit.go -destination=mocks/mock.go

// Limiter decides whether a user may perform one more feed action
type Limiter interface {
	Allow(userID string) bool
}

// InMemoryLimiter keeps one token bucket per user
type InMemoryLimiter struct {
	users map[string]*rate.Limiter
	mu    sync.Mutex
	clock clockwork.Clock
	r     rate.Limit // tokens added per second
	b     int        // bucket size
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(clock, 1, 5*time.Second, 3) -> one action every 5 seconds, burst of 3
func NewInMemoryLimiter(clock clockwork.Clock, requests int, per time.Duration, burst int) *InMemoryLimiter {
	r := rate.Inf
	if requests > 0 && per > 0 {
		r = rate.Every(per / time.Duration(requests))
	}
	if burst < 1 {
		burst = 1
	}
	return &InMemoryLimiter{
		users: make(map[string]*rate.Limiter),
		clock: clock,
		r:     r,
		b:     burst,
	}
}

var _ Limiter = (*InMemoryLimiter)(nil)

// Allow checks if a user is allowed to perform an action
func (l *InMemoryLimiter) Allow(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.users[userID]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.users[userID] = limiter
	}

	return limiter.AllowN(l.clock.Now(), 1)
}
