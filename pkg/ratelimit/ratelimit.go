// Package ratelimit counts requests per key over fixed windows.
//
// A Store holds the counters. MemoryStore is enough for a single instance;
// several instances behind a balancer must share a RedisStore.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Counter is the state of one key's current window after a hit.
type Counter struct {
	Hits    int64
	ResetAt time.Time
}

type Store interface {
	// Hit adds one request to key's window, opening a new window of the given
	// length when none is active.
	Hit(ctx context.Context, key string, window time.Duration) (Counter, error)
}

type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

type Limiter struct {
	store  Store
	max    int
	window time.Duration
	now    func() time.Time
}

func New(store Store, max int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		max:    max,
		window: window,
		now:    time.Now,
	}
}

func (l *Limiter) Max() int {
	return l.max
}

func (l *Limiter) Window() time.Duration {
	return l.window
}

// Allow registers a request for key. Requests past max inside one window are refused
// until the window resets.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	cnt, err := l.store.Hit(ctx, key, l.window)
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: store hit for %s failed: %w", key, err)
	}

	d := Decision{
		Allowed: cnt.Hits <= int64(l.max),
		Limit:   l.max,
		ResetAt: cnt.ResetAt,
	}
	if remaining := int64(l.max) - cnt.Hits; remaining > 0 {
		d.Remaining = int(remaining)
	}
	if !d.Allowed {
		d.RetryAfter = cnt.ResetAt.Sub(l.now())
		if d.RetryAfter < 0 {
			d.RetryAfter = 0
		}
	}
	return d, nil
}
