// Package ratelimit implements a per-key sliding-window request counter
// used in front of every externally reachable endpoint.
//
// Guarantees are per-process and best-effort: the limiter is abuse
// mitigation, not a hard quota, and is not linearizable across processes.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of a single Check call.
type Decision struct {
	Allowed bool

	// RetryAfter is how long the caller should wait before retrying.
	// Zero when Allowed.
	RetryAfter time.Duration
}

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter tracks request counts per caller key within a fixed window.
//
// Each key holds a count and a window-reset timestamp. A request before the
// reset increments the count; past the configured maximum the request is
// limited with the time remaining until reset. A request after the reset
// starts a fresh window of count 1. Expired entries are purged by a
// periodic sweep, not on every check, so one-shot callers cannot grow the
// map unboundedly while the hot path stays cheap.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	max    int
	window time.Duration

	// now is swappable for tests.
	now func() time.Time

	sweepMu     sync.Mutex
	sweepCancel context.CancelFunc
	sweepWG     sync.WaitGroup
}

// NewLimiter creates a Limiter allowing max requests per window per key.
// The sweeper is idle until StartSweeping is called.
func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     time.Now,
	}
}

// Check records one request for key and decides whether it may proceed.
// Safe for concurrent use; increments on the same key never lose counts.
func (l *Limiter) Check(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.window)}
		return Decision{Allowed: true}
	}

	if e.count >= l.max {
		return Decision{Allowed: false, RetryAfter: e.resetAt.Sub(now)}
	}

	e.count++
	return Decision{Allowed: true}
}

// Sweep removes entries whose window has already closed. Called
// periodically by the sweep goroutine; exported so tests can drive it
// directly.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if now.After(e.resetAt) {
			delete(l.entries, key)
		}
	}
}

// StartSweeping launches the background sweep goroutine, stopping any
// previous one first. The goroutine exits when ctx is cancelled or
// StopSweeping is called. If interval is zero or negative it defaults to
// one minute.
func (l *Limiter) StartSweeping(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	l.StopSweeping()

	l.sweepMu.Lock()
	sweepCtx, cancel := context.WithCancel(ctx)
	l.sweepCancel = cancel
	l.sweepWG.Add(1)
	l.sweepMu.Unlock()

	go func() {
		defer l.sweepWG.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-t.C:
				l.Sweep()
			}
		}
	}()
}

// StopSweeping cancels the sweep goroutine and blocks until it has exited.
// Safe to call when no sweep is running.
func (l *Limiter) StopSweeping() {
	l.sweepMu.Lock()
	cancel := l.sweepCancel
	l.sweepCancel = nil
	l.sweepMu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.sweepWG.Wait()
}

// Len returns the number of tracked keys. Used by tests and the sweep
// worker's log line.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
