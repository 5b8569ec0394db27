package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLoginRateLimiter is the single-instance fallback when redis is not
// configured. Failure timestamps are kept per key and pruned on access.
type MemoryLoginRateLimiter struct {
	mu          sync.Mutex
	failures    map[string][]time.Time
	maxFailures int
	window      time.Duration
}

func NewMemoryLoginRateLimiter(maxFailures int, window time.Duration) *MemoryLoginRateLimiter {
	if maxFailures <= 0 {
		maxFailures = DefaultMaxFailures
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryLoginRateLimiter{
		failures:    make(map[string][]time.Time),
		maxFailures: maxFailures,
		window:      window,
	}
}

func (l *MemoryLoginRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.prune(key)) < l.maxFailures, nil
}

func (l *MemoryLoginRateLimiter) RecordFailure(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.failures[key] = append(l.prune(key), time.Now())
	return nil
}

func (l *MemoryLoginRateLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.failures, key)
	return nil
}

// prune drops failures outside the window. Caller holds the lock.
func (l *MemoryLoginRateLimiter) prune(key string) []time.Time {
	cutoff := time.Now().Add(-l.window)
	kept := l.failures[key][:0]
	for _, ts := range l.failures[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) == 0 {
		delete(l.failures, key)
		return nil
	}
	l.failures[key] = kept
	return kept
}
