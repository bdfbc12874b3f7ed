package auth

import (
	"context"
	"sync"
	"time"

	pkgLog "github.com/nglume/nglume/pkg/log"
)

// RateLimitConfig holds login attempt rate limiting configuration.
type RateLimitConfig struct {
	// MaxAttempts is the maximum failed attempts per key per window.
	MaxAttempts int
	// Window is the sliding time window for counting attempts.
	Window time.Duration
}

// DefaultRateLimitConfig returns defaults suitable for credential login.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxAttempts: 10,
		Window:      time.Minute,
	}
}

// AttemptLimiter tracks failed login attempts per key (email or client IP)
// over a sliding window. In-memory; per-process limits are acceptable for
// credential endpoints since the goal is slowing bruteforce, not quotas.
type AttemptLimiter struct {
	logger pkgLog.Logger
	cfg    RateLimitConfig

	mu       sync.Mutex
	attempts map[string][]time.Time
	clock    func() time.Time
}

// NewAttemptLimiter creates a limiter with the given config.
func NewAttemptLimiter(logger pkgLog.Logger, cfg RateLimitConfig) *AttemptLimiter {
	return &AttemptLimiter{
		logger:   logger,
		cfg:      cfg,
		attempts: make(map[string][]time.Time),
		clock:    time.Now,
	}
}

// Allow reports whether another attempt for the key is permitted.
func (t *AttemptLimiter) Allow(ctx context.Context, key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	recent := t.prune(key)
	if len(recent) >= t.cfg.MaxAttempts {
		t.logger.Warnf(ctx, "internal.auth.AttemptLimiter: rate limit exceeded for %s (%d/%d)",
			key, len(recent), t.cfg.MaxAttempts)
		return false
	}
	return true
}

// Record registers a failed attempt for the key.
func (t *AttemptLimiter) Record(_ context.Context, key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.attempts[key] = append(t.prune(key), t.clock())
}

// Reset clears the key after a successful login.
func (t *AttemptLimiter) Reset(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.attempts, key)
}

// prune drops attempts outside the window. Caller holds the lock.
func (t *AttemptLimiter) prune(key string) []time.Time {
	cutoff := t.clock().Add(-t.cfg.Window)
	kept := t.attempts[key][:0]
	for _, at := range t.attempts[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) == 0 {
		delete(t.attempts, key)
		return nil
	}
	t.attempts[key] = kept
	return kept
}
