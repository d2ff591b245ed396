// Package ratelimit paces upstream calls, adapted nearly verbatim from the
// teacher's internal/ratelimit/limiter.go. The teacher keys buckets by
// provider name; this spec has one opaque provider, so buckets are keyed
// by call *reason* instead (SPEC_FULL.md §4.12) — each strategy gets its
// own pacing in front of the shared budget.Tracker ceiling.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// ReasonLimiter paces calls per reason string using a lazily-created
// token bucket per reason, same structure as the teacher's ProviderLimiter.
type ReasonLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// Config is a token-bucket configuration.
type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

// DefaultConfig mirrors the teacher's DefaultConfig: generous enough to
// rarely be the limiting factor in a single 15-call search.
func DefaultConfig() Config {
	return Config{RequestsPerSecond: 10, BurstSize: 20}
}

// NewReasonLimiter constructs a limiter with the given default config,
// applied to any reason that hasn't been given an explicit override.
func NewReasonLimiter(config Config) *ReasonLimiter {
	return &ReasonLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

// NewReasonLimiterWithDefaults is the zero-config constructor.
func NewReasonLimiterWithDefaults() *ReasonLimiter {
	return NewReasonLimiter(DefaultConfig())
}

func (r *ReasonLimiter) limiterFor(reason string) *rate.Limiter {
	r.mu.RLock()
	limiter, exists := r.limiters[reason]
	r.mu.RUnlock()
	if exists {
		return limiter
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if limiter, exists = r.limiters[reason]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(r.defaults.RequestsPerSecond), r.defaults.BurstSize)
	r.limiters[reason] = limiter
	return limiter
}

// SetLimit overrides the bucket for a specific reason.
func (r *ReasonLimiter) SetLimit(reason string, rps float64, burst int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limiters[reason] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until a token for reason is available or ctx is done.
func (r *ReasonLimiter) Wait(ctx context.Context, reason string) error {
	return r.limiterFor(reason).Wait(ctx)
}
