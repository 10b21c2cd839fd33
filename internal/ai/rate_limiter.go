package ai

import (
	"context"

	"golang.org/x/time/rate"

	"agentlab/pkg/errors"
)

// RateLimiter paces outgoing model calls for a single provider.
type RateLimiter struct {
	limiter  *rate.Limiter
	provider ProviderName
}

// NewRateLimiter creates a limiter allowing reqPerSec sustained requests
// with the given burst. A non-positive rate disables throttling.
func NewRateLimiter(provider ProviderName, reqPerSec float64, burst int) *RateLimiter {
	if reqPerSec <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 1), provider: provider}
	}
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(reqPerSec), burst),
		provider: provider,
	}
}

// Wait blocks until the next call may proceed or the context is cancelled.
func (l *RateLimiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return errors.Wrapf(errors.ErrRateLimitExceeded, "provider %s: %v", l.provider, err)
	}
	return nil
}

// Allow reports whether a call may proceed without blocking.
func (l *RateLimiter) Allow() bool {
	return l.limiter.Allow()
}

// Limit returns the configured sustained rate in requests per second.
func (l *RateLimiter) Limit() float64 {
	return float64(l.limiter.Limit())
}
