package caption

import (
	"context"
	"time"
)

// RetryPolicy bounds the generate/validate/dedupe loop. It owns no I/O so
// attempt-exhaustion behavior is testable without a provider.
type RetryPolicy struct {
	MaxAttempts int
	// Backoff is the delay inserted before every attempt after the first.
	Backoff time.Duration
}

// Wait sleeps the configured backoff before the given attempt (1-based).
// It returns early with the context error if the context is cancelled.
func (p RetryPolicy) Wait(ctx context.Context, attempt int) error {
	if attempt <= 1 || p.Backoff <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.Backoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Exhausted reports whether the given 1-based attempt is past the budget.
func (p RetryPolicy) Exhausted(attempt int) bool {
	return attempt > p.MaxAttempts
}
