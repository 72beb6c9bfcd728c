package gen

import (
	"context"
	"log"
	"time"
)

const (
	// maxAttempts bounds how many times a single generation call is issued
	// before the failure escalates.
	maxAttempts = 5
	// baseRetryDelay is the sleep before the first retry; it doubles after
	// every failed attempt.
	baseRetryDelay = time.Second
)

// retrySleep waits for d or until the context is cancelled. Swapped out in
// tests to avoid real delays.
var retrySleep = func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// withRetry runs op with bounded exponential backoff. Transient failures are
// retried up to maxAttempts total attempts; non-transient failures and
// exhausted retries propagate immediately as *GenerationError. op must not
// mutate caller state, so a failed call is always safe to re-issue.
func withRetry[T any](ctx context.Context, title string, op func(context.Context) (T, error)) (T, error) {
	var zero T
	delay := baseRetryDelay

	for attempt := 1; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		genErr := classify(title, err)
		if !genErr.Transient || attempt >= maxAttempts {
			return zero, genErr
		}

		log.Printf("[RETRY] %s: attempt %d/%d failed, retrying in %s: %v", title, attempt, maxAttempts, delay, err)
		if err := retrySleep(ctx, delay); err != nil {
			return zero, &GenerationError{Title: title, Message: "The request was cancelled", Err: err}
		}
		delay *= 2
	}
}
