// Package retry provides a small bounded-retry helper for flaky read calls.
// The number of attempts and the backoff between them are explicit arguments,
// so the policy is visible at every call site instead of being buried in
// fallback code.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy describes how often and how patiently an operation is retried.
type Policy struct {
	Attempts int           // Total attempts, including the first one. Minimum 1.
	Backoff  time.Duration // Sleep between attempts. Zero means retry immediately.
}

// Do runs fn up to p.Attempts times, sleeping p.Backoff between attempts.
// It returns the first successful result, or the last error once the attempts
// are exhausted. Context cancellation aborts the wait between attempts.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		if p.Backoff > 0 {
			select {
			case <-time.After(p.Backoff):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		} else if err := ctx.Err(); err != nil {
			return zero, err
		}
	}
	return zero, fmt.Errorf("all %d attempts failed, last error: %w", attempts, lastErr)
}
