package utils

import (
	"context"
	"time"
)

const (
	DefaultRetryAttempts  = 3
	DefaultRetryBaseDelay = 500 * time.Millisecond
)

// RetryWithBackoff runs op up to attempts times, doubling the delay between
// tries. It is an opt-in helper: nothing in the fetch path retries on its
// own. The last error is returned when every attempt fails; a cancelled
// context stops the loop early.
func RetryWithBackoff(ctx context.Context, attempts int, baseDelay time.Duration, op func(context.Context) error) error {
	if attempts <= 0 {
		attempts = DefaultRetryAttempts
	}
	if baseDelay <= 0 {
		baseDelay = DefaultRetryBaseDelay
	}

	var lastErr error
	delay := baseDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return lastErr
}
