package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryWithBackoffSucceedsFirstTry(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		attempts++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoffRecoversAfterFailures(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoffReturnsLastError(t *testing.T) {
	lastErr := errors.New("still down")
	attempts := 0
	err := RetryWithBackoff(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return lastErr
	})
	assert.Equal(t, lastErr, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoffStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := RetryWithBackoff(ctx, 5, 50*time.Millisecond, func(ctx context.Context) error {
		attempts++
		cancel()
		return errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoffDefaultsApply(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), 0, time.Millisecond, func(ctx context.Context) error {
		attempts++
		return errors.New("down")
	})
	assert.Error(t, err)
	assert.Equal(t, DefaultRetryAttempts, attempts)
}
