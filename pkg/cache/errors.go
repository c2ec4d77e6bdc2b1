package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks backend connection failures (timeouts, refused or reset
// connections).
var ErrNetwork = errors.New("network error")

// ErrConflict reports an update that kept losing to concurrent writers.
var ErrConflict = errors.New("concurrent update conflict")

// RetryableError wraps an error to indicate it should trigger a retry.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable checks if an error is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// Backoff is a retry schedule: up to Attempts calls, sleeping Initial
// before the second and doubling after each failure.
type Backoff struct {
	Attempts int
	Initial  time.Duration
}

// DefaultBackoff suits a Redis round trip on a local network.
var DefaultBackoff = Backoff{Attempts: 3, Initial: 100 * time.Millisecond}

// RetryWithBackoff runs fn on the DefaultBackoff schedule.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return DefaultBackoff.Retry(ctx, fn)
}

// Retry calls fn until it succeeds, returns an error not wrapped with
// Retryable, or the attempts run out. It returns the last error, or
// ctx.Err() if ctx ends while waiting.
func (b Backoff) Retry(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Initial
	var lastErr error

	for i := 0; i < attempts; i++ {
		if lastErr = fn(); lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}
