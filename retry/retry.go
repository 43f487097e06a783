// Package retry provides retry logic with exponential backoff for provider
// API calls. Errors implementing APIError are only retried when their status
// code is transient.
package retry

import (
	"context"
	"math"
	"math/rand"
	"net/http"
	"time"
)

const (
	DefaultMaxAttempts = 4
	DefaultBaseWait    = 1 * time.Second
	DefaultMaxWait     = 30 * time.Second
)

// APIError is implemented by errors that carry an HTTP status code.
type APIError interface {
	error
	StatusCode() int
}

// Option configures a call to Do.
type Option func(*config)

type config struct {
	maxAttempts int
	baseWait    time.Duration
	maxWait     time.Duration
}

func WithMaxAttempts(n int) Option {
	return func(c *config) { c.maxAttempts = n }
}

func WithBaseWait(d time.Duration) Option {
	return func(c *config) { c.baseWait = d }
}

func WithMaxWait(d time.Duration) Option {
	return func(c *config) { c.maxWait = d }
}

// Do runs f until it succeeds, fails permanently, or attempts are exhausted.
// Waits between attempts grow exponentially with a small random jitter.
func Do(ctx context.Context, f func() error, opts ...Option) error {
	c := &config{
		maxAttempts: DefaultMaxAttempts,
		baseWait:    DefaultBaseWait,
		maxWait:     DefaultMaxWait,
	}
	for _, opt := range opts {
		opt(c)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(float64(c.baseWait) * math.Pow(2, float64(attempt-1)))
			if backoff > c.maxWait {
				backoff = c.maxWait
			}
			jitter := time.Duration(rand.Float64() * float64(backoff) * 0.1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff + jitter):
			}
		}
		err := f()
		if err == nil {
			return nil
		}
		lastErr = err
		if apiErr, ok := err.(APIError); ok && !ShouldRetry(apiErr.StatusCode()) {
			return err
		}
	}
	return lastErr
}

// ShouldRetry reports whether the status code indicates a transient failure.
func ShouldRetry(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || // 429
		statusCode == http.StatusInternalServerError || // 500
		statusCode == http.StatusServiceUnavailable || // 503
		statusCode == http.StatusGatewayTimeout // 504
}
