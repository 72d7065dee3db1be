// Package retry runs operations with exponential backoff and jitter.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
)

// ErrNoAttempts is returned when the config allows zero attempts.
var ErrNoAttempts = errors.New("retry: MaxAttempts must be positive")

// Config describes a retry policy. A zero RetryableErrors list means
// every error is retried.
type Config struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	MaxDelay        time.Duration
	Multiplier      float64
	RetryableErrors []string
}

// DefaultConfig retries up to 5 times starting at 1s, doubling up to 30s.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  5,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// PostgresConfig is DefaultConfig restricted to transient PostgreSQL
// connection failures.
func PostgresConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryableErrors = pgTransientPatterns()
	return cfg
}

// Do runs fn until it succeeds, the policy is exhausted, a
// non-retryable error occurs, or ctx is done.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult is Do for functions that produce a value.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		return zero, ErrNoAttempts
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !cfg.retryable(err) {
			return zero, err
		}
		lastErr = err

		if attempt == cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(cfg.delay(attempt)):
		}
	}
	return zero, lastErr
}

func (cfg Config) retryable(err error) bool {
	if err == nil {
		return false
	}
	if len(cfg.RetryableErrors) == 0 {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range cfg.RetryableErrors {
		if strings.Contains(msg, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// delay is InitialDelay * Multiplier^attempt capped at MaxDelay,
// with ±10% jitter to spread reconnect storms.
func (cfg Config) delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if d > float64(cfg.MaxDelay) {
		d = float64(cfg.MaxDelay)
	}
	//nolint:gosec // jitter needs no cryptographic randomness
	return time.Duration(d + d*0.1*(rand.Float64()*2-1))
}

func pgTransientPatterns() []string {
	return []string{
		"connection refused",
		"connection reset",
		"connection timed out",
		"server closed the connection",
		"too many connections",
		"database system is starting up",
		"network is unreachable",
		"no connection could be made",
		"i/o timeout",
		"dial tcp",
	}
}
