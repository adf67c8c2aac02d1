package planner

import (
	"context"
	"math"
	"strings"
	"time"
)

// retrier provides basic retry with exponential backoff for provider calls
type retrier struct {
	maxRetries        int
	retryDelay        time.Duration
	backoffMultiplier float64
}

func newRetrier(maxRetries int, retryDelay time.Duration) *retrier {
	return &retrier{
		maxRetries:        maxRetries,
		retryDelay:        retryDelay,
		backoffMultiplier: 2.0,
	}
}

// execute runs fn, retrying retryable failures until the attempt budget is
// spent or the context is done
func (r *retrier) execute(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxRetries {
			break
		}
		if !isRetryable(err) {
			return err
		}

		delay := time.Duration(float64(r.retryDelay) * math.Pow(r.backoffMultiplier, float64(attempt)))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

// isRetryable classifies provider errors. Auth and client errors never
// retry; network errors, timeouts, 5xx and rate limits do.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "unauthorized") || strings.Contains(msg, "forbidden") {
		return false
	}
	if strings.Contains(msg, "400") || strings.Contains(msg, "404") {
		return false
	}

	return true
}
