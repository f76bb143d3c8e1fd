package fetch

import (
	"crypto/rand"
	"errors"
	"math"
	"math/big"
	"time"
)

// retryPolicy implements jittered exponential backoff over the typed
// fetch errors.
type retryPolicy struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// shouldRetry decides whether the error warrants another attempt.
// NetworkErrors always do; HTTPErrors only for the transient statuses.
func (p retryPolicy) shouldRetry(err error, attempt int) bool {
	if err == nil || attempt >= p.maxRetries {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Retryable()
	}
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// backoff returns the wait before the next attempt: doubling from the
// base delay, capped, half of it jittered. A server-provided Retry-After
// takes precedence (still capped).
func (p retryPolicy) backoff(err error, attempt int) time.Duration {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.RetryAfter > 0 {
		if httpErr.RetryAfter > p.maxDelay {
			return p.maxDelay
		}
		return httpErr.RetryAfter
	}

	delay := float64(p.baseDelay) * math.Pow(2, float64(attempt))
	if delay > float64(p.maxDelay) {
		delay = float64(p.maxDelay)
	}
	jitter := randomJitter(time.Duration(delay) / 2)
	return time.Duration(delay/2) + jitter
}

func randomJitter(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	bound := big.NewInt(int64(limit))
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return limit / 2
	}
	return time.Duration(n.Int64())
}
