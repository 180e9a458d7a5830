// Package retry runs fallible operations under a bounded attempt policy.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy bounds how an operation is retried.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// BaseDelay is the wait before the second attempt.
	BaseDelay time.Duration
	// Multiplier grows the delay between attempts. Values <= 1 keep it constant.
	Multiplier float64
	// MaxDelay caps the delay when Multiplier > 1. Zero means no cap.
	MaxDelay time.Duration
	// Retryable reports whether a failure is worth another attempt. Nil retries everything.
	Retryable func(error) bool
	// OnRetry is called before each wait with the failure and the delay.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// Do runs op until it succeeds, returns a non-retryable error, exhausts the
// attempts or ctx is done. The last error is returned unwrapped.
func Do[T any](ctx context.Context, policy Policy, op func(ctx context.Context) (T, error)) (T, error) {
	attempts := max(policy.MaxAttempts, 1)
	attempt := 0

	operation := func() (T, error) {
		attempt++
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, backoff.Permanent(err)
		}

		res, err := op(ctx)
		if err != nil && policy.Retryable != nil && !policy.Retryable(err) {
			return res, backoff.Permanent(err)
		}

		return res, err
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(policy.backOff()),
		backoff.WithMaxTries(uint(attempts)),
	}
	if policy.OnRetry != nil {
		opts = append(opts, backoff.WithNotify(func(err error, delay time.Duration) {
			policy.OnRetry(attempt, err, delay)
		}))
	}

	return backoff.Retry(ctx, operation, opts...)
}

// Run is Do for operations without a result.
func Run(ctx context.Context, policy Policy, op func(ctx context.Context) error) error {
	_, err := Do(ctx, policy, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})

	return err
}

func (p Policy) backOff() backoff.BackOff {
	if p.BaseDelay <= 0 {
		return &backoff.ZeroBackOff{}
	}

	if p.Multiplier <= 1 {
		return backoff.NewConstantBackOff(p.BaseDelay)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = 0
	b.MaxInterval = p.MaxDelay
	if b.MaxInterval <= 0 {
		b.MaxInterval = time.Duration(1<<63 - 1)
	}

	return b
}
