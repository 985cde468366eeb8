// Package retry repeats an operation with backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

// A Backoff returns the pause after the given failed attempt, counted
// from 1.
type Backoff func(attempt int) time.Duration

// Policy bounds how an operation is repeated. The zero value runs the
// operation once.
type Policy struct {
	// Name labels the log records of failed attempts.
	Name      string
	Attempts  int
	Backoff   Backoff
	Retryable func(error) bool
}

func (p Policy) withDefaults() Policy {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	if p.Backoff == nil {
		p.Backoff = ExponentialBackoff(100*time.Millisecond, 5*time.Second)
	}
	return p
}

func (p Policy) retryable(err error) bool {
	var pe permanentError
	if errors.As(err, &pe) {
		return false
	}
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }

func (e permanentError) Unwrap() error { return e.err }

// Permanent marks err so that no further attempts are made.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{err}
}

// ExponentialBackoff doubles base on every attempt up to ceil and adds up
// to 50% jitter.
func ExponentialBackoff(base, ceil time.Duration) Backoff {
	return func(attempt int) time.Duration {
		d := base << (attempt - 1)
		if d <= 0 || d > ceil {
			d = ceil
		}
		if half := int64(d / 2); half > 0 {
			d += time.Duration(rand.Int64N(half + 1))
		}
		return d
	}
}

func ConstantBackoff(d time.Duration) Backoff {
	return func(int) time.Duration { return d }
}

func Do(ctx context.Context, p Policy, fn func(context.Context) error) error {
	_, err := Value(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Value runs fn until it succeeds, the attempts run out, the error is not
// retryable or ctx is done. The last error of fn is returned; a permanent
// mark is stripped.
func Value[T any](
	ctx context.Context, p Policy, fn func(context.Context) (T, error),
) (T, error) {
	const op = "retry.Value"

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	p = p.withDefaults()
	log := slog.With("op", op, "name", p.Name)

	for attempt := 1; ; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}

		if !p.retryable(err) {
			var pe permanentError
			if errors.As(err, &pe) {
				err = pe.err
			}
			return zero, err
		}
		if attempt == p.Attempts {
			return zero, err
		}

		wait := p.Backoff(attempt)
		log.Debug("attempt failed", "attempt", attempt, "wait", wait, "err", err)

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-time.After(wait):
		}
	}
}
