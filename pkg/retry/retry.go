package retry

import (
	"context"
	"math/rand"
	"time"
)

// Policy bounds how often and how fast Do re-attempts a failing call.
type Policy struct {
	MaxAttempts int           // e.g. 3
	BaseDelay   time.Duration // e.g. 100ms
	MaxDelay    time.Duration // cap for the backoff, e.g. 5s
	Jitter      time.Duration // random extra wait, <= BaseDelay recommended

	// OnRetry is an optional hook for logging.
	OnRetry func(attempt int, wait time.Duration, err error)
}

// Do runs fn until it succeeds, the policy is exhausted or ctx is cancelled.
// The wait between attempts grows exponentially from BaseDelay up to MaxDelay.
func Do(ctx context.Context, p Policy, fn func(context.Context) error) error {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = 100 * time.Millisecond
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = 5 * time.Second
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == p.MaxAttempts {
			break
		}

		wait := p.BaseDelay << (attempt - 1)
		if wait > p.MaxDelay {
			wait = p.MaxDelay
		}
		if p.Jitter > 0 {
			wait += time.Duration(rand.Int63n(int64(p.Jitter)))
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, wait, lastErr)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
