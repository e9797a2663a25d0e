package retry

import (
	"context"
	"time"

	"github.com/spetersoncode/oaikit"
)

// Do calls fn until it succeeds, fails with an error cfg does not retry, or
// runs out of attempts. It returns the last error in the latter cases.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	return DoWithEvents(ctx, cfg, nil, fn)
}

// DoWithEvents is Do with progress reported on events (which may be nil).
// Sends never block; events that do not fit are dropped.
func DoWithEvents[T any](ctx context.Context, cfg Config, events chan<- Event, fn func() (T, error)) (T, error) {
	var zero T
	total := cfg.attempts()

	var err error
	for attempt := 1; attempt <= total; attempt++ {
		emit(events, Event{Type: EventAttemptStart, Attempt: attempt, MaxAttempts: total})

		var result T
		result, err = fn()
		if err == nil {
			emit(events, Event{Type: EventSuccess, Attempt: attempt, MaxAttempts: total})
			return result, nil
		}

		failure := failed(EventAttemptFailed, attempt, total, err)
		failure.Retryable = cfg.retryable(err)
		emit(events, failure)
		if !failure.Retryable {
			return zero, err
		}
		if attempt == total {
			break
		}

		delay := backoff(cfg.Delay(attempt-1), err)
		emit(events, Event{Type: EventRetrying, Attempt: attempt, MaxAttempts: total, Delay: delay})
		if werr := wait(ctx, delay); werr != nil {
			return zero, werr
		}
	}

	emit(events, failed(EventExhausted, total, total, err))
	return zero, err
}

// backoff is the computed delay, raised to the server's Retry-After hint.
func backoff(computed time.Duration, err error) time.Duration {
	return max(computed, oaikit.RetryAfterOf(err))
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
