package retry

import (
	"time"

	"github.com/spetersoncode/oaikit"
)

// EventType names a step of a retried call.
type EventType string

const (
	EventAttemptStart  EventType = "attempt_start"
	EventAttemptFailed EventType = "attempt_failed"
	EventRetrying      EventType = "retrying"
	EventSuccess       EventType = "success"
	EventExhausted     EventType = "exhausted"
)

// Event reports progress of a call made through DoWithEvents.
type Event struct {
	Type EventType

	// Attempt is 1-indexed.
	Attempt     int
	MaxAttempts int

	// Error is set on EventAttemptFailed and EventExhausted.
	Error error

	// StatusCode is the HTTP status of a failed attempt, or 0 when the
	// failure never reached the server.
	StatusCode int

	// RetryAfter is the server's Retry-After hint for a failed attempt.
	RetryAfter time.Duration

	// Delay is the wait before the next attempt (EventRetrying only).
	Delay time.Duration

	Retryable bool
	Timestamp time.Time
}

// failed builds the event for an attempt that returned err.
func failed(typ EventType, attempt, maxAttempts int, err error) Event {
	return Event{
		Type:        typ,
		Attempt:     attempt,
		MaxAttempts: maxAttempts,
		Error:       err,
		StatusCode:  oaikit.StatusCodeOf(err),
		RetryAfter:  oaikit.RetryAfterOf(err),
		Retryable:   IsTransient(err),
	}
}

// emit stamps event and sends it unless ch is nil or full.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
	}
}
