package transport

import (
	"context"
	"time"

	"github.com/spetersoncode/oaikit"
)

// EventType identifies the kind of event occurring during a request.
type EventType string

const (
	// EventRequestStart fires before a request is sent.
	EventRequestStart EventType = "request_start"

	// EventRequestComplete fires after a request completes successfully.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when a request fails.
	EventRequestError EventType = "request_error"

	// EventRetry fires when a retry event occurs (forwarded from the retry loop).
	EventRetry EventType = "retry"
)

// Event represents an observable occurrence during a request.
type Event struct {
	Type EventType

	Method string
	Path   string

	// StatusCode is the response status, 0 if no response was received.
	StatusCode int

	// RequestID is the server's x-request-id for completed requests.
	RequestID string

	// Duration is the elapsed time for completed requests.
	Duration time.Duration

	// Error contains the error for EventRequestError.
	Error error

	// RetryEvent contains the underlying retry event for EventRetry.
	RetryEvent *RetryEvent

	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
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

// eventInterceptor reports start, completion and failure of every request.
func eventInterceptor(ch chan<- Event) Interceptor {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *Request) (*oaikit.Response, error) {
			start := time.Now()
			emit(ch, Event{Type: EventRequestStart, Method: req.Method, Path: req.Path})

			resp, err := next(ctx, req)
			if err != nil {
				emit(ch, Event{
					Type:       EventRequestError,
					Method:     req.Method,
					Path:       req.Path,
					StatusCode: oaikit.StatusCodeOf(err),
					Duration:   time.Since(start),
					Error:      err,
				})
				return resp, err
			}

			emit(ch, Event{
				Type:       EventRequestComplete,
				Method:     req.Method,
				Path:       req.Path,
				StatusCode: resp.StatusCode,
				RequestID:  resp.RequestID(),
				Duration:   time.Since(start),
			})
			return resp, nil
		}
	}
}

// forwardRetryEvents reads from a retry events channel and forwards events
// as EventRetry events.
func forwardRetryEvents(ch chan<- Event, retryEvents <-chan RetryEvent, req *Request) {
	for re := range retryEvents {
		reCopy := re
		emit(ch, Event{
			Type:       EventRetry,
			Method:     req.Method,
			Path:       req.Path,
			RetryEvent: &reCopy,
		})
	}
}
