package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/internal/retry"
)

// Handler performs one logical request.
type Handler func(ctx context.Context, req *Request) (*oaikit.Response, error)

// Interceptor wraps a Handler. Interceptors registered with Stack.Use run in
// registration order, the first one outermost.
type Interceptor func(next Handler) Handler

// RetryConfig holds retry configuration parameters.
type RetryConfig = retry.Config

// RetryEvent represents an observable occurrence during retry execution.
type RetryEvent = retry.Event

// DefaultRetryConfig returns a backoff configuration suited to rate limits.
func DefaultRetryConfig() RetryConfig {
	return retry.DefaultConfig()
}

// DisabledRetryConfig returns a configuration that disables retries (single attempt).
func DisabledRetryConfig() RetryConfig {
	return retry.Disabled()
}

// Stack is the customization surface handed to transport customizers.
//
//	c, err := client.New(client.WithTransport(func(s *transport.Stack) {
//	    s.Retry = transport.DefaultRetryConfig()
//	    s.Use(metrics.Interceptor())
//	}))
type Stack struct {
	// HTTPClient executes requests. Its Timeout is left alone; the request
	// timeout is applied per request through the context.
	HTTPClient *http.Client

	// Retry configures retries of transient failures. Retries are disabled
	// unless a customizer enables them.
	Retry RetryConfig

	// Logger receives error logs when error logging is enabled.
	Logger *slog.Logger

	// Events is an optional channel for request lifecycle events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	interceptors []Interceptor
}

// Use appends interceptors to the stack.
func (s *Stack) Use(interceptors ...Interceptor) {
	s.interceptors = append(s.interceptors, interceptors...)
}

// Interceptors returns the registered interceptors in order.
func (s *Stack) Interceptors() []Interceptor {
	return append([]Interceptor(nil), s.interceptors...)
}

func defaultStack() Stack {
	return Stack{
		HTTPClient: &http.Client{},
		Retry:      retry.Disabled(),
		Logger:     slog.Default(),
		UserAgent:  "oaikit/" + oaikit.Version,
	}
}

// chain wraps h so that interceptors[0] is outermost.
func chain(h Handler, interceptors ...Interceptor) Handler {
	for i := len(interceptors) - 1; i >= 0; i-- {
		h = interceptors[i](h)
	}
	return h
}
