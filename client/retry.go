package client

import (
	"github.com/spetersoncode/oaikit/internal/retry"
	"github.com/spetersoncode/oaikit/transport"
)

// RetryConfig holds retry configuration parameters.
type RetryConfig = transport.RetryConfig

// RetryEvent represents an observable occurrence during retry execution.
type RetryEvent = transport.RetryEvent

// RetryEventType identifies the kind of event occurring during retry execution.
type RetryEventType = retry.EventType

// Retry event type constants.
const (
	RetryEventAttemptStart  = retry.EventAttemptStart
	RetryEventAttemptFailed = retry.EventAttemptFailed
	RetryEventRetrying      = retry.EventRetrying
	RetryEventSuccess       = retry.EventSuccess
	RetryEventExhausted     = retry.EventExhausted
)

// DefaultRetryConfig returns the backoff used by WithRetry when enabled:
//   - 5 max attempts
//   - 1 second initial delay
//   - 30 second max delay
//   - 2x exponential multiplier
//   - 10% jitter
func DefaultRetryConfig() RetryConfig {
	return transport.DefaultRetryConfig()
}

// DisabledRetryConfig returns a configuration that disables retries (single attempt).
func DisabledRetryConfig() RetryConfig {
	return transport.DisabledRetryConfig()
}

// WithRetry enables retries of transient errors (rate limits, timeouts, 5xx).
// Clients do not retry unless this or a transport customizer says so.
func WithRetry(cfg RetryConfig) Option {
	return WithTransport(func(s *transport.Stack) { s.Retry = cfg })
}

// IsTransientError determines if an error is transient and should be retried.
// It checks for rate limits, server errors, network timeouts, and connection issues.
func IsTransientError(err error) bool {
	return retry.IsTransient(err)
}
