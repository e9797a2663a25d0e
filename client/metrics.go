package client

import "github.com/spetersoncode/oaikit/transport"

// WithMetrics records request counts, latencies and error categories into m.
// The interceptor runs outside the retry loop, so a retried call counts once.
func WithMetrics(m *transport.Metrics) Option {
	return WithTransport(func(s *transport.Stack) {
		s.Use(m.Interceptor())
	})
}
