// Package transport executes requests against the OpenAI and Azure OpenAI
// HTTP APIs.
//
// A Transport builds absolute URIs and authentication headers from resolved
// Settings, sends JSON, multipart, GET and DELETE requests, and decodes
// server-sent event streams. Non-success responses become *oaikit.APIError.
//
// # Interceptors
//
// Every request runs through a chain of interceptors:
//
//	errors (when LogErrors is set) -> events -> Stack.Use interceptors -> retry -> send
//
// Customize the chain through a Stack:
//
//	metrics := transport.NewMetrics(prometheus.NewRegistry())
//	t := transport.New(settings, func(s *transport.Stack) {
//	    s.Retry = transport.DefaultRetryConfig()
//	    s.Use(metrics.Interceptor())
//	})
//
// Retries are disabled unless a customizer enables them.
package transport
