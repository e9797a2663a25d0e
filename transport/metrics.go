package transport

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spetersoncode/oaikit"
)

// Metrics records Prometheus metrics for requests passing through a
// transport. It is safe for concurrent use and may be shared by clients.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	errorsTotal      *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg. A nil reg uses the default
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oaikit_requests_total",
				Help: "Total number of API requests made",
			},
			[]string{"method", "status_code", "path"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oaikit_request_duration_seconds",
				Help:    "Duration of API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "status_code", "path"},
		),
		requestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "oaikit_requests_in_flight",
				Help: "Number of API requests currently in flight",
			},
			[]string{"method", "path"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oaikit_errors_total",
				Help: "Total number of failed API requests by error category",
			},
			[]string{"category", "method", "path"},
		),
	}
}

// Interceptor returns an Interceptor that records every request.
//
// Path labels are the request paths as given, so resource ids end up in
// label values; use it with low-cardinality workloads or a relabeling rule.
func (m *Metrics) Interceptor() Interceptor {
	return func(next Handler) Handler {
		return func(ctx context.Context, req *Request) (*oaikit.Response, error) {
			if m == nil {
				return next(ctx, req)
			}

			m.requestsInFlight.WithLabelValues(req.Method, req.Path).Inc()
			defer m.requestsInFlight.WithLabelValues(req.Method, req.Path).Dec()

			start := time.Now()
			resp, err := next(ctx, req)

			status := 0
			switch {
			case err != nil:
				status = oaikit.StatusCodeOf(err)
				m.errorsTotal.WithLabelValues(errorCategory(err), req.Method, req.Path).Inc()
			case resp != nil:
				status = resp.StatusCode
			}
			code := strconv.Itoa(status)
			m.requestsTotal.WithLabelValues(req.Method, code, req.Path).Inc()
			m.requestDuration.WithLabelValues(req.Method, code, req.Path).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

func errorCategory(err error) string {
	switch {
	case oaikit.IsTransient(err):
		return string(oaikit.ErrorTransient)
	case oaikit.IsUserInput(err):
		return string(oaikit.ErrorUserInput)
	case oaikit.IsPermanent(err):
		return string(oaikit.ErrorPermanent)
	default:
		return "network"
	}
}
