// Package metrics instruments remote calls made by the console services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "usersconsole"

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_requests_total",
			Help:      "Remote API calls by service, operation and outcome.",
		}, []string{"service", "op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_request_duration_seconds",
			Help:      "Latency of remote API calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "op"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

// Observe records one call that started at start and ended with err.
func (m *Metrics) Observe(service, op string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.requests.WithLabelValues(service, op, outcome).Inc()
	m.duration.WithLabelValues(service, op).Observe(time.Since(start).Seconds())
}
