package pmu

import "github.com/prometheus/client_golang/prometheus"

// metrics bundles the Prometheus collectors a Driver updates on every
// operation. A Driver constructs its own unregistered metrics by
// default (see newMetrics) so that creating multiple Drivers in tests
// never collides on prometheus.DefaultRegisterer; production callers
// that want these exported register the collectors returned by
// Driver.Metrics themselves.
type metrics struct {
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics() *metrics {
	return &metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rkpmu",
			Name:      "operations_total",
			Help:      "Count of power-domain operations by domain and operation kind.",
		}, []string{"domain", "operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rkpmu",
			Name:      "operation_failures_total",
			Help:      "Count of power-domain operation failures by domain, operation kind, and error kind.",
		}, []string{"domain", "operation", "kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rkpmu",
			Name:      "operation_duration_seconds",
			Help:      "Duration of power-domain operations by domain and operation kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"domain", "operation"}),
	}
}

// Collectors returns the set of collectors a caller can pass to a
// prometheus.Registerer to export driver metrics.
func (m *metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.operations, m.failures, m.duration}
}

func (m *metrics) observe(domain string, operation string, seconds float64, errKind *Kind) {
	m.operations.WithLabelValues(domain, operation).Inc()
	m.duration.WithLabelValues(domain, operation).Observe(seconds)
	if errKind != nil {
		m.failures.WithLabelValues(domain, operation, errKind.String()).Inc()
	}
}
