// Package metrics counts signing and verification outcomes.
//
// Counters live on a private registry so tests and embedders can create as
// many Metrics as they like. A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "xeddsa"

// Metrics holds the counters for one process or service graph.
type Metrics struct {
	registry      *prometheus.Registry
	signatures    prometheus.Counter
	signFailures  *prometheus.CounterVec
	verifications *prometheus.CounterVec
}

// New registers a fresh set of counters on a new registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		signatures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signatures_total",
			Help:      "How many signatures were produced.",
		}),
		signFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sign_failures_total",
				Help:      "How many signing attempts failed, by reason.",
			},
			[]string{"reason"},
		),
		verifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verifications_total",
				Help:      "How many signatures were checked, by result.",
			},
			[]string{"result"},
		),
	}
}

// Registry returns the registry the counters are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Signed records a successful signature.
func (m *Metrics) Signed() {
	if m == nil {
		return
	}
	m.signatures.Inc()
}

// SignFailed records a failed signing attempt.
func (m *Metrics) SignFailed(reason string) {
	if m == nil {
		return
	}
	m.signFailures.WithLabelValues(reason).Inc()
}

// Verified records the outcome of a verification.
func (m *Metrics) Verified(ok bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if ok {
		result = "valid"
	}
	m.verifications.WithLabelValues(result).Inc()
}

// WriteFile writes the current counter values to path in the Prometheus
// text format, for collection by the node exporter's textfile collector.
func (m *Metrics) WriteFile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
