package report

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports report snapshots to Prometheus.
type Metrics struct {
	universes prometheus.Gauge
	entropy   prometheus.Histogram
	strata    *prometheus.GaugeVec
	failures  *prometheus.CounterVec
}

// NewMetrics registers the report collectors with reg. A nil reg creates
// unregistered collectors, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		universes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "semverse_registry_universes",
			Help: "Number of universes stored in the registry",
		}),
		entropy: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "semverse_universe_entropy",
			Help:    "Structural entropy of registered universes",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		strata: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "semverse_stratum_universes",
			Help: "Number of universes per entropy stratum",
		}, []string{"bound"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "semverse_conformance_failures_total",
			Help: "Conformance failures by kind",
		}, []string{"kind"}),
	}
}

// Observe records a snapshot.
func (m *Metrics) Observe(r *Report) {
	m.universes.Set(float64(len(r.Universes)))
	for _, u := range r.Universes {
		m.entropy.Observe(float64(u.Entropy))
		if u.Violations > 0 {
			m.failures.WithLabelValues("law_violation").Add(float64(u.Violations))
		}
		if u.Inconsistencies > 0 {
			m.failures.WithLabelValues("structural_inconsistency").Add(float64(u.Inconsistencies))
		}
	}
	for _, s := range r.Strata {
		label := strconv.FormatUint(s.Bound, 10)
		if s.Overflow {
			label = "+Inf"
		}
		m.strata.WithLabelValues(label).Set(float64(len(s.Members)))
	}
}
