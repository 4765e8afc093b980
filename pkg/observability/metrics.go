// Package observability exposes Prometheus instrumentation for the
// mutation pipeline: per-tool outcomes, turn latency, and token usage.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors for the mutation pipeline.
// A nil *Metrics is valid and records nothing, so instrumentation stays
// optional for library consumers.
type Metrics struct {
	mutations    *prometheus.CounterVec
	turnDuration prometheus.Histogram
	tokens       *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on reg.
// Pass prometheus.DefaultRegisterer for the process-global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easel",
			Name:      "mutations_total",
			Help:      "Mutation operations applied, by tool and outcome.",
		}, []string{"tool", "outcome"}),
		turnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "easel",
			Name:      "turn_duration_seconds",
			Help:      "Wall time of interactive generation turns.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
		}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "easel",
			Name:      "model_tokens_total",
			Help:      "Tokens consumed by model calls, by model and kind.",
		}, []string{"model", "kind"}),
	}
	reg.MustRegister(m.mutations, m.turnDuration, m.tokens)
	return m
}

// ObserveMutation records one applied or failed mutation.
func (m *Metrics) ObserveMutation(tool string, success bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.mutations.WithLabelValues(tool, outcome).Inc()
}

// ObserveTurn records the duration of one generation turn.
func (m *Metrics) ObserveTurn(d time.Duration) {
	if m == nil {
		return
	}
	m.turnDuration.Observe(d.Seconds())
}

// ObserveUsage records model token consumption for one turn.
func (m *Metrics) ObserveUsage(model string, promptTokens, completionTokens int) {
	if m == nil {
		return
	}
	m.tokens.WithLabelValues(model, "prompt").Add(float64(promptTokens))
	m.tokens.WithLabelValues(model, "completion").Add(float64(completionTokens))
}
