// Package metrics exposes Prometheus counters for minutes processing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the processing metrics. All names are prefixed with "busybee_".
//
//   - busybee_documents_total{source,folder} - documents produced
//   - busybee_llm_requests_total{provider,outcome} - LLM calls by outcome
//   - busybee_llm_cache_total{result} - cache hits and misses
//   - busybee_template_fallbacks_total{kind} - direct assembly used instead of a template
//   - busybee_processing_duration_seconds{mode} - end-to-end processing time
type Metrics struct {
	DocumentsTotal     *prometheus.CounterVec
	LLMRequestsTotal   *prometheus.CounterVec
	CacheTotal         *prometheus.CounterVec
	TemplateFallbacks  *prometheus.CounterVec
	ProcessingDuration *prometheus.HistogramVec
}

// New registers the metrics with reg. Use a fresh registry per test.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DocumentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "busybee_documents_total",
				Help: "Total number of documents produced",
			},
			[]string{"source", "folder"},
		),
		LLMRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "busybee_llm_requests_total",
				Help: "Total number of LLM analysis requests by outcome",
			},
			[]string{"provider", "outcome"},
		),
		CacheTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "busybee_llm_cache_total",
				Help: "LLM response cache lookups",
			},
			[]string{"result"}, // "hit" or "miss"
		),
		TemplateFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "busybee_template_fallbacks_total",
				Help: "Documents assembled directly because no template was available",
			},
			[]string{"kind"},
		),
		ProcessingDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "busybee_processing_duration_seconds",
				Help:    "Time to process one transcript end to end",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"mode"},
		),
	}
}

// ObserveDocument counts a produced document
func (m *Metrics) ObserveDocument(source, folder string) {
	if m == nil {
		return
	}
	m.DocumentsTotal.WithLabelValues(source, folder).Inc()
}

// ObserveLLM counts an LLM request outcome
func (m *Metrics) ObserveLLM(provider, outcome string) {
	if m == nil {
		return
	}
	m.LLMRequestsTotal.WithLabelValues(provider, outcome).Inc()
}

// ObserveCache counts a cache lookup
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheTotal.WithLabelValues(result).Inc()
}

// ObserveTemplateFallback counts a direct assembly fallback
func (m *Metrics) ObserveTemplateFallback(kind string) {
	if m == nil {
		return
	}
	m.TemplateFallbacks.WithLabelValues(kind).Inc()
}

// ObserveDuration records processing time since start
func (m *Metrics) ObserveDuration(mode string, start time.Time) {
	if m == nil {
		return
	}
	m.ProcessingDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}
