// Package metrics exposes Prometheus instrumentation for the onboarding
// service on a private registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation labels.
const (
	OpRegister    = "register"
	OpSaveDraft   = "save_draft"
	OpUpdateDraft = "update_draft"
	OpSubmitDraft = "submit_draft"
	OpGet         = "get"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

type Metrics struct {
	registry          *prometheus.Registry
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	DocumentsStored   prometheus.Counter
	DocumentBytes     prometheus.Histogram
	FieldValidations  *prometheus.CounterVec
	CacheLookups      *prometheus.CounterVec
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_operations_total",
			Help: "Account request operations by outcome",
		}, []string{"operation", "outcome"}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onboarding_operation_duration_seconds",
			Help:    "Duration of account request operations",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
		DocumentsStored: f.NewCounter(prometheus.CounterOpts{
			Name: "onboarding_documents_stored_total",
			Help: "Identity documents written to storage",
		}),
		DocumentBytes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "onboarding_document_size_bytes",
			Help:    "Size of stored identity documents",
			Buckets: prometheus.ExponentialBuckets(16<<10, 4, 6),
		}),
		FieldValidations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_field_validations_total",
			Help: "Single-field validation requests",
		}, []string{"field", "valid"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_cache_lookups_total",
			Help: "Request cache lookups by result",
		}, []string{"result"}),
	}
}

// ObserveOperation records one finished operation started at start.
func (m *Metrics) ObserveOperation(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.Operations.WithLabelValues(op, outcome).Inc()
	m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveDocument(size int64) {
	if m == nil {
		return
	}
	m.DocumentsStored.Inc()
	m.DocumentBytes.Observe(float64(size))
}

func (m *Metrics) ObserveValidation(field string, valid bool) {
	if m == nil {
		return
	}
	label := "false"
	if valid {
		label = "true"
	}
	m.FieldValidations.WithLabelValues(field, label).Inc()
}

// ObserveCache records a cache hit or miss.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
