package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	analyses    *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	ingested    prometheus.Counter
	latency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analyses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solar_analyses_total",
				Help: "Total number of completed analytics operations",
			},
			[]string{"operation"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solar_analysis_errors_total",
				Help: "Total number of rejected or failed analytics operations",
			},
			[]string{"operation", "kind"},
		),
		ingested: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "solar_sales_items_ingested_total",
				Help: "Total sales line items ingested from the message bus",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "solar_operation_duration_seconds",
				Help:    "Duration of analytics operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis records a completed analytics operation.
func (r *Recorder) RecordAnalysis(operation string) {
	r.analyses.WithLabelValues(operation).Inc()
}

// RecordError records a failed analytics operation by error kind.
func (r *Recorder) RecordError(operation, kind string) {
	r.errorsTotal.WithLabelValues(operation, kind).Inc()
}

// RecordIngested records sales line items stored from the bus.
func (r *Recorder) RecordIngested(count int) {
	r.ingested.Add(float64(count))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(operation string, seconds float64) {
	r.latency.WithLabelValues(operation).Observe(seconds)
}
