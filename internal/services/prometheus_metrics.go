package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricRowsGenerated      = "fixture.rows.generated"
	MetricGenerationRun      = "fixture.generation.run"
	MetricGenerationDuration = "fixture.generation"
	MetricAmount             = "fixture.amount"
)

type PrometheusMetrics struct {
	rowsGenerated      prometheus.Counter
	generationRuns     *prometheus.CounterVec
	generationDuration prometheus.Histogram
	amounts            prometheus.Histogram
}

// NewPrometheusMetrics registers the generator metrics on reg. A nil reg
// falls back to a private registry so repeated construction never collides.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		rowsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fixture_rows_generated_total",
				Help: "Total number of fixture transaction rows written",
			},
		),
		generationRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixture_generation_runs_total",
				Help: "Total number of fixture generation runs by outcome",
			},
			[]string{"status"},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fixture_generation_duration_milliseconds",
				Help:    "Fixture generation run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		amounts: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fixture_transaction_amount",
				Help:    "Distribution of generated transaction amounts",
				Buckets: prometheus.LinearBuckets(-500, 100, 11),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricRowsGenerated:
		m.rowsGenerated.Inc()
	case MetricGenerationRun:
		if status := tags["status"]; status != "" {
			m.generationRuns.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricGenerationDuration:
		m.generationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordValue(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAmount:
		m.amounts.Observe(value)
	}
}
