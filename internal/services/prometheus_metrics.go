package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	salesQueries      *prometheus.CounterVec
	populationQueries *prometheus.CounterVec
	queryDuration     *prometheus.HistogramVec
	seededRecords     *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		salesQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_queries_total",
				Help: "Total number of sales statistics queries by operation",
			},
			[]string{"operation"},
		),
		populationQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "population_queries_total",
				Help: "Total number of population queries by operation",
			},
			[]string{"operation"},
		),
		queryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statistics_query_duration_milliseconds",
				Help:    "Statistics query duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		seededRecords: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "seeded_records_total",
				Help: "Number of rows loaded at startup by table",
			},
			[]string{"table"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]

	switch name {
	case "sales_query":
		if operation != "" {
			m.salesQueries.WithLabelValues(operation).Inc()
		}
	case "population_query":
		if operation != "" {
			m.populationQueries.WithLabelValues(operation).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordQueryDuration(name string, duration time.Duration) {
	m.queryDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "seeded_records":
		if table := tags["table"]; table != "" {
			m.seededRecords.WithLabelValues(table).Set(value)
		}
	}
}
