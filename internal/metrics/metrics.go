// Package metrics exposes Prometheus instrumentation for the ingest pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the namespace for all trendscout metrics.
	Namespace = "trendscout"

	// IngestSubsystem groups pipeline metrics.
	IngestSubsystem = "ingest"
)

// Metrics holds the Prometheus metrics for the ingest pipeline.
type Metrics struct {
	RecordsIngested *prometheus.CounterVec
	RecordsUpdated  *prometheus.CounterVec
	RecordsSkipped  *prometheus.CounterVec
	FetchErrors     *prometheus.CounterVec
	RunsTotal       prometheus.Counter
	RunDurationSecs prometheus.Histogram
	RecordsInStore  prometheus.Gauge
}

// New creates and registers the pipeline metrics. A nil registerer falls back
// to the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RecordsIngested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: IngestSubsystem,
				Name:      "records_ingested_total",
				Help:      "New records created, by source",
			},
			[]string{"source"},
		),
		RecordsUpdated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: IngestSubsystem,
				Name:      "records_updated_total",
				Help:      "Existing records refreshed by a re-ingested payload, by source",
			},
			[]string{"source"},
		),
		RecordsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: IngestSubsystem,
				Name:      "records_skipped_total",
				Help:      "Payloads dropped as duplicates, by source",
			},
			[]string{"source"},
		),
		FetchErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: IngestSubsystem,
				Name:      "fetch_errors_total",
				Help:      "Source fetches that failed outright, by source",
			},
			[]string{"source"},
		),
		RunsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: IngestSubsystem,
				Name:      "runs_total",
				Help:      "Completed ingest runs",
			},
		),
		RunDurationSecs: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: IngestSubsystem,
				Name:      "run_duration_seconds",
				Help:      "Wall time of a full ingest run",
				Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
			},
		),
		RecordsInStore: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "records_in_store",
				Help:      "Records currently held in the store",
			},
		),
	}
}
