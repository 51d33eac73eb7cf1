// Package metrics provides Prometheus metrics for the cohortsim generator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the simulator.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Generation metrics
	cohortsSampled        prometheus.Counter
	observationsGenerated prometheus.Counter
	samplingDuration      prometheus.Histogram

	// Assembly metrics
	datasetsAssembled prometheus.Counter
	assemblyDuration  prometheus.Histogram
	datasetRows       prometheus.Gauge

	// Failure metrics
	samplingErrors       prometheus.Counter
	schemaMismatches     prometheus.Counter
	specValidationErrors prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "cohortsim",
		subsystem:        "generator",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.cohortsSampled = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cohorts_sampled_total",
		Help:      "Total number of cohort tables generated",
	})

	m.observationsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "observations_generated_total",
		Help:      "Total number of synthetic observations drawn",
	})

	m.samplingDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sampling_duration_seconds",
		Help:      "Histogram of per-cohort sampling duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.datasetsAssembled = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "datasets_assembled_total",
		Help:      "Total number of combined datasets assembled",
	})

	m.assemblyDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assembly_duration_seconds",
		Help:      "Histogram of dataset assembly duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.datasetRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rows",
		Help:      "Row count of the most recently assembled dataset",
	})

	m.samplingErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sampling_errors_total",
		Help:      "Total number of failed cohort sampling attempts",
	})

	m.schemaMismatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "schema_mismatches_total",
		Help:      "Total number of assembly failures due to mismatched columns",
	})

	m.specValidationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "spec_validation_errors_total",
		Help:      "Total number of rejected cohort specifications",
	})
}

// Package-level helpers operating on the global manager.

// RecordCohortSampled increments the generated-cohort counter.
func RecordCohortSampled() {
	if globalManager != nil && globalManager.enabled {
		globalManager.cohortsSampled.Inc()
	}
}

// AddObservations adds to the generated-observation counter.
func AddObservations(n int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.observationsGenerated.Add(float64(n))
	}
}

// ObserveSamplingDuration records a per-cohort sampling duration in seconds.
func ObserveSamplingDuration(seconds float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.samplingDuration.Observe(seconds)
	}
}

// RecordDatasetAssembled increments the assembled-dataset counter.
func RecordDatasetAssembled() {
	if globalManager != nil && globalManager.enabled {
		globalManager.datasetsAssembled.Inc()
	}
}

// ObserveAssemblyDuration records a dataset assembly duration in seconds.
func ObserveAssemblyDuration(seconds float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.assemblyDuration.Observe(seconds)
	}
}

// UpdateDatasetRows sets the row count of the latest assembled dataset.
func UpdateDatasetRows(rows int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.datasetRows.Set(float64(rows))
	}
}

// RecordSamplingError increments the sampling failure counter.
func RecordSamplingError() {
	if globalManager != nil && globalManager.enabled {
		globalManager.samplingErrors.Inc()
	}
}

// RecordSchemaMismatch increments the assembly schema mismatch counter.
func RecordSchemaMismatch() {
	if globalManager != nil && globalManager.enabled {
		globalManager.schemaMismatches.Inc()
	}
}

// RecordSpecValidationError increments the rejected-spec counter.
func RecordSpecValidationError() {
	if globalManager != nil && globalManager.enabled {
		globalManager.specValidationErrors.Inc()
	}
}

// GetRegistry returns the custom registry used by the global manager,
// suitable for exposing via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
