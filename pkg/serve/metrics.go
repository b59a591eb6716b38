package serve

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus instrumentation.
type MetricsConfig struct {
	// Namespace prefixes every metric name. Defaults to "markout".
	Namespace string

	// Subsystem sits between namespace and name when set.
	Subsystem string

	// ConstLabels are attached to every metric.
	ConstLabels prometheus.Labels

	// Buckets for the render duration histogram. Defaults to
	// prometheus.DefBuckets.
	Buckets []float64

	// Registry receives the metrics. Defaults to
	// prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption customizes the Prometheus instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace overrides the default "markout" namespace.
func WithNamespace(ns string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = ns }
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(sub string) MetricsOption {
	return func(c *MetricsConfig) { c.Subsystem = sub }
}

// WithConstLabels attaches labels to every metric.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets overrides the render duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry directs registration at a custom registry, which tests
// use to avoid polluting the default one.
func WithRegistry(reg prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = reg }
}

// metrics is the instrument set for page serving:
//
//   - markout_pages_rendered_total: renders by path and status
//   - markout_render_duration_seconds: render duration by path
//   - markout_render_bytes: rendered document sizes
//   - markout_render_errors_total: render errors by path
type metrics struct {
	pagesRendered  *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderBytes    prometheus.Histogram
	renderErrors   *prometheus.CounterVec
}

// sizeBuckets spans 1KB to 1MB, enough headroom for any sane HTML
// document.
var sizeBuckets = []float64{1024, 10240, 102400, 1048576}

// A metric name registers only once per registry, so the first
// metrics-enabled Handler creates the instruments and later handlers
// share them regardless of their options.
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "markout",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

func enableMetrics(opts ...MetricsOption) *metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()

	if globalMetrics == nil {
		globalMetrics = newMetrics(cfg)
	}
	return globalMetrics
}

func newMetrics(cfg MetricsConfig) *metrics {
	factory := promauto.With(cfg.Registry)

	return &metrics{
		pagesRendered: factory.NewCounterVec(
			cfg.counterOpts("pages_rendered_total", "Total number of pages rendered"),
			[]string{"path", "status"}),
		renderDuration: factory.NewHistogramVec(
			cfg.histogramOpts("render_duration_seconds", "Page render duration in seconds", cfg.Buckets),
			[]string{"path"}),
		renderBytes: factory.NewHistogram(
			cfg.histogramOpts("render_bytes", "Rendered document size in bytes", sizeBuckets)),
		renderErrors: factory.NewCounterVec(
			cfg.counterOpts("render_errors_total", "Total number of page render errors"),
			[]string{"path"}),
	}
}

func (c MetricsConfig) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   c.Namespace,
		Subsystem:   c.Subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: c.ConstLabels,
	}
}

func (c MetricsConfig) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   c.Namespace,
		Subsystem:   c.Subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: c.ConstLabels,
		Buckets:     buckets,
	}
}
