package std

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics of a [Mux].
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "pathroute").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

type MetricsOption func(*MetricsConfig)

func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "pathroute",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts requests dispatched by a [Mux]. A nil *Metrics
// records nothing.
//
// Metrics collected:
//   - pathroute_matches_total: Counter of matched requests by route key
//   - pathroute_misses_total: Counter of requests no route matched
type Metrics struct {
	Matches *prometheus.CounterVec
	Misses  prometheus.Counter
}

// NewMetrics registers the mux metrics with the configured registry.
// It panics if the metrics are already registered.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		Matches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "matches_total",
			Help:      "Total number of requests matched by route",
		}, []string{"route"}),

		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "misses_total",
			Help:      "Total number of requests that matched no route",
		}),
	}
}

func (m *Metrics) matched(key string) {
	if m == nil {
		return
	}
	m.Matches.WithLabelValues(key).Inc()
}

func (m *Metrics) missed() {
	if m == nil {
		return
	}
	m.Misses.Inc()
}
