package bridge

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/floatkit-dev/floatkit/pkg/overlay"
)

// MetricsConfig configures the Prometheus instrumentation.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "floatkit").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for dispatch duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
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
		Namespace: "floatkit",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus instruments for one registry.
//
// Metrics collected:
//   - floatkit_events_total: counter of dispatched events by name and status
//   - floatkit_event_duration_seconds: histogram of dispatch duration by name
//   - floatkit_overlay_mounts_total: counter of overlay mounts
//   - floatkit_overlay_patches_total: counter of overlay patches
//   - floatkit_live_overlays: gauge of currently mounted overlays
//
// Create one Metrics per registry and share it across sessions.
type Metrics struct {
	eventsTotal   *prometheus.CounterVec
	eventDuration *prometheus.HistogramVec
	mountsTotal   prometheus.Counter
	patchesTotal  prometheus.Counter
	liveOverlays  prometheus.Gauge
}

// NewMetrics registers the floatkit instruments and returns them.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "events_total",
			Help:        "Total number of bridge events dispatched",
			ConstLabels: config.ConstLabels,
		}, []string{"name", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "event_duration_seconds",
			Help:        "Event dispatch duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"name"}),

		mountsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "overlay_mounts_total",
			Help:        "Total number of floating overlays mounted",
			ConstLabels: config.ConstLabels,
		}),

		patchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "overlay_patches_total",
			Help:        "Total number of overlay content patches",
			ConstLabels: config.ConstLabels,
		}),

		liveOverlays: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "live_overlays",
			Help:        "Number of currently mounted floating overlays",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Middleware returns dispatch middleware that counts and times events.
func (m *Metrics) Middleware() Middleware {
	return func(next Dispatch) Dispatch {
		return func(ev *Event) error {
			start := time.Now()
			err := next(ev)
			m.eventDuration.WithLabelValues(ev.Name).Observe(time.Since(start).Seconds())

			status := "success"
			if err != nil {
				status = "error"
			}
			m.eventsTotal.WithLabelValues(ev.Name, status).Inc()
			return err
		}
	}
}

// InstrumentFactory wraps an overlay factory so mounts, patches, and
// destroys move the overlay counters and the live gauge.
func (m *Metrics) InstrumentFactory(f overlay.Factory) overlay.Factory {
	return overlay.FactoryFunc(func(content overlay.Content, anchor overlay.Anchor, parent string) overlay.Instance {
		inst := f.Mount(content, anchor, parent)
		m.mountsTotal.Inc()
		m.liveOverlays.Inc()
		return &measuredInstance{inner: inst, metrics: m}
	})
}

type measuredInstance struct {
	inner     overlay.Instance
	metrics   *Metrics
	destroyed bool
}

func (i *measuredInstance) Patch(p overlay.Patch) {
	i.inner.Patch(p)
	if p.SetLabel {
		i.metrics.patchesTotal.Inc()
	}
}

func (i *measuredInstance) Destroy() {
	i.inner.Destroy()
	if !i.destroyed {
		i.destroyed = true
		i.metrics.liveOverlays.Dec()
	}
}
