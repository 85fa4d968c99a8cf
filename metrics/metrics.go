// Package metrics counts extension resolutions and classified X errors and
// events with Prometheus.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/BurntSushi/xgbext"
)

// Config configures the metrics observer.
type Config struct {
	// Namespace is the metrics namespace (default: "xgbext").
	Namespace string

	// ConstLabels are constant labels added to all metrics, e.g. the
	// display the registry is attached to.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the metrics observer.
type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Observer is an xgbext.Observer that feeds Prometheus counters.
type Observer struct {
	resolutions *prometheus.CounterVec
	errors      *prometheus.CounterVec
	events      *prometheus.CounterVec
}

var _ xgbext.Observer = (*Observer)(nil)

// New registers the counters and returns an observer for them. Pass it to
// xgbext.NewRegistry with xgbext.WithObserver.
func New(opts ...Option) *Observer {
	config := Config{
		Namespace: "xgbext",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Observer{
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "resolutions_total",
			Help:        "Extension presence queries, by whether the server implements the extension",
			ConstLabels: config.ConstLabels,
		}, []string{"extension", "present"}),

		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "errors_total",
			Help:        "Classified X errors",
			ConstLabels: config.ConstLabels,
		}, []string{"extension", "class"}),

		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "events_total",
			Help:        "Classified X events",
			ConstLabels: config.ConstLabels,
		}, []string{"extension", "class"}),
	}
}

func (o *Observer) ObserveResolve(ext xgbext.Extension, present bool) {
	o.resolutions.WithLabelValues(ext.String(), strconv.FormatBool(present)).Inc()
}

func (o *Observer) ObserveError(err xgbext.Error) {
	o.errors.WithLabelValues(owner(err), xgbext.ClassOf(err).String()).Inc()
}

func (o *Observer) ObserveEvent(ev xgbext.Event) {
	o.events.WithLabelValues(owner(ev), xgbext.ClassOf(ev).String()).Inc()
}

func owner(v interface{ Extension() xgbext.Extension }) string {
	if v == nil {
		return xgbext.NoExtension.String()
	}
	return v.Extension().String()
}
