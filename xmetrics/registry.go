package xmetrics

import (
	"errors"
	"fmt"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// PrometheusProvider is a Prometheus-specific version of go-kit's metrics.Provider.  Use this interface
// when interacting directly with Prometheus.
type PrometheusProvider interface {
	NewCounterVec(string) *prometheus.CounterVec
	NewGaugeVec(string) *prometheus.GaugeVec
	NewHistogramVec(string) *prometheus.HistogramVec
}

// Registry is the core abstraction for this package.  It is a Prometheus registry and a go-kit
// metrics.Provider all in one.
//
// The Provider implementation works slightly differently than the go-kit implementation.  For any metric
// that is already defined the provider returns a new go-kit wrapper for that metric.  Additionally, new
// metrics (including ad hoc metrics) are cached and returned by subsequent calls to the Provider methods.
type Registry interface {
	PrometheusProvider
	provider.Provider
	prometheus.Gatherer
	prometheus.Registerer
}

// registry is the internal Registry implementation
type registry struct {
	*prometheus.Registry

	logger    *zap.Logger
	namespace string
	subsystem string
	cache     map[string]prometheus.Collector
}

func (r *registry) NewCounterVec(name string) *prometheus.CounterVec {
	var counterVec *prometheus.CounterVec

	if existing, ok := r.cache[name]; ok {
		if counterVec, ok = existing.(*prometheus.CounterVec); !ok {
			panic(fmt.Errorf("The metric %s is not a counter", name))
		}
	} else {
		counterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})

		r.register(name, counterVec)
	}

	return counterVec
}

func (r *registry) NewCounter(name string) metrics.Counter {
	return gokitprometheus.NewCounter(r.NewCounterVec(name))
}

func (r *registry) NewGaugeVec(name string) *prometheus.GaugeVec {
	var gaugeVec *prometheus.GaugeVec

	if existing, ok := r.cache[name]; ok {
		if gaugeVec, ok = existing.(*prometheus.GaugeVec); !ok {
			panic(fmt.Errorf("The metric %s is not a gauge", name))
		}
	} else {
		gaugeVec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})

		r.register(name, gaugeVec)
	}

	return gaugeVec
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	return gokitprometheus.NewGauge(r.NewGaugeVec(name))
}

func (r *registry) NewHistogramVec(name string) *prometheus.HistogramVec {
	var histogramVec *prometheus.HistogramVec

	if existing, ok := r.cache[name]; ok {
		if histogramVec, ok = existing.(*prometheus.HistogramVec); !ok {
			panic(fmt.Errorf("The metric %s is not a histogram", name))
		}
	} else {
		histogramVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      name,
		}, []string{})

		r.register(name, histogramVec)
	}

	return histogramVec
}

// NewHistogram returns a go-kit Histogram wrapping the named prometheus histogram.
// The buckets argument is ignored for preregistered metrics.
func (r *registry) NewHistogram(name string, _ int) metrics.Histogram {
	return gokitprometheus.NewHistogram(r.NewHistogramVec(name))
}

func (r *registry) Stop() {
}

// register inserts an ad hoc collector into both the prometheus registry and the cache,
// reusing any collector that prometheus reports as already registered.
func (r *registry) register(name string, c prometheus.Collector) {
	if err := r.Registry.Register(c); err != nil {
		already := prometheus.AlreadyRegisteredError{}
		if errors.As(err, &already) {
			r.cache[name] = already.ExistingCollector
			return
		}

		panic(err)
	}

	r.logger.Debug("registered ad hoc metric", zap.String("name", name))
	r.cache[name] = c
}

// NewRegistry creates a Registry from an optional set of Options.  Any metrics supplied in the
// options are preregistered, and any error in those descriptors fails construction.
func NewRegistry(o *Options) (Registry, error) {
	r := &registry{
		Registry:  o.registry(),
		logger:    o.logger(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]prometheus.Collector),
	}

	for _, m := range o.metrics() {
		if len(m.Name) == 0 {
			return nil, errors.New("Metric names cannot be empty")
		}

		if _, ok := r.cache[m.Name]; ok {
			return nil, fmt.Errorf("Duplicate metric: %s", m.Name)
		}

		if len(m.Namespace) == 0 {
			m.Namespace = r.namespace
		}

		if len(m.Subsystem) == 0 {
			m.Subsystem = r.subsystem
		}

		c, err := NewCollector(m)
		if err != nil {
			return nil, err
		}

		if err := r.Registry.Register(c); err != nil {
			return nil, fmt.Errorf("Error while preregistering metric %s: %s", m.Name, err)
		}

		r.logger.Debug("preregistered metric", zap.String("name", m.Name), zap.String("type", m.Type))
		r.cache[m.Name] = c
	}

	return r, nil
}
