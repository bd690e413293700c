package xmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	DefaultNamespace = "xmidt"
	DefaultSubsystem = "blockq"
)

// Options is the configurable options for creating a metrics Registry
type Options struct {
	// Logger is the zap logger used for registry output.  If unset, sallust.Default() is used.
	Logger *zap.Logger

	// Namespace is the default namespace for metrics which don't define a namespace (or for ad hoc metrics).
	// If not supplied, DefaultNamespace is used.
	Namespace string

	// Subsystem is the default subsystem for metrics which don't define a subsystem (or for ad hoc metrics).
	// If not supplied, DefaultSubsystem is used.
	Subsystem string

	// Pedantic indicates whether the registry is created via NewPedanticRegistry().  By default, this is false.
	// Set to true for testing or development.
	Pedantic bool

	// Metrics defines the set of predefined metrics.  These metrics will be defined immediately by a Registry
	// created using this Options instance.  This field is optional.
	//
	// Any duplicate metrics will cause an error.  Duplicate metrics are defined as those having the same
	// namespace, subsystem, and name.
	Metrics []Metric
}

func (o *Options) logger() *zap.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}

	return sallust.Default()
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil && len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o *Options) pedantic() bool {
	if o != nil {
		return o.Pedantic
	}

	return false
}

func (o *Options) registry() *prometheus.Registry {
	if o.pedantic() {
		return prometheus.NewPedanticRegistry()
	}

	return prometheus.NewRegistry()
}

func (o *Options) metrics() []Metric {
	if o != nil {
		return o.Metrics
	}

	return nil
}
