package ring

import (
	"github.com/c360/ringkit/metric"
)

// Option configures buffer behavior at construction.
type Option[T any] func(*config[T])

// config holds the configurable pieces of a buffer. Write policy is not
// configured here: Push always overwrites and TryPush always rejects, so the
// caller picks a policy per operation.
type config[T any] struct {
	dropCallback DropCallback[T]
	metricsReg   *metric.MetricsRegistry
	component    string
}

// WithMetrics enables Prometheus metrics registered under the given
// component name. A nil registry or empty component leaves metrics disabled;
// statistics are collected either way.
func WithMetrics[T any](registry *metric.MetricsRegistry, component string) Option[T] {
	return func(c *config[T]) {
		if registry != nil && component != "" {
			c.metricsReg = registry
			c.component = component
		}
	}
}

// WithDropCallback installs a callback invoked with every lost element:
// the overwritten one on Push against a full buffer, the rejected one on
// TryPush. The callback runs on the goroutine performing the write, after
// the operation has settled.
func WithDropCallback[T any](callback DropCallback[T]) Option[T] {
	return func(c *config[T]) {
		c.dropCallback = callback
	}
}

func applyOptions[T any](options ...Option[T]) *config[T] {
	c := &config[T]{}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}
