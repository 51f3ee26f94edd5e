package logring

import (
	"log/slog"

	"github.com/c360/ringkit/metric"
)

// Option configures handler behavior at construction.
type Option func(*options)

type options struct {
	level      slog.Leveler
	sink       func(line string)
	maxLine    int
	metricsReg *metric.MetricsRegistry
	component  string
}

// WithLevel sets the minimum level. Passing a *slog.LevelVar keeps it
// adjustable by the caller; any other Leveler makes SetLevel a no-op.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithSink forwards every retained line to fn, after the ring is updated.
// The sink runs on the logging goroutine; keep it fast and never log from
// inside it with the same handler.
func WithSink(fn func(line string)) Option {
	return func(o *options) {
		o.sink = fn
	}
}

// WithMaxLineBytes truncates formatted lines to at most n bytes before
// retention. Zero or negative disables truncation.
func WithMaxLineBytes(n int) Option {
	return func(o *options) {
		o.maxLine = n
	}
}

// WithMetrics enables a per-level retained-line counter registered under
// the given component name. A nil registry or empty component leaves
// metrics disabled.
func WithMetrics(registry *metric.MetricsRegistry, component string) Option {
	return func(o *options) {
		if registry != nil && component != "" {
			o.metricsReg = registry
			o.component = component
		}
	}
}

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}
