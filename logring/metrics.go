package logring

import (
	"log/slog"

	"github.com/c360/ringkit/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// handlerMetrics counts retained lines by level.
type handlerMetrics struct {
	lines *prometheus.CounterVec
}

func newHandlerMetrics(registry *metric.MetricsRegistry, component string) (*handlerMetrics, error) {
	m := &handlerMetrics{
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "ringkit",
			Subsystem:   "logring",
			Name:        "lines_total",
			ConstLabels: prometheus.Labels{"component": component},
			Help:        "Total number of retained log lines by level",
		}, []string{"level"}),
	}

	if err := registry.RegisterCounterVec(component, "logring_lines", m.lines); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *handlerMetrics) recordLine(level slog.Level) {
	m.lines.WithLabelValues(levelName(level)).Inc()
}
