package ring

import (
	"github.com/c360/ringkit/metric"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "ringkit"
	metricsSubsystem = "ring"
)

// bufferMetrics holds the Prometheus instruments for one buffer. Counters
// are incremented directly on the hot path; gauges follow size changes.
type bufferMetrics struct {
	pushes    prometheus.Counter
	pops      prometheus.Counter
	peeks     prometheus.Counter
	overflows prometheus.Counter
	drops     prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

func newCounter(component, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metricsNamespace,
		Subsystem:   metricsSubsystem,
		Name:        name,
		ConstLabels: prometheus.Labels{"component": component},
		Help:        help,
	})
}

func newGauge(component, name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   metricsNamespace,
		Subsystem:   metricsSubsystem,
		Name:        name,
		ConstLabels: prometheus.Labels{"component": component},
		Help:        help,
	})
}

// newBufferMetrics creates and registers buffer metrics under the given
// component name. Registration failures surface to the caller; a component
// name can back at most one buffer per registry.
func newBufferMetrics(registry *metric.MetricsRegistry, component string) (*bufferMetrics, error) {
	m := &bufferMetrics{
		pushes:      newCounter(component, "pushes_total", "Total number of push operations"),
		pops:        newCounter(component, "pops_total", "Total number of pop operations"),
		peeks:       newCounter(component, "peeks_total", "Total number of peek operations"),
		overflows:   newCounter(component, "overflows_total", "Total number of overwrites of the oldest element"),
		drops:       newCounter(component, "drops_total", "Total number of elements lost to overwrite or rejection"),
		size:        newGauge(component, "size", "Current number of buffered elements"),
		utilization: newGauge(component, "utilization", "Buffer fill level (0.0 to 1.0)"),
	}

	counters := []struct {
		name      string
		collector prometheus.Counter
	}{
		{"ring_pushes", m.pushes},
		{"ring_pops", m.pops},
		{"ring_peeks", m.peeks},
		{"ring_overflows", m.overflows},
		{"ring_drops", m.drops},
	}
	for _, c := range counters {
		if err := registry.RegisterCounter(component, c.name, c.collector); err != nil {
			return nil, err
		}
	}

	if err := registry.RegisterGauge(component, "ring_size", m.size); err != nil {
		return nil, err
	}
	if err := registry.RegisterGauge(component, "ring_utilization", m.utilization); err != nil {
		return nil, err
	}

	return m, nil
}

// recordPush increments the push counter and updates size and utilization.
func (m *bufferMetrics) recordPush(size, capacity int) {
	m.pushes.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordPop increments the pop counter and updates size and utilization.
func (m *bufferMetrics) recordPop(size, capacity int) {
	m.pops.Inc()
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

// recordPeek increments the peek counter.
func (m *bufferMetrics) recordPeek() {
	m.peeks.Inc()
}

// recordOverflow increments the overwrite counter.
func (m *bufferMetrics) recordOverflow() {
	m.overflows.Inc()
}

// recordDrop increments the drop counter.
func (m *bufferMetrics) recordDrop() {
	m.drops.Inc()
}

// updateSize sets the size and utilization gauges.
func (m *bufferMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}
