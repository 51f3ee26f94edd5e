package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/metric"
)

const metricsComponent = "ringtail"

// serviceMetrics tracks connection health and message flow for the
// tail service itself. Ring occupancy lives with the ring metrics.
type serviceMetrics struct {
	natsConnected    prometheus.Gauge
	natsReconnects   prometheus.Counter
	messagesReceived prometheus.Counter
	consumeDuration  prometheus.Histogram
}

func newServiceMetrics(registry *metric.MetricsRegistry) (*serviceMetrics, error) {
	m := &serviceMetrics{
		natsConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ringkit",
			Subsystem: "nats",
			Name:      "connected",
			Help:      "Whether the NATS connection is established (1) or down (0)",
		}),
		natsReconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ringkit",
			Subsystem: "nats",
			Name:      "reconnects_total",
			Help:      "Total number of NATS reconnections",
		}),
		messagesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ringkit",
			Subsystem: "consumer",
			Name:      "messages_received_total",
			Help:      "Total number of messages appended to the tail",
		}),
		consumeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ringkit",
			Subsystem: "consumer",
			Name:      "consume_duration_seconds",
			Help:      "Time spent formatting and storing a single message",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	registrations := []struct {
		name     string
		register func() error
	}{
		{"nats_connected", func() error {
			return registry.RegisterGauge(metricsComponent, "nats_connected", m.natsConnected)
		}},
		{"nats_reconnects", func() error {
			return registry.RegisterCounter(metricsComponent, "nats_reconnects", m.natsReconnects)
		}},
		{"messages_received", func() error {
			return registry.RegisterCounter(metricsComponent, "messages_received", m.messagesReceived)
		}},
		{"consume_duration", func() error {
			return registry.RegisterHistogram(metricsComponent, "consume_duration", m.consumeDuration)
		}},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return nil, errors.Wrap(err, "serviceMetrics", "New", "register "+reg.name)
		}
	}

	return m, nil
}

func (m *serviceMetrics) recordConnected(connected bool) {
	if m == nil {
		return
	}
	if connected {
		m.natsConnected.Set(1)
		return
	}
	m.natsConnected.Set(0)
}

func (m *serviceMetrics) recordReconnect() {
	if m == nil {
		return
	}
	m.natsReconnects.Inc()
}

func (m *serviceMetrics) recordMessage(d time.Duration) {
	if m == nil {
		return
	}
	m.messagesReceived.Inc()
	m.consumeDuration.Observe(d.Seconds())
}
