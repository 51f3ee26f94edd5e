// Package metric provides Prometheus-based metrics collection and an HTTP
// server for ringkit observability.
//
// The package offers a centralized metrics registry for component-specific
// metrics plus an HTTP server exposing them in Prometheus format. Buffer
// packages in the kit register their instruments through this registry when
// metrics are enabled; applications embedding the kit register their own
// alongside.
//
// # Architecture
//
// The package follows a two-layer design:
//
//  1. Registry: extensible registration for component metrics
//     (MetricsRegistrar interface, MetricsRegistry type)
//  2. HTTP Server: metrics endpoint with health check (Server type)
//
// Go runtime and process collectors are registered automatically, so every
// scrape carries baseline runtime health alongside buffer instruments.
//
// # Basic Usage
//
// Setting up metrics collection and the HTTP server:
//
//	registry := metric.NewMetricsRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//
//	go func() {
//	    if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
//	        log.Printf("metrics server error: %v", err)
//	    }
//	}()
//	defer server.Stop()
//
//	buf, err := ring.New[int](1024, ring.WithMetrics[int](registry, "sensor_tail"))
//
// The server exposes Prometheus-formatted metrics at
// http://localhost:9090/metrics and a health check at
// http://localhost:9090/health.
//
// # Component Metrics
//
// Components register custom metrics through the registry:
//
//	counter := prometheus.NewCounter(prometheus.CounterOpts{
//	    Name: "lines_ingested_total",
//	    Help: "Total number of lines ingested",
//	})
//	err := registry.RegisterCounter("tailer", "lines_ingested_total", counter)
//
// Vector variants (RegisterCounterVec, RegisterGaugeVec,
// RegisterHistogramVec) cover labeled metrics:
//
//	linesVec := prometheus.NewCounterVec(
//	    prometheus.CounterOpts{
//	        Name: "log_lines_total",
//	        Help: "Log lines retained by level",
//	    },
//	    []string{"level"},
//	)
//	err := registry.RegisterCounterVec("logring", "log_lines_total", linesVec)
//
// Registration is tracked per component.metricName pair, so the same metric
// name can never be claimed twice; conflicts surface as classified invalid
// errors rather than Prometheus panics.
//
// # Prometheus Integration
//
// Kit instruments use the namespace "ringkit" with per-package subsystems:
//
//	ringkit_ring_pushes_total{component="sensor_tail"}
//	ringkit_ring_size{component="sensor_tail"}
//	ringkit_logring_lines_total{component="app",level="info"}
//
// Configure Prometheus to scrape the endpoint:
//
//	scrape_configs:
//	  - job_name: 'ringkit'
//	    static_configs:
//	      - targets: ['localhost:9090']
//	    metrics_path: '/metrics'
//
// # Thread Safety
//
// All registry operations are thread-safe: registration methods use mutex
// protection and metric recording is lock-free (Prometheus guarantee). The
// Server serializes Start/Stop so the blocking Start can be shut down from
// another goroutine.
//
// # Error Handling
//
// Registration methods return classified errors: duplicate registrations and
// Prometheus name conflicts classify invalid (fix the caller), any other
// Prometheus registration failure classifies fatal. Server.Start returns an
// error when the server is already running, the registry is nil, or the
// listener fails; after Stop the wrapped http.ErrServerClosed is reachable
// via errors.Is.
//
// # Design Decisions
//
// Centralized registry: a single registry keeps the metric namespace
// consistent, prevents duplication, and gives one scrape endpoint for the
// whole process.
//
// Prometheus direct integration: the official client is used without an
// abstraction layer, so callers keep access to native instrument types and
// the ecosystem tooling around them.
package metric
