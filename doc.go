// Package ringkit provides bounded, allocation-free in-memory containers
// for data planes that must never grow: fixed-capacity ring buffers,
// fixed-slot string storage, and a bounded log tail.
//
// # Philosophy: Fixed Memory, Lossy by Contract
//
// Every container in this module allocates its storage once, at
// construction, and never again. When a full container receives another
// element, the caller chooses what gives:
//
//   - Push overwrites the oldest element (lossy tail semantics)
//   - TryPush rejects the new element (backpressure semantics)
//
// Nothing blocks, nothing resizes, nothing waits. The ring itself is the
// backpressure mechanism.
//
// # Architecture
//
//	┌──────────────┐   ┌──────────────┐   ┌──────────────┐
//	│   strslot    │   │   logring    │   │  your types  │
//	│ fixed-width  │   │ slog handler │   │              │
//	│ text slots   │   │ bounded tail │   │              │
//	└──────┬───────┘   └──────┬───────┘   └──────┬───────┘
//	       └──────────────────┼──────────────────┘
//	                          ↓ built on
//	               ┌─────────────────────┐
//	               │    ring.Buffer[T]   │  generic engine
//	               │ overwrite / reject  │  O(1) operations
//	               └──────────┬──────────┘
//	                          ↓ observed by
//	               ┌─────────────────────┐
//	               │ Statistics + metric │  atomic counters,
//	               │ (Prometheus facade) │  optional Prometheus
//	               └─────────────────────┘
//
// # Packages
//
//   - ring: the generic fixed-capacity circular buffer engine
//   - strslot: fixed-slot NUL-terminated string storage over one arena
//   - logring: log/slog handler retaining the last N lines in memory
//   - errors: classified error taxonomy shared by the kit
//   - metric: Prometheus registry facade and metrics HTTP server
//   - pkg/retry: exponential backoff for transient failures
//   - cmd/ringtail: demo service tailing a NATS subject into a bounded window
//
// # Quick Start
//
//	buf, err := ring.New[Event](1024)
//	if err != nil {
//	    return err
//	}
//
//	_ = buf.Push(evt)          // overwrite oldest when full
//	if err := buf.TryPush(evt); err != nil {
//	    // full, element rejected
//	}
//
//	for {
//	    evt, ok := buf.Pop()
//	    if !ok {
//	        break
//	    }
//	    handle(evt)
//	}
//
// # Threading Model
//
// Buffers carry no locks. One goroutine owns a buffer; concurrent mutation
// requires external serialization, the way logring wraps its ring in a
// mutex. Statistics counters are atomic so monitors and metrics scrapes
// may read them while the owner mutates.
//
// # Observability
//
// Statistics are always on: every buffer counts pushes, pops, peeks,
// overflows, and drops with atomic counters, free of configuration.
// Prometheus instruments are opt-in per buffer via WithMetrics and a
// metric.MetricsRegistry; the metric.Server exposes the registry over
// HTTP. The ringtail command shows the full wiring.
package ringkit
