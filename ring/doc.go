// Package ring provides a generic fixed-capacity circular buffer for
// single-goroutine pipelines, with always-on statistics and optional
// Prometheus metrics.
//
// # Overview
//
// A Buffer[T] owns a contiguous backing array allocated once at
// construction. Elements enter at the head and leave at the tail in FIFO
// order; indexes wrap modulo capacity. After New, the steady-state
// operations (Push, TryPush, Pop, PopBatch, Peek, PeekRef, Clear) perform
// no allocation, which makes the buffer suitable for tight ingest loops and
// latency-sensitive paths.
//
// # Quick Start
//
//	buf, err := ring.New[Sample](1024)
//	if err != nil {
//		return err
//	}
//
//	buf.Push(sample)              // lossy: overwrites oldest when full
//	if err := buf.TryPush(sample); err != nil {
//		// errors.Is(err, errors.ErrFull)
//	}
//
//	if item, ok := buf.Pop(); ok {
//		process(item)
//	}
//
// # Write Policies
//
// The write policy is chosen per call, not per buffer:
//
//   - Push overwrites the oldest element when full. Use it for lossy logs
//     and last-N-events telemetry where fresh data beats old data.
//   - TryPush returns ErrFull and leaves the buffer untouched. Use it when
//     losing queued elements is not acceptable and the caller can apply
//     backpressure.
//
// Both report lost elements through statistics and the optional
// WithDropCallback hook.
//
// # Reading
//
// Pop removes the oldest element. PopBatch fills a caller-supplied slice
// and returns how many elements were copied; a partial fill is success.
// Reusing the destination slice across calls keeps the read path
// allocation-free.
//
// Peek copies the oldest element without removing it. PeekRef returns a
// pointer into buffer storage instead, skipping the copy for large element
// types. The pointer is only valid until the next mutating operation.
//
// Snapshot and Drain are conveniences that allocate a fresh slice; they are
// meant for diagnostics and shutdown paths, not steady-state reads.
//
// # Clear vs Scrub
//
// Clear resets the indexes in O(1) and leaves the backing array as is:
// stale values remain in memory until overwritten. Scrub zeroes the array
// first, for buffers holding sensitive payloads or large references the
// owner wants released immediately. Both are idempotent.
//
// # Observability Architecture
//
// The package uses two-layer observability:
//
//  1. Statistics (always on): atomic counters for pushes, pops, peeks,
//     overflows and drops, plus size tracking and derived rates. Near-zero
//     cost, available programmatically via Stats().
//  2. Prometheus metrics (opt-in): enabled with WithMetrics, publishing
//     ringkit_ring_* series labeled by component name.
//
// # Design Decision: Dual Tracking Pattern
//
// When metrics are enabled, each operation updates both layers:
//
//	b.stats.Push()
//	if b.metrics != nil {
//		b.metrics.recordPush(b.size, b.capacity)
//	}
//
// Statistics must work without a metrics registry, and scraping Prometheus
// counters back out of the registry to serve Stats() would cost far more
// than the second increment. The overhead of tracking twice is a few
// nanoseconds per operation, paid only when metrics are enabled.
//
// # Threading Model
//
// Buffer does no internal locking. One goroutine owns the buffer and
// performs all operations; concurrent mutation is a data race. When
// multiple goroutines need access, serialize externally (see logring for a
// mutex-wrapped example). The one sanctioned concurrent access is reading
// Statistics from a monitoring goroutine, which is why its counters are
// atomic.
//
// # Error Handling
//
// Mutating methods on a nil buffer return a classified ErrNilBuffer;
// queries on a nil buffer return zero values. State conditions use bare
// sentinels (ErrFull, ErrEmpty) cheap enough for hot paths, while misuse
// (nil receiver, zero-length destination) returns classified errors
// carrying component and operation context. All sentinels live in the
// errors package and match with errors.Is through any wrapping.
//
// # Performance Characteristics
//
//   - Push/TryPush/Pop/Peek: O(1), allocation-free
//   - PopBatch: O(n) in elements copied, allocation-free
//   - Clear: O(1); Scrub/Snapshot/Drain: O(capacity) or O(size)
//   - Statistics overhead: one atomic add per counter touched
//
// # Common Use Cases
//
//   - Tail buffers holding the last N log lines or events for inspection
//   - Ingest staging between a network consumer and a batch processor
//   - Fixed-slot string rings via the strslot package
package ring
