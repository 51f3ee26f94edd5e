// Package ring provides a generic, fixed-capacity circular buffer with
// overwrite and reject write policies, always-on statistics, and optional
// Prometheus metrics integration.
package ring

import (
	"unsafe"

	"github.com/c360/ringkit/errors"
)

// DropCallback is called when an element is lost: overwritten by Push on a
// full buffer, or rejected by TryPush. It receives the lost element and runs
// synchronously after the displacing operation has completed.
type DropCallback[T any] func(item T)

// Buffer is a fixed-capacity circular buffer over contiguous storage.
// Capacity is fixed at construction; no operation allocates except the
// documented conveniences Snapshot and Drain.
//
// Buffer is not safe for concurrent mutation. A single goroutine owns the
// buffer; sharing it requires external serialization. Statistics reads are
// the one sanctioned cross-goroutine access (see Stats).
//
// All methods tolerate a nil receiver: queries return zero values, mutators
// return ErrNilBuffer, and Clear/Scrub are no-ops. This keeps partially
// initialized owners from panicking before wiring is complete.
type Buffer[T any] struct {
	items    []T
	capacity int
	size     int
	head     int // next write position
	tail     int // oldest element position
	stats    *Statistics
	metrics  *bufferMetrics
	opts     *config[T]
}

// New creates a buffer with the given capacity. Capacity must be positive;
// anything else returns a classified invalid error. Statistics are always
// collected; Prometheus metrics are opt-in via WithMetrics.
func New[T any](capacity int, options ...Option[T]) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidArgument,
			"Buffer", "New", "capacity must be positive")
	}

	opts := applyOptions(options...)

	stats := NewStatistics()

	var metrics *bufferMetrics
	if opts.metricsReg != nil && opts.component != "" {
		var err error
		metrics, err = newBufferMetrics(opts.metricsReg, opts.component)
		if err != nil {
			return nil, errors.Wrap(err, "Buffer", "New", "metrics registration")
		}
	}

	b := &Buffer[T]{
		items:    make([]T, capacity),
		capacity: capacity,
		stats:    stats,
		metrics:  metrics,
		opts:     opts,
	}

	// Steady-state footprint of the backing array. Indirect storage held by
	// elements (string bytes, slice payloads) is not counted.
	var zero T
	b.stats.UpdateMemoryUsage(int64(capacity) * int64(unsafe.Sizeof(zero)))

	return b, nil
}

// Push appends an element, overwriting the oldest one when the buffer is
// full. This is the lossy-log write: it never fails on a live buffer, and
// the displaced element is reported through statistics and the drop
// callback.
func (b *Buffer[T]) Push(item T) error {
	if b == nil {
		return errors.WrapInvalid(errors.ErrNilBuffer, "Buffer", "Push", "nil receiver")
	}

	var dropped T
	overwrote := false

	if b.size == b.capacity {
		dropped = b.items[b.tail]
		overwrote = true
		b.tail = (b.tail + 1) % b.capacity
		b.size--

		b.stats.Overflow()
		b.stats.Drop()
		if b.metrics != nil {
			b.metrics.recordOverflow()
			b.metrics.recordDrop()
		}
	}

	b.items[b.head] = item
	b.head = (b.head + 1) % b.capacity
	b.size++

	b.stats.Push()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordPush(b.size, b.capacity)
	}

	if overwrote && b.opts.dropCallback != nil {
		b.opts.dropCallback(dropped)
	}

	return nil
}

// TryPush appends an element only if space is available. When the buffer is
// full it returns ErrFull and leaves the contents untouched; the rejected
// element counts as a drop and is passed to the drop callback.
func (b *Buffer[T]) TryPush(item T) error {
	if b == nil {
		return errors.WrapInvalid(errors.ErrNilBuffer, "Buffer", "TryPush", "nil receiver")
	}

	if b.size == b.capacity {
		b.stats.Drop()
		if b.metrics != nil {
			b.metrics.recordDrop()
		}
		if b.opts.dropCallback != nil {
			b.opts.dropCallback(item)
		}
		return errors.ErrFull
	}

	b.items[b.head] = item
	b.head = (b.head + 1) % b.capacity
	b.size++

	b.stats.Push()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordPush(b.size, b.capacity)
	}

	return nil
}

// Pop removes and returns the oldest element. It returns the zero value and
// false when the buffer is empty or nil. The vacated slot is zeroed so the
// backing array does not pin popped references.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T

	if b == nil || b.size == 0 {
		return zero, false
	}

	item := b.items[b.tail]
	b.items[b.tail] = zero
	b.tail = (b.tail + 1) % b.capacity
	b.size--

	b.stats.Pop()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordPop(b.size, b.capacity)
	}

	return item, true
}

// PopBatch removes up to len(dst) oldest elements into dst in FIFO order and
// returns how many were copied. A partial fill is success: the count is
// min(len(dst), Size()). It returns ErrInvalidArgument for a zero-length
// destination and ErrEmpty when there is nothing to pop.
func (b *Buffer[T]) PopBatch(dst []T) (int, error) {
	if b == nil {
		return 0, errors.WrapInvalid(errors.ErrNilBuffer, "Buffer", "PopBatch", "nil receiver")
	}
	if len(dst) == 0 {
		return 0, errors.WrapInvalid(errors.ErrInvalidArgument,
			"Buffer", "PopBatch", "zero-length destination")
	}
	if b.size == 0 {
		return 0, errors.ErrEmpty
	}

	n := len(dst)
	if n > b.size {
		n = b.size
	}

	var zero T
	for i := 0; i < n; i++ {
		dst[i] = b.items[b.tail]
		b.items[b.tail] = zero
		b.tail = (b.tail + 1) % b.capacity
		b.size--

		b.stats.Pop()
	}

	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.updateSize(b.size, b.capacity)
	}

	return n, nil
}

// Peek returns a copy of the oldest element without removing it.
func (b *Buffer[T]) Peek() (T, bool) {
	var zero T

	if b == nil || b.size == 0 {
		return zero, false
	}

	item := b.items[b.tail]

	b.stats.Peek()
	if b.metrics != nil {
		b.metrics.recordPeek()
	}

	return item, true
}

// PeekRef returns a pointer to the oldest element in place, avoiding the
// copy for large elements. The pointer aliases buffer storage and is valid
// only until the next mutating operation; Push, Pop, PopBatch, Clear and
// Scrub may overwrite or zero the slot it refers to.
func (b *Buffer[T]) PeekRef() (*T, bool) {
	if b == nil || b.size == 0 {
		return nil, false
	}

	b.stats.Peek()
	if b.metrics != nil {
		b.metrics.recordPeek()
	}

	return &b.items[b.tail], true
}

// Snapshot returns a copy of the current contents, oldest first, without
// consuming them. It allocates; nil is returned for an empty or nil buffer.
func (b *Buffer[T]) Snapshot() []T {
	if b == nil || b.size == 0 {
		return nil
	}

	out := make([]T, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.items[(b.tail+i)%b.capacity]
	}
	return out
}

// Drain removes and returns all buffered elements, oldest first. It
// allocates; nil is returned for an empty or nil buffer.
func (b *Buffer[T]) Drain() []T {
	if b == nil || b.size == 0 {
		return nil
	}

	out := make([]T, b.size)
	n, _ := b.PopBatch(out)
	return out[:n]
}

// Size returns the current number of buffered elements.
func (b *Buffer[T]) Size() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Capacity returns the fixed capacity.
func (b *Buffer[T]) Capacity() int {
	if b == nil {
		return 0
	}
	return b.capacity
}

// Available returns how many elements can be appended before TryPush
// rejects or Push overwrites.
func (b *Buffer[T]) Available() int {
	if b == nil {
		return 0
	}
	return b.capacity - b.size
}

// IsEmpty reports whether the buffer holds no elements. A nil buffer is
// empty.
func (b *Buffer[T]) IsEmpty() bool {
	if b == nil {
		return true
	}
	return b.size == 0
}

// IsFull reports whether the buffer is at capacity. A nil buffer is not
// full.
func (b *Buffer[T]) IsFull() bool {
	if b == nil {
		return false
	}
	return b.size == b.capacity
}

// Clear discards all buffered elements in O(1) by resetting indexes. The
// backing storage is not scrubbed; stale values remain until overwritten or
// Scrub is called. Clear is idempotent and does not invoke the drop
// callback: the owner discarded the elements, nothing was lost to overflow.
func (b *Buffer[T]) Clear() {
	if b == nil {
		return
	}

	b.head = 0
	b.tail = 0
	b.size = 0

	b.stats.UpdateSize(0)
	if b.metrics != nil {
		b.metrics.updateSize(0, b.capacity)
	}
}

// Scrub zeroes the backing storage and then clears the buffer. Use it when
// elements carry sensitive payloads, or to release references held by slots
// that Clear leaves in place.
func (b *Buffer[T]) Scrub() {
	if b == nil {
		return
	}

	clear(b.items)
	b.head = 0
	b.tail = 0
	b.size = 0

	b.stats.UpdateSize(0)
	if b.metrics != nil {
		b.metrics.updateSize(0, b.capacity)
	}
}

// Stats returns the buffer's statistics tracker. The tracker uses atomic
// counters, so monitoring goroutines may read it while the owning goroutine
// mutates the buffer. Returns nil for a nil buffer.
func (b *Buffer[T]) Stats() *Statistics {
	if b == nil {
		return nil
	}
	return b.stats
}

// MemoryBytes returns the steady-state footprint of the backing array in
// bytes: capacity times the element size. Indirect storage referenced by
// elements is not counted.
func (b *Buffer[T]) MemoryBytes() int64 {
	if b == nil {
		return 0
	}
	return b.stats.MemoryUsage()
}
