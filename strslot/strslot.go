// Package strslot provides a fixed-slot string ring: bounded text storage
// over one flat byte arena, with silent truncation to the slot width.
package strslot

import (
	"github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/ring"
)

// Ring stores strings in fixed-width slots carved from a single arena
// allocated at construction. Each slot holds up to width-1 text bytes
// followed by a NUL terminator; longer texts are silently truncated.
// Steady-state operations (Push, PopInto, Peek) do not allocate.
//
// Like ring.Buffer, a Ring belongs to one goroutine. Methods tolerate a
// nil receiver: Push is a no-op, reads report absence, queries return
// zero values.
type Ring struct {
	buf   *ring.Buffer[[]byte]
	arena []byte
	width int
	// cursor mirrors the engine's write index; Push keeps them in
	// lockstep and Clear resets both to zero.
	cursor int
}

// New creates a ring of capacity slots, each width bytes wide. One byte of
// every slot is reserved for the NUL terminator, so the longest storable
// text is width-1 bytes. Both arguments must be positive. Options are
// forwarded to the slot engine, e.g. ring.WithMetrics for Prometheus
// occupancy tracking.
func New(capacity, width int, opts ...ring.Option[[]byte]) (*Ring, error) {
	if capacity <= 0 || width <= 0 {
		return nil, errors.WrapInvalid(errors.ErrInvalidArgument,
			"Ring", "New", "capacity and width must be positive")
	}

	buf, err := ring.New[[]byte](capacity, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "Ring", "New", "slot engine")
	}

	return &Ring{
		buf:   buf,
		arena: make([]byte, capacity*width),
		width: width,
	}, nil
}

// Push stores text in the next slot, overwriting the oldest entry when the
// ring is full. Text longer than Width()-1 bytes is silently truncated; the
// slot is always NUL-terminated. Push on a nil ring is a no-op.
func (r *Ring) Push(text string) {
	if r == nil {
		return
	}

	n := len(text)
	if max := r.width - 1; n > max {
		n = max
	}

	off := r.cursor * r.width
	slot := r.arena[off : off+r.width]
	copy(slot, text[:n])
	slot[n] = 0

	// Capped descriptor: consumers appending to it cannot spill into the
	// neighboring slot.
	r.buf.Push(slot[:n:n])
	r.cursor = (r.cursor + 1) % r.buf.Capacity()
}

// PopInto removes the oldest text and copies it into dst, writing at most
// len(dst)-1 bytes followed by a NUL at dst[n]. It returns the number of
// text bytes copied and whether an element was consumed. A nil ring, empty
// ring, or zero-length dst consumes nothing and returns (0, false).
// Consuming an empty string returns (0, true).
func (r *Ring) PopInto(dst []byte) (int, bool) {
	if r == nil || len(dst) == 0 {
		return 0, false
	}

	desc, ok := r.buf.Pop()
	if !ok {
		return 0, false
	}

	n := len(desc)
	if max := len(dst) - 1; n > max {
		n = max
	}
	copy(dst, desc[:n])
	dst[n] = 0

	return n, true
}

// Pop removes and returns the oldest text. It allocates the returned
// string; use PopInto for the allocation-free form.
func (r *Ring) Pop() (string, bool) {
	if r == nil {
		return "", false
	}

	desc, ok := r.buf.Pop()
	if !ok {
		return "", false
	}
	return string(desc), true
}

// Peek returns a copy of the oldest text without consuming it.
func (r *Ring) Peek() (string, bool) {
	if r == nil {
		return "", false
	}

	desc, ok := r.buf.Peek()
	if !ok {
		return "", false
	}
	return string(desc), true
}

// Snapshot returns copies of all stored texts, oldest first, without
// consuming them. Nil for an empty or nil ring.
func (r *Ring) Snapshot() []string {
	if r == nil {
		return nil
	}

	descs := r.buf.Snapshot()
	if descs == nil {
		return nil
	}

	out := make([]string, len(descs))
	for i, d := range descs {
		out[i] = string(d)
	}
	return out
}

// Size returns the number of stored texts.
func (r *Ring) Size() int {
	if r == nil {
		return 0
	}
	return r.buf.Size()
}

// Capacity returns the number of slots.
func (r *Ring) Capacity() int {
	if r == nil {
		return 0
	}
	return r.buf.Capacity()
}

// Width returns the slot width in bytes, including the reserved NUL byte.
func (r *Ring) Width() int {
	if r == nil {
		return 0
	}
	return r.width
}

// Available returns how many slots are free.
func (r *Ring) Available() int {
	if r == nil {
		return 0
	}
	return r.buf.Available()
}

// IsEmpty reports whether the ring holds no texts.
func (r *Ring) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.buf.IsEmpty()
}

// IsFull reports whether every slot is occupied.
func (r *Ring) IsFull() bool {
	if r == nil {
		return false
	}
	return r.buf.IsFull()
}

// Clear discards all stored texts and rewinds the write cursor. Arena
// bytes are not scrubbed; stale text remains until overwritten.
func (r *Ring) Clear() {
	if r == nil {
		return
	}
	r.buf.Clear()
	r.cursor = 0
}

// Stats exposes the slot engine's statistics tracker.
func (r *Ring) Stats() *ring.Statistics {
	if r == nil {
		return nil
	}
	return r.buf.Stats()
}
