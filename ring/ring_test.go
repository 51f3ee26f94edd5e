package ring

import (
	"errors"
	"testing"

	cerrors "github.com/c360/ringkit/errors"
	"github.com/c360/ringkit/metric"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidCapacity(t *testing.T) {
	testCases := []struct {
		name     string
		capacity int
	}{
		{"zero", 0},
		{"negative", -1},
		{"large negative", -1024},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := New[int](tc.capacity)
			if err == nil {
				t.Fatal("Expected error for non-positive capacity")
			}
			if buf != nil {
				t.Error("Expected nil buffer on construction failure")
			}
			if !errors.Is(err, cerrors.ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestBufferBasicOperations(t *testing.T) {
	buf, err := New[string](3)
	require.NoError(t, err, "Failed to create buffer")

	// Initial state
	if buf.Size() != 0 {
		t.Errorf("Expected initial size 0, got %d", buf.Size())
	}
	if buf.Capacity() != 3 {
		t.Errorf("Expected capacity 3, got %d", buf.Capacity())
	}
	if buf.Available() != 3 {
		t.Errorf("Expected available 3, got %d", buf.Available())
	}
	if !buf.IsEmpty() {
		t.Error("Expected buffer to be empty initially")
	}
	if buf.IsFull() {
		t.Error("Expected buffer not to be full initially")
	}

	// Fill
	for _, s := range []string{"first", "second", "third"} {
		if err := buf.Push(s); err != nil {
			t.Fatalf("Failed to push %q: %v", s, err)
		}
	}
	if buf.Size() != 3 {
		t.Errorf("Expected size 3, got %d", buf.Size())
	}
	if !buf.IsFull() {
		t.Error("Expected buffer to be full")
	}
	if buf.Available() != 0 {
		t.Errorf("Expected available 0, got %d", buf.Available())
	}

	// Peek does not consume
	value, ok := buf.Peek()
	if !ok || value != "first" {
		t.Errorf("Expected peek 'first', got %q (ok=%v)", value, ok)
	}
	if buf.Size() != 3 {
		t.Errorf("Expected size 3 after peek, got %d", buf.Size())
	}

	// Pop one
	value, ok = buf.Pop()
	if !ok || value != "first" {
		t.Errorf("Expected pop 'first', got %q (ok=%v)", value, ok)
	}
	if buf.Size() != 2 {
		t.Errorf("Expected size 2 after pop, got %d", buf.Size())
	}

	// Batch out the rest
	dst := make([]string, 2)
	n, err := buf.PopBatch(dst)
	if err != nil {
		t.Fatalf("PopBatch failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected batch size 2, got %d", n)
	}
	if dst[0] != "second" || dst[1] != "third" {
		t.Errorf("Expected ['second', 'third'], got %v", dst)
	}
	if !buf.IsEmpty() {
		t.Error("Expected buffer empty after batch")
	}
}

func TestBufferFIFOOrder(t *testing.T) {
	buf, err := New[int](16)
	require.NoError(t, err)

	for i := 0; i < 16; i++ {
		if err := buf.Push(i); err != nil {
			t.Fatalf("Push %d failed: %v", i, err)
		}
	}

	for i := 0; i < 16; i++ {
		value, ok := buf.Pop()
		if !ok {
			t.Fatalf("Pop %d: expected element", i)
		}
		if value != i {
			t.Errorf("Position %d: expected %d, got %d", i, i, value)
		}
	}

	if _, ok := buf.Pop(); ok {
		t.Error("Expected pop on drained buffer to fail")
	}
}

func TestBufferPushOverwritesOldest(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		if err := buf.Push(i); err != nil {
			t.Fatalf("Push %d failed: %v", i, err)
		}
	}

	if buf.Size() != 4 {
		t.Errorf("Expected size 4 after overflow, got %d", buf.Size())
	}

	expected := []int{2, 3, 4, 5}
	var result []int
	for !buf.IsEmpty() {
		value, ok := buf.Pop()
		if ok {
			result = append(result, value)
		}
	}

	if len(result) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(result))
	}
	for i, want := range expected {
		if result[i] != want {
			t.Errorf("Position %d: expected %d, got %d", i, want, result[i])
		}
	}

	stats := buf.Stats()
	if stats.Pushes() != 5 {
		t.Errorf("Expected 5 pushes, got %d", stats.Pushes())
	}
	if stats.Overflows() != 1 {
		t.Errorf("Expected 1 overflow, got %d", stats.Overflows())
	}
	if stats.Drops() != 1 {
		t.Errorf("Expected 1 drop, got %d", stats.Drops())
	}
}

func TestBufferTryPushRejectsWhenFull(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		if err := buf.TryPush(i); err != nil {
			t.Fatalf("TryPush %d failed: %v", i, err)
		}
	}

	err = buf.TryPush(5)
	if err == nil {
		t.Fatal("Expected TryPush on full buffer to fail")
	}
	if !errors.Is(err, cerrors.ErrFull) {
		t.Errorf("Expected ErrFull, got %v", err)
	}

	// Contents untouched by the rejected push
	got := buf.Snapshot()
	expected := []int{1, 2, 3, 4}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(got))
	}
	for i, want := range expected {
		if got[i] != want {
			t.Errorf("Position %d: expected %d, got %d", i, want, got[i])
		}
	}

	stats := buf.Stats()
	if stats.Overflows() != 0 {
		t.Errorf("Expected 0 overflows, got %d", stats.Overflows())
	}
	if stats.Drops() != 1 {
		t.Errorf("Expected 1 drop for rejected element, got %d", stats.Drops())
	}
	if stats.Pushes() != 4 {
		t.Errorf("Expected 4 pushes, got %d", stats.Pushes())
	}
}

func TestBufferPopBatch(t *testing.T) {
	t.Run("PartialFill", func(t *testing.T) {
		buf, err := New[int](8)
		require.NoError(t, err)

		buf.Push(10)
		buf.Push(20)

		dst := make([]int, 5)
		n, err := buf.PopBatch(dst)
		if err != nil {
			t.Fatalf("PopBatch failed: %v", err)
		}
		if n != 2 {
			t.Errorf("Expected 2 elements, got %d", n)
		}
		if dst[0] != 10 || dst[1] != 20 {
			t.Errorf("Expected [10, 20], got %v", dst[:n])
		}
		if !buf.IsEmpty() {
			t.Error("Expected buffer empty after partial batch")
		}
	})

	t.Run("SmallDestination", func(t *testing.T) {
		buf, err := New[int](8)
		require.NoError(t, err)

		for i := 1; i <= 5; i++ {
			buf.Push(i)
		}

		dst := make([]int, 2)
		n, err := buf.PopBatch(dst)
		if err != nil {
			t.Fatalf("PopBatch failed: %v", err)
		}
		if n != 2 {
			t.Errorf("Expected 2 elements, got %d", n)
		}
		if dst[0] != 1 || dst[1] != 2 {
			t.Errorf("Expected [1, 2], got %v", dst)
		}
		if buf.Size() != 3 {
			t.Errorf("Expected 3 remaining, got %d", buf.Size())
		}
	})

	t.Run("ZeroLengthDestination", func(t *testing.T) {
		buf, err := New[int](4)
		require.NoError(t, err)
		buf.Push(1)

		n, err := buf.PopBatch(nil)
		if n != 0 {
			t.Errorf("Expected 0 elements, got %d", n)
		}
		if !errors.Is(err, cerrors.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument, got %v", err)
		}
		if buf.Size() != 1 {
			t.Errorf("Expected contents untouched, size %d", buf.Size())
		}

		// Argument validation wins over the empty check
		buf.Clear()
		_, err = buf.PopBatch([]int{})
		if !errors.Is(err, cerrors.ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument on empty buffer too, got %v", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		buf, err := New[int](4)
		require.NoError(t, err)

		dst := make([]int, 4)
		n, err := buf.PopBatch(dst)
		if n != 0 {
			t.Errorf("Expected 0 elements, got %d", n)
		}
		if !errors.Is(err, cerrors.ErrEmpty) {
			t.Errorf("Expected ErrEmpty, got %v", err)
		}
	})

	t.Run("Wraparound", func(t *testing.T) {
		buf, err := New[int](4)
		require.NoError(t, err)

		// Advance tail past the seam, then fill across it
		for i := 1; i <= 4; i++ {
			buf.Push(i)
		}
		buf.Pop()
		buf.Pop()
		buf.Push(5)
		buf.Push(6)

		dst := make([]int, 4)
		n, err := buf.PopBatch(dst)
		if err != nil {
			t.Fatalf("PopBatch failed: %v", err)
		}
		if n != 4 {
			t.Fatalf("Expected 4 elements, got %d", n)
		}
		expected := []int{3, 4, 5, 6}
		for i, want := range expected {
			if dst[i] != want {
				t.Errorf("Position %d: expected %d, got %d", i, want, dst[i])
			}
		}
	})
}

func TestBufferClear(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		buf.Push(i)
	}

	buf.Clear()
	if !buf.IsEmpty() {
		t.Error("Expected buffer empty after clear")
	}
	if buf.Size() != 0 {
		t.Errorf("Expected size 0, got %d", buf.Size())
	}
	if buf.Available() != 4 {
		t.Errorf("Expected available 4, got %d", buf.Available())
	}
	if _, ok := buf.Pop(); ok {
		t.Error("Expected pop after clear to fail")
	}

	// Idempotent
	buf.Clear()
	if !buf.IsEmpty() {
		t.Error("Expected buffer still empty after second clear")
	}

	// Normal operation resumes
	buf.Push(42)
	value, ok := buf.Pop()
	if !ok || value != 42 {
		t.Errorf("Expected 42 after clear, got %d (ok=%v)", value, ok)
	}

	if buf.Stats().CurrentSize() != 0 {
		t.Errorf("Expected stats size 0, got %d", buf.Stats().CurrentSize())
	}
}

func TestBufferPeekDoesNotMutate(t *testing.T) {
	buf, err := New[string](4)
	require.NoError(t, err)

	buf.Push("oldest")
	buf.Push("newer")

	for i := 0; i < 3; i++ {
		value, ok := buf.Peek()
		if !ok || value != "oldest" {
			t.Errorf("Peek %d: expected 'oldest', got %q (ok=%v)", i, value, ok)
		}
		if buf.Size() != 2 {
			t.Errorf("Peek %d: expected size 2, got %d", i, buf.Size())
		}
	}

	value, _ := buf.Pop()
	if value != "oldest" {
		t.Errorf("Expected pop to still return 'oldest', got %q", value)
	}

	if buf.Stats().Peeks() != 3 {
		t.Errorf("Expected 3 peeks recorded, got %d", buf.Stats().Peeks())
	}
}

func TestBufferPeekRef(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)

	if ref, ok := buf.PeekRef(); ok || ref != nil {
		t.Error("Expected no reference from empty buffer")
	}

	buf.Push(7)
	buf.Push(8)

	ref, ok := buf.PeekRef()
	if !ok || ref == nil {
		t.Fatal("Expected reference to oldest element")
	}
	if *ref != 7 {
		t.Errorf("Expected reference to 7, got %d", *ref)
	}

	// The reference aliases buffer storage
	*ref = 70
	value, _ := buf.Peek()
	if value != 70 {
		t.Errorf("Expected in-place update visible, got %d", value)
	}

	// Pop zeroes the slot, invalidating the reference
	buf.Pop()
	if *ref != 0 {
		t.Errorf("Expected stale reference to see zeroed slot, got %d", *ref)
	}
}

func TestBufferNilReceiver(t *testing.T) {
	var buf *Buffer[int]

	if buf.Size() != 0 {
		t.Errorf("Expected size 0, got %d", buf.Size())
	}
	if buf.Capacity() != 0 {
		t.Errorf("Expected capacity 0, got %d", buf.Capacity())
	}
	if buf.Available() != 0 {
		t.Errorf("Expected available 0, got %d", buf.Available())
	}
	if !buf.IsEmpty() {
		t.Error("Expected nil buffer to report empty")
	}
	if buf.IsFull() {
		t.Error("Expected nil buffer to report not full")
	}
	if buf.MemoryBytes() != 0 {
		t.Errorf("Expected 0 memory bytes, got %d", buf.MemoryBytes())
	}
	if buf.Stats() != nil {
		t.Error("Expected nil stats")
	}

	if err := buf.Push(1); !errors.Is(err, cerrors.ErrNilBuffer) {
		t.Errorf("Expected ErrNilBuffer from Push, got %v", err)
	}
	if err := buf.TryPush(1); !errors.Is(err, cerrors.ErrNilBuffer) {
		t.Errorf("Expected ErrNilBuffer from TryPush, got %v", err)
	}
	if _, err := buf.PopBatch(make([]int, 1)); !errors.Is(err, cerrors.ErrNilBuffer) {
		t.Errorf("Expected ErrNilBuffer from PopBatch, got %v", err)
	}

	if _, ok := buf.Pop(); ok {
		t.Error("Expected pop on nil buffer to fail")
	}
	if _, ok := buf.Peek(); ok {
		t.Error("Expected peek on nil buffer to fail")
	}
	if ref, ok := buf.PeekRef(); ok || ref != nil {
		t.Error("Expected no reference from nil buffer")
	}
	if buf.Snapshot() != nil {
		t.Error("Expected nil snapshot")
	}
	if buf.Drain() != nil {
		t.Error("Expected nil drain")
	}

	// Must not panic
	buf.Clear()
	buf.Scrub()
}

func TestBufferDropCallback(t *testing.T) {
	var dropped []int
	buf, err := New[int](2, WithDropCallback[int](func(item int) {
		dropped = append(dropped, item)
	}))
	require.NoError(t, err)

	// Overwrites report the displaced element
	for i := 1; i <= 4; i++ {
		buf.Push(i)
	}
	// Rejection reports the rejected element
	_ = buf.TryPush(5)

	expected := []int{1, 2, 5}
	if len(dropped) != len(expected) {
		t.Fatalf("Expected %d dropped items, got %d: %v", len(expected), len(dropped), dropped)
	}
	for i, want := range expected {
		if dropped[i] != want {
			t.Errorf("Dropped %d: expected %d, got %d", i, want, dropped[i])
		}
	}
}

func TestBufferSnapshotAndDrain(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)

	if buf.Snapshot() != nil {
		t.Error("Expected nil snapshot from empty buffer")
	}
	if buf.Drain() != nil {
		t.Error("Expected nil drain from empty buffer")
	}

	// Wrap the storage so the snapshot crosses the seam
	for i := 1; i <= 6; i++ {
		buf.Push(i)
	}

	snap := buf.Snapshot()
	expected := []int{3, 4, 5, 6}
	if len(snap) != len(expected) {
		t.Fatalf("Expected snapshot of %d, got %d", len(expected), len(snap))
	}
	for i, want := range expected {
		if snap[i] != want {
			t.Errorf("Snapshot %d: expected %d, got %d", i, want, snap[i])
		}
	}
	if buf.Size() != 4 {
		t.Errorf("Expected snapshot to leave size 4, got %d", buf.Size())
	}

	drained := buf.Drain()
	if len(drained) != 4 {
		t.Fatalf("Expected drain of 4, got %d", len(drained))
	}
	for i, want := range expected {
		if drained[i] != want {
			t.Errorf("Drain %d: expected %d, got %d", i, want, drained[i])
		}
	}
	if !buf.IsEmpty() {
		t.Error("Expected buffer empty after drain")
	}
}

func TestBufferClearVersusScrub(t *testing.T) {
	buf, err := New[string](2)
	require.NoError(t, err)

	buf.Push("secret")
	ref, ok := buf.PeekRef()
	require.True(t, ok, "Expected reference to pushed element")

	// Clear resets indexes but leaves storage in place
	buf.Clear()
	if *ref != "secret" {
		t.Errorf("Expected clear to leave slot contents, got %q", *ref)
	}
	if !buf.IsEmpty() {
		t.Error("Expected buffer empty after clear")
	}

	buf.Push("secret")
	ref, ok = buf.PeekRef()
	require.True(t, ok)

	// Scrub zeroes the storage as well
	buf.Scrub()
	if *ref != "" {
		t.Errorf("Expected scrub to zero slot contents, got %q", *ref)
	}
	if !buf.IsEmpty() {
		t.Error("Expected buffer empty after scrub")
	}

	// Both leave the buffer usable
	buf.Push("again")
	value, ok := buf.Pop()
	if !ok || value != "again" {
		t.Errorf("Expected 'again' after scrub, got %q (ok=%v)", value, ok)
	}
}

func TestBufferGenericTypes(t *testing.T) {
	type event struct {
		ID      int
		Payload string
	}

	buf, err := New[event](3)
	require.NoError(t, err)

	buf.Push(event{ID: 1, Payload: "alpha"})
	buf.Push(event{ID: 2, Payload: "beta"})

	value, ok := buf.Pop()
	if !ok || value.ID != 1 || value.Payload != "alpha" {
		t.Errorf("Expected event 1/alpha, got %+v (ok=%v)", value, ok)
	}

	ptrBuf, err := New[*event](2)
	require.NoError(t, err)

	e := &event{ID: 3}
	ptrBuf.Push(e)
	got, ok := ptrBuf.Pop()
	if !ok || got != e {
		t.Error("Expected same pointer back")
	}
}

func TestBufferEdgeCases(t *testing.T) {
	t.Run("CapacityOne", func(t *testing.T) {
		buf, err := New[int](1)
		require.NoError(t, err)

		buf.Push(1)
		if !buf.IsFull() {
			t.Error("Expected capacity-1 buffer full after one push")
		}

		buf.Push(2)
		value, ok := buf.Pop()
		if !ok || value != 2 {
			t.Errorf("Expected overwrite to keep 2, got %d (ok=%v)", value, ok)
		}

		if err := buf.TryPush(3); err != nil {
			t.Errorf("Expected TryPush on emptied buffer to succeed: %v", err)
		}
		if err := buf.TryPush(4); !errors.Is(err, cerrors.ErrFull) {
			t.Errorf("Expected ErrFull, got %v", err)
		}
	})

	t.Run("EmptyReads", func(t *testing.T) {
		buf, err := New[int](4)
		require.NoError(t, err)

		if _, ok := buf.Pop(); ok {
			t.Error("Expected pop on empty buffer to fail")
		}
		if _, ok := buf.Peek(); ok {
			t.Error("Expected peek on empty buffer to fail")
		}
	})
}

func TestBufferStatistics(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)

	stats := buf.Stats()
	require.NotNil(t, stats, "Statistics are always enabled")

	buf.Push(1)
	buf.Push(2)
	buf.Push(3)
	buf.Pop()
	buf.Peek()

	if stats.Pushes() != 3 {
		t.Errorf("Expected 3 pushes, got %d", stats.Pushes())
	}
	if stats.Pops() != 1 {
		t.Errorf("Expected 1 pop, got %d", stats.Pops())
	}
	if stats.Peeks() != 1 {
		t.Errorf("Expected 1 peek, got %d", stats.Peeks())
	}
	if stats.CurrentSize() != 2 {
		t.Errorf("Expected current size 2, got %d", stats.CurrentSize())
	}
	if stats.MaxSize() != 3 {
		t.Errorf("Expected max size 3, got %d", stats.MaxSize())
	}

	// Batch pops count per element
	dst := make([]int, 2)
	n, err := buf.PopBatch(dst)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	if stats.Pops() != 3 {
		t.Errorf("Expected 3 pops after batch, got %d", stats.Pops())
	}

	summary := stats.Summary()
	if summary.Pushes != 3 || summary.Pops != 3 || summary.Peeks != 1 {
		t.Errorf("Summary mismatch: %+v", summary)
	}
	if summary.MemoryBytes != buf.MemoryBytes() {
		t.Errorf("Expected summary memory %d, got %d", buf.MemoryBytes(), summary.MemoryBytes)
	}

	stats.Reset()
	if stats.Pushes() != 0 || stats.Pops() != 0 {
		t.Error("Expected counters zeroed after reset")
	}
}

func TestBufferMemoryBytes(t *testing.T) {
	buf, err := New[int64](128)
	require.NoError(t, err)

	if buf.MemoryBytes() != 128*8 {
		t.Errorf("Expected 1024 bytes, got %d", buf.MemoryBytes())
	}
	if buf.Stats().MemoryUsage() != buf.MemoryBytes() {
		t.Error("Expected stats to carry the same footprint")
	}
}

func TestBufferErrorClassification(t *testing.T) {
	var nilBuf *Buffer[int]

	err := nilBuf.Push(1)
	var classified *cerrors.ClassifiedError
	if !errors.As(err, &classified) {
		t.Fatal("Expected classified error from nil push")
	}
	if classified.Class != cerrors.ErrorInvalid {
		t.Errorf("Expected ErrorInvalid class, got %v", classified.Class)
	}
	if classified.Component != "Buffer" {
		t.Errorf("Expected component 'Buffer', got %s", classified.Component)
	}
	if classified.Operation != "Push" {
		t.Errorf("Expected operation 'Push', got %s", classified.Operation)
	}

	buf, err := New[int](2)
	require.NoError(t, err)

	_, err = buf.PopBatch(nil)
	if !cerrors.IsInvalid(err) {
		t.Errorf("Expected invalid classification for zero-length destination, got %v", err)
	}

	buf.TryPush(1)
	buf.TryPush(2)
	err = buf.TryPush(3)
	if !cerrors.IsTransient(err) {
		t.Errorf("Expected full buffer to classify transient, got %v", err)
	}
}

func TestBufferMetricsIntegration(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	buf, err := New[int](4, WithMetrics[int](registry, "test_ring"))
	require.NoError(t, err, "Failed to create buffer with metrics")

	for i := 1; i <= 5; i++ {
		buf.Push(i)
	}
	buf.Pop()
	buf.Peek()

	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err, "Failed to gather metrics")

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}

	for _, name := range []string{
		"ringkit_ring_pushes_total",
		"ringkit_ring_pops_total",
		"ringkit_ring_peeks_total",
		"ringkit_ring_overflows_total",
		"ringkit_ring_drops_total",
		"ringkit_ring_size",
		"ringkit_ring_utilization",
	} {
		if !found[name] {
			t.Errorf("Expected metric family %s to be registered", name)
		}
	}

	// A component name backs at most one buffer per registry
	_, err = New[int](4, WithMetrics[int](registry, "test_ring"))
	if err == nil {
		t.Error("Expected duplicate component registration to fail")
	}

	// Metrics remain optional
	plain, err := New[int](4)
	require.NoError(t, err)
	if plain.metrics != nil {
		t.Error("Expected no metrics without WithMetrics")
	}
}
