package ring

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/c360/ringkit/metric"
)

// BenchmarkBufferPush measures the lossy write path across capacities.
// Buffers are kept full so every push takes the overwrite branch.
func BenchmarkBufferPush(b *testing.B) {
	for _, capacity := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("Capacity_%d", capacity), func(b *testing.B) {
			buf, err := New[int](capacity)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Push(i)
			}
		})
	}
}

// BenchmarkBufferTryPush measures the rejecting write path, alternating
// between accepted and rejected pushes.
func BenchmarkBufferTryPush(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := buf.TryPush(i); err != nil {
			buf.Pop()
		}
	}
}

// BenchmarkBufferPop measures the read path with a refill every capacity
// iterations.
func BenchmarkBufferPop(b *testing.B) {
	for _, capacity := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("Capacity_%d", capacity), func(b *testing.B) {
			buf, err := New[int](capacity)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < capacity; i++ {
				buf.Push(i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, ok := buf.Pop(); !ok {
					b.StopTimer()
					for j := 0; j < capacity; j++ {
						buf.Push(j)
					}
					b.StartTimer()
				}
			}
		})
	}
}

// BenchmarkBufferPopBatch measures batch reads at several destination sizes.
func BenchmarkBufferPopBatch(b *testing.B) {
	const capacity = 1000

	for _, batchSize := range []int{1, 10, 100, 1000} {
		b.Run(fmt.Sprintf("Batch_%d", batchSize), func(b *testing.B) {
			buf, err := New[int](capacity)
			if err != nil {
				b.Fatal(err)
			}
			dst := make([]int, batchSize)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if buf.IsEmpty() {
					b.StopTimer()
					for j := 0; j < capacity; j++ {
						buf.Push(j)
					}
					b.StartTimer()
				}
				buf.PopBatch(dst)
			}
		})
	}
}

// BenchmarkBufferPeek measures non-consuming reads, copy versus reference.
func BenchmarkBufferPeek(b *testing.B) {
	type payload struct {
		ID   int
		Data [64]byte
	}

	buf, err := New[payload](100)
	if err != nil {
		b.Fatal(err)
	}
	buf.Push(payload{ID: 1})

	b.Run("Copy", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			buf.Peek()
		}
	})

	b.Run("Reference", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			buf.PeekRef()
		}
	})
}

// BenchmarkBufferMixed simulates a realistic 40/40/20 push/pop/peek mix.
func BenchmarkBufferMixed(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		switch rng.Intn(10) {
		case 0, 1, 2, 3:
			buf.Push(i)
		case 4, 5, 6, 7:
			buf.Pop()
		default:
			buf.Peek()
		}
	}
}

// BenchmarkBufferWithMetrics compares the push path with Prometheus metrics
// disabled and enabled.
func BenchmarkBufferWithMetrics(b *testing.B) {
	b.Run("StatisticsOnly", func(b *testing.B) {
		buf, err := New[int](1000)
		if err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf.Push(i)
		}
	})

	b.Run("WithPrometheus", func(b *testing.B) {
		registry := metric.NewMetricsRegistry()
		buf, err := New[int](1000, WithMetrics[int](registry, "bench_ring"))
		if err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			buf.Push(i)
		}
	})
}

// BenchmarkBufferDropCallback measures overwrite cost with a callback
// installed.
func BenchmarkBufferDropCallback(b *testing.B) {
	var sink int
	buf, err := New[int](100, WithDropCallback[int](func(item int) {
		sink = item
	}))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		buf.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Push(i)
	}
	_ = sink
}

// BenchmarkBufferGenericTypes compares element sizes on the push path.
func BenchmarkBufferGenericTypes(b *testing.B) {
	b.Run("Int", func(b *testing.B) {
		buf, err := New[int](1000)
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			buf.Push(i)
		}
	})

	b.Run("String", func(b *testing.B) {
		buf, err := New[string](1000)
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			buf.Push("benchmark payload")
		}
	})

	b.Run("Struct", func(b *testing.B) {
		type event struct {
			ID      int
			Name    string
			Payload [32]byte
		}
		buf, err := New[event](1000)
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			buf.Push(event{ID: i, Name: "bench"})
		}
	})

	b.Run("Pointer", func(b *testing.B) {
		type event struct {
			ID int
		}
		buf, err := New[*event](1000)
		if err != nil {
			b.Fatal(err)
		}
		e := &event{ID: 1}
		for i := 0; i < b.N; i++ {
			buf.Push(e)
		}
	})
}

// BenchmarkBufferSnapshot measures the allocating diagnostic read.
func BenchmarkBufferSnapshot(b *testing.B) {
	buf, err := New[int](1000)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 1000; i++ {
		buf.Push(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Snapshot()
	}
}
