package pq_test

import (
	"testing"

	"github.com/katalvlaran/pqpath/pq"
)

// benchmarkFill inserts n items at pseudo-random priorities, lowers a third
// of them, then drains the queue.
func benchmarkFill(b *testing.B, newQueue func() pq.Queue[int, float64], n int) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q := newQueue()
		for v := 0; v < n; v++ {
			q.Insert(v, float64((v*7919)%n))
		}
		for v := 0; v < n; v += 3 {
			_ = q.DecreaseKey(v, -1)
		}
		for q.Len() > 0 {
			_, _ = q.ExtractMin()
		}
	}
}

// BenchmarkBinaryHeap_1000 measures insert/decrease/extract on 1,000 items.
// Complexity: O(n log n) per iteration.
func BenchmarkBinaryHeap_1000(b *testing.B) {
	benchmarkFill(b, func() pq.Queue[int, float64] { return pq.NewBinaryHeap[int, float64](0) }, 1000)
}

// BenchmarkSorted_1000 measures the same workload on the sorted backend.
// Complexity: O(n²) per iteration because every mutation shifts the slice.
func BenchmarkSorted_1000(b *testing.B) {
	benchmarkFill(b, func() pq.Queue[int, float64] { return pq.NewSorted[int, float64](0) }, 1000)
}

// BenchmarkBinaryHeap_32 and BenchmarkSorted_32 compare both backends on a
// queue small enough for the sorted backend to be competitive.
func BenchmarkBinaryHeap_32(b *testing.B) {
	benchmarkFill(b, func() pq.Queue[int, float64] { return pq.NewBinaryHeap[int, float64](0) }, 32)
}

func BenchmarkSorted_32(b *testing.B) {
	benchmarkFill(b, func() pq.Queue[int, float64] { return pq.NewSorted[int, float64](0) }, 32)
}
