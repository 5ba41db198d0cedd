package pq

// White-box bridge for pq_test: exposes invariant checks over the private
// storage of both backends without widening the production API.

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// VerifyHeap checks min-heap order over every parent/child pair and that the
// handle index maps each live item to the slot it occupies.
func VerifyHeap[K comparable, P constraints.Ordered](h *BinaryHeap[K, P]) error {
	for i := 1; i < h.size; i++ {
		if h.elements[i].priority < h.elements[parent(i)].priority {
			return fmt.Errorf("heap order violated at %d: %v < parent %v",
				i, h.elements[i], h.elements[parent(i)])
		}
	}

	return verifyHandles(h.elements[:h.size], h.handles)
}

// VerifySorted checks that the sequence is non-decreasing and that the handle
// index is consistent with it.
func VerifySorted[K comparable, P constraints.Ordered](s *Sorted[K, P]) error {
	for i := 1; i < len(s.queue); i++ {
		if s.queue[i].priority < s.queue[i-1].priority {
			return fmt.Errorf("order violated at %d: %v < %v", i, s.queue[i], s.queue[i-1])
		}
	}

	return verifyHandles(s.queue, s.handles)
}

func verifyHandles[K comparable, P constraints.Ordered](live []entry[K, P], handles map[K]int) error {
	if len(handles) != len(live) {
		return fmt.Errorf("handle index holds %d items, storage holds %d", len(handles), len(live))
	}
	for i, e := range live {
		pos, ok := handles[e.item]
		if !ok {
			return fmt.Errorf("item %v at %d has no handle", e.item, i)
		}
		if pos != i {
			return fmt.Errorf("item %v at %d has handle %d", e.item, i, pos)
		}
	}

	return nil
}

// HeapPosition returns the slot of item in h.
func HeapPosition[K comparable, P constraints.Ordered](h *BinaryHeap[K, P], item K) (int, bool) {
	i, ok := h.handles[item]
	return i, ok
}

// SortedPosition returns the slot of item in s.
func SortedPosition[K comparable, P constraints.Ordered](s *Sorted[K, P], item K) (int, bool) {
	i, ok := s.handles[item]
	return i, ok
}

// HeapCapacity returns the length of the backing array of h.
func HeapCapacity[K comparable, P constraints.Ordered](h *BinaryHeap[K, P]) int {
	return len(h.elements)
}
