package pq

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// Sorted is an indexed min-priority queue that keeps its entries in
// ascending priority order at all times. Among equal priorities the entry
// inserted first stays first.
//
// PeekMin is O(1); every mutation shifts part of the slice and re-indexes the
// handles of the entries that moved.
type Sorted[K comparable, P constraints.Ordered] struct {
	queue   []entry[K, P] // ascending by priority
	handles map[K]int     // item → index into queue
}

var _ Queue[string, float64] = (*Sorted[string, float64])(nil)

// NewSorted returns an empty sorted queue. A non-positive capacity selects
// DefaultCapacity.
func NewSorted[K comparable, P constraints.Ordered](capacity int) *Sorted[K, P] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Sorted[K, P]{
		queue:   make([]entry[K, P], 0, capacity),
		handles: make(map[K]int, capacity),
	}
}

// Insert places a new item by binary search, or lowers the priority of an
// item that is already queued.
// Complexity: O(log n) search + O(n) shift and re-index.
func (s *Sorted[K, P]) Insert(item K, priority P) {
	if _, ok := s.handles[item]; ok {
		_ = s.DecreaseKey(item, priority)
		return
	}

	// First position whose priority is strictly greater: keeps ties FIFO.
	at := sort.Search(len(s.queue), func(i int) bool {
		return priority < s.queue[i].priority
	})

	s.queue = append(s.queue, entry[K, P]{})
	copy(s.queue[at+1:], s.queue[at:])
	s.queue[at] = entry[K, P]{item: item, priority: priority}

	s.reindex(at, len(s.queue))
}

// PeekMin returns the first priority. Complexity: O(1).
func (s *Sorted[K, P]) PeekMin() (P, error) {
	if len(s.queue) == 0 {
		var zero P
		return zero, ErrEmptyQueue
	}

	return s.queue[0].priority, nil
}

// ExtractMin removes the first entry and re-indexes the rest.
// Complexity: O(n).
func (s *Sorted[K, P]) ExtractMin() (K, error) {
	if len(s.queue) == 0 {
		var zero K
		return zero, ErrEmptyQueue
	}

	first := s.queue[0]
	n := len(s.queue)
	copy(s.queue, s.queue[1:])
	s.queue[n-1] = entry[K, P]{}
	s.queue = s.queue[:n-1]
	delete(s.handles, first.item)

	s.reindex(0, len(s.queue))

	return first.item, nil
}

// Contains reports whether item is queued. Complexity: O(1).
func (s *Sorted[K, P]) Contains(item K) bool {
	_, ok := s.handles[item]
	return ok
}

// Priority returns the priority of item. Complexity: O(1).
func (s *Sorted[K, P]) Priority(item K) (P, error) {
	i, ok := s.handles[item]
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}

	return s.queue[i].priority, nil
}

// DecreaseKey updates the priority in place and runs a backward insertion
// pass, swapping with the predecessor while the predecessor is larger. Only
// the handles in [new position, old position] are rewritten.
// Complexity: O(k) where k is the distance moved.
func (s *Sorted[K, P]) DecreaseKey(item K, priority P) error {
	i, ok := s.handles[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	if !(priority < s.queue[i].priority) {
		return nil
	}

	oldPos := i
	s.queue[i].priority = priority
	for i > 0 && priority < s.queue[i-1].priority {
		s.queue[i-1], s.queue[i] = s.queue[i], s.queue[i-1]
		i--
	}
	s.reindex(i, oldPos+1)

	return nil
}

// Len returns the number of queued items.
func (s *Sorted[K, P]) Len() int { return len(s.queue) }

// String renders the entries in ascending order.
func (s *Sorted[K, P]) String() string {
	return formatEntries(s.queue)
}

// reindex rewrites the handles of queue[from:to].
func (s *Sorted[K, P]) reindex(from, to int) {
	for i := from; i < to; i++ {
		s.handles[s.queue[i].item] = i
	}
}
