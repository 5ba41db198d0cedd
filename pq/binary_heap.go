package pq

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BinaryHeap is an indexed min-priority queue backed by an array interpreted
// as a complete binary tree: the children of position i live at 2i+1 and
// 2i+2, its parent at (i-1)/2. Every entry's priority is ≤ the priorities of
// its children, except transiently inside a single sift.
//
// handles maps each queued item to its position in elements and is rewritten
// for exactly the items that move on every swap.
type BinaryHeap[K comparable, P constraints.Ordered] struct {
	elements []entry[K, P] // backing array; len(elements) is the capacity
	size     int           // number of live entries, elements[:size]
	handles  map[K]int     // item → index into elements
}

var _ Queue[string, float64] = (*BinaryHeap[string, float64])(nil)

// NewBinaryHeap returns an empty heap with room for capacity entries before
// the first growth. A non-positive capacity selects DefaultCapacity.
func NewBinaryHeap[K comparable, P constraints.Ordered](capacity int) *BinaryHeap[K, P] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &BinaryHeap[K, P]{
		elements: make([]entry[K, P], capacity),
		handles:  make(map[K]int, capacity),
	}
}

func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
func parent(i int) int { return (i - 1) / 2 }

// Insert adds item at priority, or lowers its priority if it is already queued.
// Complexity: O(log n), amortized O(1) for the occasional growth.
func (h *BinaryHeap[K, P]) Insert(item K, priority P) {
	if _, ok := h.handles[item]; ok {
		// Present: the only possible effect is a decrease.
		_ = h.DecreaseKey(item, priority)
		return
	}

	if h.size == len(h.elements) {
		h.grow()
	}

	// Append at the end, then restore order between the new leaf and its ancestors.
	h.elements[h.size] = entry[K, P]{item: item, priority: priority}
	h.handles[item] = h.size
	h.size++
	h.siftUp(h.size - 1)
}

// PeekMin returns the priority stored at the root.
// Complexity: O(1).
func (h *BinaryHeap[K, P]) PeekMin() (P, error) {
	if h.size == 0 {
		var zero P
		return zero, ErrEmptyQueue
	}

	return h.elements[0].priority, nil
}

// ExtractMin removes the root and returns its item.
//
// Steps:
//  1. Save the root entry.
//  2. Move the last entry into the root slot and shrink the heap by one.
//  3. Sift the displaced entry down until order is restored.
//
// Complexity: O(log n).
func (h *BinaryHeap[K, P]) ExtractMin() (K, error) {
	if h.size == 0 {
		var zero K
		return zero, ErrEmptyQueue
	}

	root := h.elements[0]
	last := h.size - 1
	h.elements[0] = h.elements[last]
	h.elements[last] = entry[K, P]{} // drop references held by the vacated slot
	h.size--
	delete(h.handles, root.item)

	if h.size > 0 {
		h.handles[h.elements[0].item] = 0
		h.siftDown(0)
	}

	return root.item, nil
}

// Contains reports whether item is queued. Complexity: O(1).
func (h *BinaryHeap[K, P]) Contains(item K) bool {
	_, ok := h.handles[item]
	return ok
}

// Priority returns the priority of item. Complexity: O(1).
func (h *BinaryHeap[K, P]) Priority(item K) (P, error) {
	i, ok := h.handles[item]
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}

	return h.elements[i].priority, nil
}

// DecreaseKey lowers the priority of item and sifts it towards the root.
// Complexity: O(log n).
func (h *BinaryHeap[K, P]) DecreaseKey(item K, priority P) error {
	i, ok := h.handles[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	if !(priority < h.elements[i].priority) {
		return nil
	}
	h.elements[i].priority = priority
	h.siftUp(i)

	return nil
}

// Len returns the number of queued items.
func (h *BinaryHeap[K, P]) Len() int { return h.size }

// String renders the entries in array order.
func (h *BinaryHeap[K, P]) String() string {
	return formatEntries(h.elements[:h.size])
}

// siftUp moves the entry at i towards the root while it is smaller than its
// parent. i must be the only heap-order violation.
func (h *BinaryHeap[K, P]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !(h.elements[i].priority < h.elements[p].priority) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// siftDown moves the entry at i towards the leaves. At every level it picks
// the smaller child (the only child, if there is one) and swaps while that
// child is strictly smaller. i must be the only heap-order violation.
func (h *BinaryHeap[K, P]) siftDown(i int) {
	for {
		smallest := -1
		l, r := left(i), right(i)
		if r < h.size {
			// Two children: compare against the smaller one.
			c := l
			if h.elements[r].priority < h.elements[l].priority {
				c = r
			}
			if h.elements[c].priority < h.elements[i].priority {
				smallest = c
			}
		} else if l < h.size && h.elements[l].priority < h.elements[i].priority {
			smallest = l
		}

		if smallest < 0 {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges the entries at i and j and re-points their handles.
func (h *BinaryHeap[K, P]) swap(i, j int) {
	h.elements[i], h.elements[j] = h.elements[j], h.elements[i]
	h.handles[h.elements[i].item] = i
	h.handles[h.elements[j].item] = j
}

// grow doubles the backing array.
func (h *BinaryHeap[K, P]) grow() {
	n := 2 * len(h.elements)
	if n == 0 {
		n = DefaultCapacity
	}
	bigger := make([]entry[K, P], n)
	copy(bigger, h.elements[:h.size])
	h.elements = bigger
}
