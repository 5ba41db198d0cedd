package pq

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// DefaultCapacity is the initial size of the backing storage used when a
// constructor is given a non-positive capacity.
const DefaultCapacity = 10

// Sentinel errors returned by the queue implementations.
var (
	// ErrEmptyQueue indicates PeekMin or ExtractMin on a queue with no entries.
	ErrEmptyQueue = errors.New("pq: queue is empty")

	// ErrItemNotFound indicates a lookup of an item that is not currently queued.
	ErrItemNotFound = errors.New("pq: item not found")

	// ErrUnknownBackend indicates an unrecognised backend name or value.
	ErrUnknownBackend = errors.New("pq: unknown backend")
)

// Queue is the indexed min-priority queue contract shared by every backend.
type Queue[K comparable, P constraints.Ordered] interface {
	// Insert adds item with the given priority. If item is already queued the
	// call behaves exactly like DecreaseKey, including its no-op case.
	Insert(item K, priority P)

	// PeekMin returns the smallest queued priority, or ErrEmptyQueue.
	PeekMin() (P, error)

	// ExtractMin removes and returns the item with the smallest priority,
	// or ErrEmptyQueue.
	ExtractMin() (K, error)

	// Contains reports whether item is currently queued.
	Contains(item K) bool

	// Priority returns the current priority of item, or ErrItemNotFound.
	Priority(item K) (P, error)

	// DecreaseKey lowers the priority of item to priority and restores the
	// ordering invariant. A priority that is not strictly lower than the
	// current one leaves the queue untouched. Returns ErrItemNotFound if item
	// is not queued.
	DecreaseKey(item K, priority P) error

	// Len returns the number of queued items.
	Len() int
}

// entry is one (item, priority) pair of a queue.
type entry[K comparable, P constraints.Ordered] struct {
	item     K
	priority P
}

func (e entry[K, P]) String() string {
	return fmt.Sprintf("[%v, %v]", e.item, e.priority)
}

// formatEntries renders entries in storage order.
func formatEntries[K comparable, P constraints.Ordered](entries []entry[K, P]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// Backend selects a Queue implementation.
type Backend int

const (
	// BinaryHeapBackend selects BinaryHeap.
	BinaryHeapBackend Backend = iota

	// SortedBackend selects Sorted.
	SortedBackend
)

// String returns the canonical name of b.
func (b Backend) String() string {
	switch b {
	case BinaryHeapBackend:
		return "heap"
	case SortedBackend:
		return "sorted"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Valid reports whether b names an implemented backend.
func (b Backend) Valid() bool {
	return b == BinaryHeapBackend || b == SortedBackend
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(b))
	}

	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backend) UnmarshalText(text []byte) error {
	parsed, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = parsed

	return nil
}

// ParseBackend maps a backend name to its Backend value. Accepted names are
// "heap", "binary-heap", "sorted" and "sorted-array" (case-insensitive).
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "heap", "binary-heap", "binaryheap":
		return BinaryHeapBackend, nil
	case "sorted", "sorted-array", "sortedarray":
		return SortedBackend, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// New returns an empty queue of the selected backend with the given initial
// capacity. It panics with ErrUnknownBackend for an invalid backend, the same
// way option constructors reject invalid arguments.
func New[K comparable, P constraints.Ordered](b Backend, capacity int) Queue[K, P] {
	switch b {
	case BinaryHeapBackend:
		return NewBinaryHeap[K, P](capacity)
	case SortedBackend:
		return NewSorted[K, P](capacity)
	default:
		panic(fmt.Errorf("%w: %d", ErrUnknownBackend, int(b)))
	}
}
