// Package pq provides indexed min-priority queues: queues whose entries are
// addressed by item identity, so that callers can test membership, look up
// the priority of a queued item and lower it in place (decrease-key) in
// addition to the usual insert and extract-minimum operations.
//
// Two interchangeable backends implement the Queue contract:
//
//	BinaryHeap – array-backed binary min-heap.
//	Sorted     – sequence kept in ascending priority order.
//
// Both keep a handle index (item → position in the backing storage) that is
// updated on every structural mutation, which turns Contains, Priority and the
// position lookup of DecreaseKey into O(1) map accesses.
//
// Complexity:
//
//	Operation     BinaryHeap   Sorted
//	Insert        O(log n)     O(n)
//	PeekMin       O(1)         O(1)
//	ExtractMin    O(log n)     O(n)
//	DecreaseKey   O(log n)     O(k), k = distance moved (O(n) worst case)
//	Contains      O(1)         O(1)
//	Priority      O(1)         O(1)
//
// The sorted backend only pays off for small queues or for workloads with few
// re-orderings; the binary heap is the default everywhere else.
//
// Type parameters:
//
//	K – item identity. Must be comparable: it is used as a map key, so it needs
//	    equality and a stable hash. Two live entries never share an item.
//	P – priority. Any ordered type; the shortest-path solver uses float64 and
//	    relies on math.Inf(1) as "not reached yet".
//
// Ties between equal priorities are broken deterministically for a given
// sequence of operations, but the order is backend specific and must not be
// relied on.
//
// Errors (sentinel):
//
//	– ErrEmptyQueue     PeekMin/ExtractMin on an empty queue.
//	– ErrItemNotFound   Priority/DecreaseKey on an item that is not queued.
//	– ErrUnknownBackend ParseBackend/New with an unrecognised backend.
//
// Queues are not safe for concurrent use.
//
// Example usage:
//
//	q := pq.NewBinaryHeap[string, float64](0)
//	q.Insert("B", 4)
//	q.Insert("A", 7)
//	q.Insert("A", 1) // already queued: behaves like DecreaseKey
//	item, _ := q.ExtractMin() // "A"
package pq
