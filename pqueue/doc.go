// Package pqueue provides an indexed binary min-heap with decrease-key support.
//
// Overview:
//
//   - Heap[K, T] stores items of type T ordered by a caller-supplied strict
//     "less" function, and tracks the current slot of every resident item under a
//     stable identity K = key(item).
//   - The identity is decoupled from the priority: callers mutate an item's
//     priority in place (e.g. through a pointer) and then call DecreaseKey with
//     the same item. The index map never goes out of sync because it is keyed by
//     identity, not by the mutable priority.
//
// Operations and complexity:
//
//   - Insert:      O(log n), appends then sifts up.
//   - PeekMin:     O(1).
//   - ExtractMin:  O(log n), swaps root with last slot, shrinks, sifts the new root down.
//   - DecreaseKey: O(log n), sifts the resident item up only.
//   - Contains:    O(1).
//
// Ordering rules:
//
//   - Sift-up moves a child above its parent only when less(child, parent) is true.
//     Ties keep their current relative position; the heap is not stable.
//   - Sift-down picks the strictly smallest of {node, left, right} and stops when
//     the node itself is smallest.
//
// Preconditions (documented, not checked):
//
//   - DecreaseKey must only be called after the item's priority went down or stayed equal.
//     Raising a priority and calling DecreaseKey breaks the heap property.
//
// Errors (sentinel):
//
//   - ErrEmptyHeap:        PeekMin or ExtractMin on an empty heap.
//   - ErrStaleDecreaseKey: DecreaseKey for an identity that is not resident.
//   - ErrDuplicateKey:     Insert of an identity that is already resident.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Each search owns its own heap.
package pqueue
