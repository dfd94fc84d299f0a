package pqueue

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Heap operations.
var (
	// ErrEmptyHeap indicates PeekMin or ExtractMin was called on an empty heap.
	ErrEmptyHeap = errors.New("pqueue: heap is empty")

	// ErrStaleDecreaseKey indicates DecreaseKey was called for an identity that is
	// not currently resident (never inserted, or already extracted).
	ErrStaleDecreaseKey = errors.New("pqueue: decrease-key on non-resident item")

	// ErrDuplicateKey indicates Insert was called for an identity that is already resident.
	ErrDuplicateKey = errors.New("pqueue: item identity already resident")
)

// Heap is an indexed binary min-heap.
//
// data holds the implicit binary tree; slots maps each resident identity to its
// position in data. Both are updated together in swap, which is the only place
// positions change.
type Heap[K comparable, T any] struct {
	data  []T
	slots map[K]int
	key   func(T) K
	less  func(a, b T) bool
}

// New creates an empty Heap.
//
//   - key:  returns the stable identity of an item; must not depend on its priority.
//   - less: strict total order on priorities; less(a, b) is true when a must be extracted before b.
//
// Panics if key or less is nil.
func New[K comparable, T any](key func(T) K, less func(a, b T) bool) *Heap[K, T] {
	return NewWithCapacity(0, key, less)
}

// NewWithCapacity is New with preallocated storage for n items.
func NewWithCapacity[K comparable, T any](n int, key func(T) K, less func(a, b T) bool) *Heap[K, T] {
	if key == nil || less == nil {
		panic("pqueue: key and less functions are required")
	}
	if n < 0 {
		n = 0
	}

	return &Heap[K, T]{
		data:  make([]T, 0, n),
		slots: make(map[K]int, n),
		key:   key,
		less:  less,
	}
}

// Len returns the number of resident items.
func (h *Heap[K, T]) Len() int { return len(h.data) }

// Contains reports whether an item with identity k is resident.
func (h *Heap[K, T]) Contains(k K) bool {
	_, ok := h.slots[k]
	return ok
}

// Get returns the resident item with identity k.
func (h *Heap[K, T]) Get(k K) (T, bool) {
	i, ok := h.slots[k]
	if !ok {
		var zero T
		return zero, false
	}

	return h.data[i], true
}

// Insert adds item to the heap and restores heap order.
// Returns ErrDuplicateKey if an item with the same identity is already resident.
func (h *Heap[K, T]) Insert(item T) error {
	k := h.key(item)
	if _, exists := h.slots[k]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, k)
	}

	// 1) Append to the last slot and register it.
	h.data = append(h.data, item)
	h.slots[k] = len(h.data) - 1

	// 2) Bubble it up to its place.
	h.siftUp(len(h.data) - 1)

	return nil
}

// PeekMin returns the root without removing it.
func (h *Heap[K, T]) PeekMin() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// ExtractMin removes and returns the root.
func (h *Heap[K, T]) ExtractMin() (T, error) {
	n := len(h.data)
	if n == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}

	// 1) Move the root to the last slot; swap re-registers both positions.
	last := n - 1
	h.swap(0, last)

	// 2) Detach the old root and clear the slot so the backing array drops the reference.
	root := h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]

	// 3) Restore order from the new root, then forget the extracted identity.
	if len(h.data) > 0 {
		h.siftDown(0)
	}
	delete(h.slots, h.key(root))

	return root, nil
}

// DecreaseKey restores heap order after the priority of a resident item went down.
//
// The item is located by identity. If it is not resident, ErrStaleDecreaseKey is
// returned and the heap is untouched. Only sift-up is performed; calling this
// after raising a priority leaves the heap corrupted.
func (h *Heap[K, T]) DecreaseKey(item T) error {
	k := h.key(item)
	i, ok := h.slots[k]
	if !ok {
		return fmt.Errorf("%w: %v", ErrStaleDecreaseKey, k)
	}
	// Callers may pass a fresh value carrying the same identity.
	h.data[i] = item
	h.siftUp(i)

	return nil
}

// siftUp moves the item at i toward the root while it strictly precedes its parent.
func (h *Heap[K, T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the item at i toward the leaves while a child strictly precedes it.
func (h *Heap[K, T]) siftDown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap[K, T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.slots[h.key(h.data[i])] = i
	h.slots[h.key(h.data[j])] = j
}
