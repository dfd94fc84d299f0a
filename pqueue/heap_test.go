// Package pqueue_test verifies ordering and index-map invariants of the indexed heap.
package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/pqueue"
)

// entry is a mutable record keyed by a stable name.
type entry struct {
	name string
	cost int64
}

func newEntryHeap() *pqueue.Heap[string, *entry] {
	return pqueue.New(
		func(e *entry) string { return e.name },
		func(a, b *entry) bool { return a.cost < b.cost },
	)
}

// drain extracts every item and returns the costs in extraction order.
func drain(t *testing.T, h *pqueue.Heap[string, *entry]) []int64 {
	t.Helper()
	out := make([]int64, 0, h.Len())
	for h.Len() > 0 {
		e, err := h.ExtractMin()
		require.NoError(t, err)
		require.False(t, h.Contains(e.name), "extracted %q must leave the index map", e.name)
		out = append(out, e.cost)
	}

	return out
}

func TestHeap_EmptyErrors(t *testing.T) {
	h := newEntryHeap()

	_, err := h.PeekMin()
	require.ErrorIs(t, err, pqueue.ErrEmptyHeap)

	_, err = h.ExtractMin()
	require.ErrorIs(t, err, pqueue.ErrEmptyHeap)
}

func TestHeap_InsertExtractOrder(t *testing.T) {
	h := newEntryHeap()
	costs := []int64{7, 3, 9, 1, 4, 4, 0, 12}
	for i, c := range costs {
		require.NoError(t, h.Insert(&entry{name: string(rune('a' + i)), cost: c}))
	}
	require.Equal(t, len(costs), h.Len())

	top, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, int64(0), top.cost)
	assert.Equal(t, len(costs), h.Len(), "PeekMin must not remove")

	got := drain(t, h)
	want := append([]int64(nil), costs...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	assert.Equal(t, want, got)
}

func TestHeap_DuplicateInsertRejected(t *testing.T) {
	h := newEntryHeap()
	require.NoError(t, h.Insert(&entry{name: "x", cost: 5}))
	err := h.Insert(&entry{name: "x", cost: 1})
	require.ErrorIs(t, err, pqueue.ErrDuplicateKey)
	assert.Equal(t, 1, h.Len())
}

func TestHeap_DecreaseKeyInPlace(t *testing.T) {
	h := newEntryHeap()
	items := map[string]*entry{
		"a": {name: "a", cost: 10},
		"b": {name: "b", cost: 20},
		"c": {name: "c", cost: 30},
		"d": {name: "d", cost: 40},
	}
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, h.Insert(items[k]))
	}

	// Mutate priority through the pointer, then restore order by identity.
	items["d"].cost = 5
	require.NoError(t, h.DecreaseKey(items["d"]))

	top, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, "d", top.name)

	got, ok := h.Get("d")
	require.True(t, ok)
	assert.Same(t, items["d"], got)

	assert.Equal(t, []int64{5, 10, 20, 30}, drain(t, h))
}

func TestHeap_DecreaseKeyStale(t *testing.T) {
	h := newEntryHeap()
	a := &entry{name: "a", cost: 1}
	require.NoError(t, h.Insert(a))
	_, err := h.ExtractMin()
	require.NoError(t, err)

	err = h.DecreaseKey(a)
	require.ErrorIs(t, err, pqueue.ErrStaleDecreaseKey)

	err = h.DecreaseKey(&entry{name: "never", cost: 0})
	require.ErrorIs(t, err, pqueue.ErrStaleDecreaseKey)
	assert.Equal(t, 0, h.Len())
}

func TestHeap_EqualKeysTieHandling(t *testing.T) {
	h := newEntryHeap()
	for _, n := range []string{"p", "q", "r", "s"} {
		require.NoError(t, h.Insert(&entry{name: n, cost: 3}))
	}
	// Equal priority: DecreaseKey with no change must not move anything or fail.
	p, ok := h.Get("p")
	require.True(t, ok)
	require.NoError(t, h.DecreaseKey(p))
	assert.Equal(t, []int64{3, 3, 3, 3}, drain(t, h))
}

// TestHeap_RandomizedNonDecreasing interleaves inserts, decreases and extractions and
// checks that every extracted cost is >= the previous one within each drain phase.
func TestHeap_RandomizedNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		h := newEntryHeap()
		live := make([]*entry, 0)
		n := 1 + rng.Intn(60)
		for i := 0; i < n; i++ {
			e := &entry{name: string(rune(0x100 + i)), cost: int64(rng.Intn(1000))}
			require.NoError(t, h.Insert(e))
			live = append(live, e)
		}

		// Random decreases on resident items.
		for i := 0; i < n; i++ {
			e := live[rng.Intn(len(live))]
			if !h.Contains(e.name) {
				continue
			}
			e.cost -= int64(rng.Intn(200))
			require.NoError(t, h.DecreaseKey(e))
		}

		var prev int64 = -1 << 62
		for h.Len() > 0 {
			e, err := h.ExtractMin()
			require.NoError(t, err)
			require.GreaterOrEqual(t, e.cost, prev)
			prev = e.cost

			// Decrease something still resident, but never below the last extracted cost,
			// which keeps the sequence non-decreasing as in a Dijkstra frontier.
			if h.Len() > 0 {
				other := live[rng.Intn(len(live))]
				if h.Contains(other.name) && other.cost > prev {
					other.cost = prev + int64(rng.Intn(int(other.cost-prev)+1))
					require.NoError(t, h.DecreaseKey(other))
				}
			}
		}
	}
}

func TestNew_PanicsOnNilFuncs(t *testing.T) {
	assert.Panics(t, func() {
		pqueue.New[string, *entry](nil, func(a, b *entry) bool { return a.cost < b.cost })
	})
	assert.Panics(t, func() {
		pqueue.New[string, *entry](func(e *entry) string { return e.name }, nil)
	})
}
