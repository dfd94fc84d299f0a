package dfs

import (
	"sort"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/lvroute/core"
)

// frame is one pending stack entry: a node index, its tree depth and the index
// it was pushed from (-1 for the root).
type frame struct {
	node, depth, parent int
}

// walker holds the state of one traversal over a snapshot.
type walker struct {
	snap    *core.Snapshot
	opts    DFSOptions
	visited *bit.Set
	stack   []frame
}

func newWalker(snap *core.Snapshot, opts []Option) *walker {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &walker{
		snap:    snap,
		opts:    o,
		visited: new(bit.Set),
		stack:   make([]frame, 0, 16),
	}
}

// run walks from start in pre-order, calling visit on first discovery of each node.
// If visit returns true the walk stops early.
func (w *walker) run(start int, visit func(f frame) (stop bool)) error {
	w.stack = append(w.stack[:0], frame{node: start, depth: 0, parent: -1})

	var (
		f    frame
		nbrs []core.IndexedArc
	)
	for len(w.stack) > 0 {
		// 1. Cancellation check
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		// 2. Pop
		f = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited.Contains(f.node) {
			continue
		}
		w.visited.Add(f.node)

		if visit(f) {
			return nil
		}

		// 3. Depth limit: do not expand below MaxDepth
		if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
			continue
		}

		// 4. Push unvisited neighbors in reverse so the smallest index pops first.
		nbrs = w.snap.Neighbors(f.node)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !w.visited.Contains(nbrs[i].To) {
				w.stack = append(w.stack, frame{node: nbrs[i].To, depth: f.depth + 1, parent: f.node})
			}
		}
	}

	return nil
}

// DFS performs a depth-first traversal of g starting at start.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	snap := g.Snapshot()
	si, ok := snap.Index(start)
	if !ok {
		return nil, ErrStartVertexNotFound
	}

	res := &DFSResult{
		Order:  make([]string, 0, snap.Len()),
		Depth:  make(map[string]int, snap.Len()),
		Parent: make(map[string]string, snap.Len()),
	}
	w := newWalker(snap, opts)
	err := w.run(si, func(f frame) bool {
		key := snap.Key(f.node)
		res.Order = append(res.Order, key)
		res.Depth[key] = f.depth
		if f.parent >= 0 {
			res.Parent[key] = snap.Key(f.parent)
		}
		return false
	})
	if err != nil {
		return res, err
	}

	return res, nil
}

// Reachable reports whether to can be reached from from along any sequence of edges.
// A node is always reachable from itself.
func Reachable(g *core.Graph, from, to string, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	snap := g.Snapshot()
	fi, okF := snap.Index(from)
	ti, okT := snap.Index(to)
	if !okF || !okT {
		return false, ErrStartVertexNotFound
	}

	return ReachableIn(snap, fi, ti, opts...)
}

// ReachableIn is Reachable on an existing snapshot, addressed by node index.
// Searches that already hold a snapshot use it to avoid copying the graph twice.
func ReachableIn(snap *core.Snapshot, from, to int, opts ...Option) (bool, error) {
	if from == to {
		return true, nil
	}
	found := false
	w := newWalker(snap, opts)
	err := w.run(from, func(f frame) bool {
		found = f.node == to
		return found
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// Component returns the keys of every node reachable from start, sorted ascending.
func Component(g *core.Graph, start string, opts ...Option) ([]string, error) {
	res, err := DFS(g, start, opts...)
	if err != nil {
		return nil, err
	}
	out := append([]string(nil), res.Order...)
	sort.Strings(out)

	return out, nil
}
