package bfs

import (
	"fmt"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/lvroute/core"
)

// walker holds the state of one breadth-first walk over a snapshot.
type walker struct {
	snap *core.Snapshot
	opts Options
	// target ends the walk once dequeued; -1 walks the whole component.
	target int
	queue  []int
	depth  []int
	seen   *bit.Set
	res    *Result
}

// BFS walks g breadth-first from start.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or
// ctx.Err() when the walk is cancelled.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.run()
}

// FewestLegs returns the route from "from" to "to" with the fewest edges.
// Ties resolve towards the lexicographically smaller key at each hop.
// Returns ErrNoPath (wrapped) when to is unknown or unreachable under opts.
func FewestLegs(g *core.Graph, from, to string, opts ...Option) ([]string, error) {
	w, err := newWalker(g, from, opts)
	if err != nil {
		return nil, err
	}
	idx, ok := w.snap.Index(to)
	if !ok {
		return nil, fmt.Errorf("%w to %q: unknown node", ErrNoPath, to)
	}
	w.target = idx
	if err = w.run(); err != nil {
		return nil, err
	}

	return w.res.PathTo(to)
}

func newWalker(g *core.Graph, start string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	snap := g.Snapshot()
	src, ok := snap.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := snap.Len()
	w := &walker{
		snap:   snap,
		opts:   o,
		target: -1,
		queue:  make([]int, 0, n),
		depth:  make([]int, n),
		seen:   new(bit.Set),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.reach(src, 0, -1)

	return w, nil
}

// reach records idx at depth d under parent (-1 for the start) and queues it.
func (w *walker) reach(idx, d, parent int) {
	w.seen.Add(idx)
	w.depth[idx] = d
	key := w.snap.Key(idx)
	w.res.Depth[key] = d
	if parent >= 0 {
		w.res.Parent[key] = w.snap.Key(parent)
	}
	w.queue = append(w.queue, idx)
}

// run drains the queue in FIFO order.
func (w *walker) run() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		u := w.queue[head]
		key := w.snap.Key(u)
		w.res.Order = append(w.res.Order, key)
		if u == w.target {
			return nil
		}

		next := w.depth[u] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, arc := range w.snap.Neighbors(u) {
			if w.seen.Contains(arc.To) || !w.opts.Allow(key, w.snap.Key(arc.To)) {
				continue
			}
			w.reach(arc.To, next, u)
		}
	}

	return nil
}
