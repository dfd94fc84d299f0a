package dijkstra

import (
	"fmt"
	"math"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/pqueue"
)

// infinity marks a node not yet reached.
const infinity = math.MaxInt64

// ShortestPath computes one least-cost route from source to dest in g.
//
// Validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. source and dest must both be nodes of g (ErrInvalidEndpoints).
//  3. No edge may carry a negative weight (ErrNegativeWeight).
//  4. Every edge cost must stay below math.MaxInt64 under the chosen model,
//     and so must every relaxed path cost (ErrCostOverflow).
//
// Returns ErrUnreachable when dest lies in a different component than source.
// When source == dest the route is [source] with cost 0.
func ShortestPath(g *core.Graph, source, dest string, opts ...Option) (*Route, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Freeze the topology; everything below reads only the snapshot.
	snap := g.Snapshot()
	src, okS := snap.Index(source)
	dst, okD := snap.Index(dest)
	if !okS || !okD {
		return nil, fmt.Errorf("%w: %q -> %q", ErrInvalidEndpoints, source, dest)
	}

	// 3) Pre-scan edge weights and fail fast.
	maxWeight := int64(infinity - 1)
	if cfg.Model == Time {
		maxWeight = cfg.Time.MaxWeight()
	}
	for u := 0; u < snap.Len(); u++ {
		for _, a := range snap.Neighbors(u) {
			if a.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %s—%s weight=%d",
					ErrNegativeWeight, snap.Key(u), snap.Key(a.To), a.Weight)
			}
			if a.Weight > maxWeight {
				return nil, fmt.Errorf("%w: edge %s—%s weight=%d exceeds %d under %s",
					ErrCostOverflow, snap.Key(u), snap.Key(a.To), a.Weight, maxWeight, cfg.Model)
			}
		}
	}

	// 4) Optional unweighted rejection path.
	if cfg.PreCheck {
		ok, err := dfs.ReachableIn(snap, src, dst)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q -> %q", ErrUnreachable, source, dest)
		}
	}

	r := newRunner(snap, cfg)
	if err := r.seed(src); err != nil {
		return nil, err
	}
	rec, err := r.process(dst)
	if err != nil {
		return nil, fmt.Errorf("%w: %q -> %q", err, source, dest)
	}

	return &Route{
		Nodes: snap.Keys(rec.path.slice()),
		Cost:  rec.cost,
		Model: cfg.Model,
	}, nil
}

// pathNode is an immutable cons cell; records share common prefixes.
type pathNode struct {
	node int
	prev *pathNode
	size int
}

func (p *pathNode) extend(node int) *pathNode {
	return &pathNode{node: node, prev: p, size: p.size + 1}
}

// slice materialises the path from source to tail.
func (p *pathNode) slice() []int {
	out := make([]int, p.size)
	for cur, i := p, p.size-1; cur != nil; cur, i = cur.prev, i-1 {
		out[i] = cur.node
	}

	return out
}

// record is the per-node frontier state: best-known cost and the path achieving it.
type record struct {
	node int
	cost int64
	path *pathNode
}

// runner holds the mutable state for a single search.
type runner struct {
	snap    *core.Snapshot
	options Options
	// records maps node index to its single frontier record.
	records []*record
	settled *bit.Set
	pq      *pqueue.Heap[int, *record]
}

func newRunner(snap *core.Snapshot, cfg Options) *runner {
	return &runner{
		snap:    snap,
		options: cfg,
		records: make([]*record, snap.Len()),
		settled: new(bit.Set),
		pq: pqueue.NewWithCapacity(snap.Len(),
			func(r *record) int { return r.node },
			func(a, b *record) bool { return a.cost < b.cost },
		),
	}
}

// seed inserts one record per node: src at cost 0 with path [src], the rest at +∞.
func (r *runner) seed(src int) error {
	for i := 0; i < r.snap.Len(); i++ {
		rec := &record{node: i, cost: infinity}
		if i == src {
			rec.cost = 0
			rec.path = &pathNode{node: src, size: 1}
		}
		r.records[i] = rec
		if err := r.pq.Insert(rec); err != nil {
			return fmt.Errorf("%w: %w", ErrFrontierCorrupt, err)
		}
	}

	return nil
}

// process extracts records in cost order until dst is extracted or nothing reachable remains.
func (r *runner) process(dst int) (*record, error) {
	for r.pq.Len() > 0 {
		rec, err := r.pq.ExtractMin()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFrontierCorrupt, err)
		}

		// Everything still resident is at +∞: the frontier is exhausted.
		if rec.cost == infinity {
			break
		}

		if rec.node == dst {
			return rec, nil
		}

		// Stale entry guard: a node is relaxed from at most once.
		if r.settled.Contains(rec.node) {
			continue
		}
		r.settled.Add(rec.node)

		if err = r.relax(rec); err != nil {
			return nil, err
		}
	}

	return nil, ErrUnreachable
}

// relax improves every unsettled neighbour of u through u.
func (r *runner) relax(u *record) error {
	var (
		nb   *record
		cand int64
	)
	for _, a := range r.snap.Neighbors(u.node) {
		if r.settled.Contains(a.To) {
			continue
		}
		ec := r.edgeCost(a.Weight)
		// Candidates stay strictly below infinity.
		if ec > infinity-1-u.cost {
			return fmt.Errorf("%w: path through %s—%s",
				ErrCostOverflow, r.snap.Key(u.node), r.snap.Key(a.To))
		}
		cand = u.cost + ec
		nb = r.records[a.To]
		if cand >= nb.cost {
			continue
		}
		nb.cost = cand
		nb.path = u.path.extend(a.To)
		if err := r.pq.DecreaseKey(nb); err != nil {
			return fmt.Errorf("%w: %w", ErrFrontierCorrupt, err)
		}
	}

	return nil
}

func (r *runner) edgeCost(w int64) int64 {
	if r.options.Model == Time {
		return r.options.Time.EdgeCost(w)
	}

	return w
}
