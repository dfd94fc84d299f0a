package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start key is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures a walk.
type Option func(*Options)

// Options bounds and prunes a walk. The zero value of MaxDepth means no limit.
type Options struct {
	Ctx      context.Context
	MaxDepth int
	// Allow reports whether the edge curr→next may be followed.
	Allow func(curr, next string) bool

	err error
}

// DefaultOptions returns background context, no depth limit and no pruning.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Allow: func(_, _ string) bool { return true },
	}
}

// WithContext cancels the walk when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops expanding nodes d hops from the start. d == 0 means
// no limit; d < 0 surfaces ErrOptionViolation from the walk.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips the edge curr→next when fn returns false.
func WithFilterNeighbor(fn func(curr, next string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Allow = fn
		}
	}
}

// Result is the BFS tree: keys in visit order, hop count per reached key
// and the predecessor of every reached key except the start.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo walks Parent back from dest and returns the start→dest key sequence.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
