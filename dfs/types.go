// Package dfs defines types and options for depth-first traversal,
// including cancellation and depth limiting.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start (or target) node
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of a traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, stops expansion below the given tree depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	// The limit applies to the traversal tree, not to shortest hop counts.
	MaxDepth int
}

// DefaultOptions returns DFSOptions with a Background context and no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records node keys in discovery (pre-order) sequence.
	Order []string

	// Depth maps each visited key to its depth in the traversal tree.
	Depth map[string]int

	// Parent maps each visited key to the key it was discovered from.
	// The start node does not appear.
	Parent map[string]string
}

// Visited reports whether key was reached.
func (r *DFSResult) Visited(key string) bool {
	_, ok := r.Depth[key]
	return ok
}
