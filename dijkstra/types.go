// Package dijkstra defines the cost models, configuration options and result
// types of the route search.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrInvalidEndpoints indicates the source or destination is not a node of the graph.
	ErrInvalidEndpoints = errors.New("dijkstra: source or destination not in graph")

	// ErrUnreachable indicates the frontier was exhausted without settling the destination.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")

	// ErrNegativeWeight indicates a negative edge weight was found in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrFrontierCorrupt indicates the priority queue contract was violated during a search.
	// It wraps the underlying pqueue error and should never surface from correct code.
	ErrFrontierCorrupt = errors.New("dijkstra: frontier out of sync")

	// ErrUnknownCostModel is returned by ParseCostModel for unrecognised names.
	ErrUnknownCostModel = errors.New("dijkstra: unknown cost model")

	// ErrCostOverflow indicates an edge or path cost that does not fit in int64.
	ErrCostOverflow = errors.New("dijkstra: cost overflows int64")

	// ErrBadTimeParams indicates negative Time model parameters.
	ErrBadTimeParams = errors.New("dijkstra: time parameters must be non-negative")
)

// CostModel selects how an edge weight translates into search cost.
type CostModel int

const (
	// Distance sums raw edge weights.
	Distance CostModel = iota

	// Time sums TransferOverhead + PerUnit × weight per edge, in seconds.
	Time
)

// String returns "distance" or "time".
func (m CostModel) String() string {
	switch m {
	case Distance:
		return "distance"
	case Time:
		return "time"
	default:
		return fmt.Sprintf("CostModel(%d)", int(m))
	}
}

// ParseCostModel maps "distance"/"time" (case-insensitive) to a CostModel.
func ParseCostModel(s string) (CostModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance", "dist", "d":
		return Distance, nil
	case "time", "t":
		return Time, nil
	default:
		return Distance, fmt.Errorf("%w: %q", ErrUnknownCostModel, s)
	}
}

// Default Time model constants.
const (
	// DefaultTransferOverhead is the fixed cost in seconds charged per edge.
	DefaultTransferOverhead int64 = 120

	// DefaultPerUnit is the travel time in seconds per distance unit.
	DefaultPerUnit int64 = 40
)

// TimeParams holds the Time model constants.
type TimeParams struct {
	TransferOverhead int64 // seconds per edge
	PerUnit          int64 // seconds per distance unit
}

// DefaultTimeParams returns {DefaultTransferOverhead, DefaultPerUnit}.
func DefaultTimeParams() TimeParams {
	return TimeParams{TransferOverhead: DefaultTransferOverhead, PerUnit: DefaultPerUnit}
}

// EdgeCost returns the Time model cost of one edge of weight w.
// w must not exceed MaxWeight.
func (p TimeParams) EdgeCost(w int64) int64 {
	return p.TransferOverhead + p.PerUnit*w
}

// MaxWeight is the largest edge weight whose EdgeCost stays below math.MaxInt64.
func (p TimeParams) MaxWeight() int64 {
	if p.PerUnit == 0 {
		return math.MaxInt64
	}

	return (math.MaxInt64 - 1 - p.TransferOverhead) / p.PerUnit
}

// Options configures the behavior of ShortestPath.
type Options struct {
	Model    CostModel  // Distance (default) or Time
	Time     TimeParams // used only when Model == Time
	PreCheck bool       // run an unweighted reachability walk before the search
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns Distance model, default Time parameters, no pre-check.
func DefaultOptions() Options {
	return Options{
		Model: Distance,
		Time:  DefaultTimeParams(),
	}
}

// WithCostModel selects the cost model.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		o.Model = m
	}
}

// WithTimeParams overrides the Time model constants.
// Panics with ErrBadTimeParams if either value is negative.
func WithTimeParams(p TimeParams) Option {
	return func(o *Options) {
		if p.TransferOverhead < 0 || p.PerUnit < 0 {
			panic(ErrBadTimeParams.Error())
		}
		o.Time = p
	}
}

// WithPreCheck enables the reachability pre-check.
func WithPreCheck() Option {
	return func(o *Options) {
		o.PreCheck = true
	}
}

// Route is a successful search result.
type Route struct {
	// Nodes lists node keys from source to destination inclusive.
	Nodes []string

	// Cost is the total cost under Model: distance units, or seconds for Time.
	Cost int64

	// Model is the cost model the route was computed with.
	Model CostModel
}

// Source returns the first node of the route.
func (r *Route) Source() string { return r.Nodes[0] }

// Destination returns the last node of the route.
func (r *Route) Destination() string { return r.Nodes[len(r.Nodes)-1] }

// Hops returns the number of edges traversed.
func (r *Route) Hops() int { return len(r.Nodes) - 1 }
