package network

import "errors"

// Sentinel errors returned by Load and Build. Check with errors.Is.
var (
	// ErrUnknownNode indicates an edge endpoint that no node or line declares.
	ErrUnknownNode = errors.New("network: edge references unknown node")

	// ErrNegativeWeight indicates an edge or line weight below zero.
	ErrNegativeWeight = errors.New("network: negative weight")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("network: self-loop edge")

	// ErrConflictingEdge indicates the same pair listed twice with different weights.
	ErrConflictingEdge = errors.New("network: conflicting edge weights")

	// ErrLineShape indicates a line whose weights do not fit between its stops.
	ErrLineShape = errors.New("network: line weights do not match stops")
)

// Document is the YAML shape of a route network.
type Document struct {
	Nodes []string   `yaml:"nodes,omitempty"`
	Lines []LineSpec `yaml:"lines,omitempty"`
	Edges []EdgeSpec `yaml:"edges,omitempty"`
}

// LineSpec describes one line as an ordered run of stops.
type LineSpec struct {
	Code    string   `yaml:"code"`
	Stops   []string `yaml:"stops"`
	Weights []int64  `yaml:"weights"`
}

// EdgeSpec is a single undirected edge.
type EdgeSpec struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}
