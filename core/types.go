// Package core defines the route network Graph, its Arc view of adjacency,
// and the sentinel errors for graph mutation.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeKey indicates that an empty string was used as a node key.
	ErrEmptyNodeKey = errors.New("core: node key is empty")
)

// Arc is one side of an undirected edge as seen from a node: the neighbor's
// key and the edge weight.
type Arc struct {
	// To is the neighbor node key.
	To string

	// Weight is the edge weight in distance units.
	Weight int64
}

// Graph is the undirected, weighted, simple route network.
//
// adjacency[a][b] == adjacency[b][a] == weight for every edge {a,b}.
// A node with no edges is present with an empty (non-nil) inner map.
// edges counts each undirected edge once.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edges

	adjacency map[string]map[string]int64
	edges     int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]int64),
	}
}
