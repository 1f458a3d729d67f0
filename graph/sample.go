package graph

import (
	"errors"

	"github.com/katalvlaran/graphlabel/feature"
)

// Sentinel errors for sample assembly.
var (
	// ErrNodeOutOfRange indicates an endpoint index outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrSelfLoop indicates u == v on a sample without loop support.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrNilData indicates a nil feature vector.
	ErrNilData = errors.New("graph: feature vector must not be nil")
)

// Arc is one direction of an undirected edge as seen from a node:
// the opposite endpoint and the (shared) edge feature vector.
type Arc struct {
	// To is the index of the opposite endpoint.
	To int

	// Data is the edge feature vector, shared with the reverse Arc.
	Data feature.Vector
}

// SampleOption configures a Sample before assembly.
type SampleOption func(*Sample)

// WithLoops permits self-loop edges. Validation will still refuse such
// samples; the option exists for pipelines that assemble first and
// validate later.
func WithLoops() SampleOption {
	return func(s *Sample) { s.allowLoops = true }
}

// Sample is a graph whose nodes and edges carry feature vectors.
// Nodes are indexed 0..NumNodes()-1. The zero value is unusable;
// create with NewSample.
type Sample struct {
	nodes []feature.Vector // node feature data, index = node id
	adj   [][]Arc          // adj[u] = arcs from u, both directions stored

	numEdges   int
	allowLoops bool
}

// NewSample creates a sample with numNodes isolated nodes and no node
// data. Negative counts are clamped to zero.
// Complexity: O(numNodes).
func NewSample(numNodes int, opts ...SampleOption) *Sample {
	if numNodes < 0 {
		numNodes = 0
	}
	s := &Sample{
		nodes: make([]feature.Vector, numNodes),
		adj:   make([][]Arc, numNodes),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NumNodes returns the number of nodes.
func (s *Sample) NumNodes() int { return len(s.nodes) }

// NumEdges returns the number of undirected edges.
func (s *Sample) NumEdges() int { return s.numEdges }

// SetNodeData assigns the feature vector of node i.
// Returns ErrNodeOutOfRange or ErrNilData on invalid input.
// Complexity: O(1).
func (s *Sample) SetNodeData(i int, data feature.Vector) error {
	if i < 0 || i >= len(s.nodes) {
		return ErrNodeOutOfRange
	}
	if data == nil {
		return ErrNilData
	}
	s.nodes[i] = data

	return nil
}

// NodeData returns the feature vector of node i, or nil if i is out of
// range or unset.
// Complexity: O(1).
func (s *Sample) NodeData(i int) feature.Vector {
	if i < 0 || i >= len(s.nodes) {
		return nil
	}

	return s.nodes[i]
}

// AddEdge records an undirected edge between u and v carrying the given
// feature vector. The vector is shared by both directions. Parallel
// edges are permitted; each AddEdge call records a distinct edge.
// Returns ErrNodeOutOfRange, ErrSelfLoop, or ErrNilData.
// Complexity: O(1) amortized.
func (s *Sample) AddEdge(u, v int, data feature.Vector) error {
	if u < 0 || u >= len(s.nodes) || v < 0 || v >= len(s.nodes) {
		return ErrNodeOutOfRange
	}
	if u == v && !s.allowLoops {
		return ErrSelfLoop
	}
	if data == nil {
		return ErrNilData
	}

	s.adj[u] = append(s.adj[u], Arc{To: v, Data: data})
	if u != v {
		s.adj[v] = append(s.adj[v], Arc{To: u, Data: data})
	}
	s.numEdges++

	return nil
}

// Neighbors returns the arcs incident to node u. The returned slice is
// the sample's own storage; callers must not mutate it.
// Complexity: O(1).
func (s *Sample) Neighbors(u int) []Arc {
	if u < 0 || u >= len(s.adj) {
		return nil
	}

	return s.adj[u]
}

// HasSelfLoop reports whether any edge joins a node to itself.
// Complexity: O(V + E).
func (s *Sample) HasSelfLoop() bool {
	for u, arcs := range s.adj {
		for _, a := range arcs {
			if a.To == u {
				return true
			}
		}
	}

	return false
}
