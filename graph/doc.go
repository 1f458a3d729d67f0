// Package graph defines the Sample container used by the graphlabel
// learning core: a graph with a fixed set of indexed nodes (0..N-1),
// a feature vector on every node, and undirected edges that carry their
// own feature vectors.
//
// A Sample is mutable while it is being assembled (SetNodeData, AddEdge)
// and is treated as immutable once handed to svm.NewProblem. The
// learning core holds the caller's samples by reference and never
// copies them, so concurrent separation-oracle calls rely on this
// freeze-after-build convention.
//
// Edges are undirected: AddEdge(u, v, data) records one edge visible
// from both endpoints, sharing a single feature vector. Neighbor
// iteration therefore sees every edge twice, once per direction;
// callers that must visit each edge exactly once filter on u < v, the
// same discipline the feature-vector builder and the separation oracle
// use.
//
// Self-loops are rejected by default. WithLoops permits them at the
// container level - some pipelines assemble first and validate later -
// but svm.Validate refuses any sample that actually contains one, so a
// loopy sample can never reach training.
//
// # Errors
//
//	ErrNodeOutOfRange - an endpoint index is not in [0, NumNodes).
//	ErrSelfLoop       - u == v and loops are not enabled.
//	ErrNilData        - a nil feature vector was supplied.
package graph
