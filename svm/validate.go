package svm

import (
	"fmt"

	"github.com/katalvlaran/graphlabel/feature"
	"github.com/katalvlaran/graphlabel/graph"
)

// Validate reports whether (samples, labels) form a well-formed graph
// labeling problem. It returns nil on success and the first violation
// otherwise, wrapped with the offending sample/node indices.
//
// Checks, in order, short-circuiting on the first failure:
//  1. The pairing is a learning problem: both non-empty, equal length.
//  2. Per sample: not nil; no self-loops; node count equals label count.
//  3. Per node: feature vector present and non-empty; dense node
//     vectors agree on one dimensionality across the whole set.
//  4. Per edge (each direction seen during neighbor iteration): dense
//     vectors non-empty; every entry ≥ 0; dense edge vectors agree on
//     one dimensionality across the whole set.
//
// Sparse vectors are exempt from the uniform-dimensionality checks.
// Pure predicate: no side effects.
// Complexity: O(total nodes + total arcs · max vector length).
func Validate(samples []*graph.Sample, labels [][]Label) error {
	if len(samples) == 0 || len(samples) != len(labels) {
		return ErrNotLearningProblem
	}

	// Dense dimensionalities are unknown until first observed.
	nodeDims, edgeDims := -1, -1

	for i, s := range samples {
		if s == nil {
			return fmt.Errorf("sample %d: %w", i, ErrNilSample)
		}
		if s.HasSelfLoop() {
			return fmt.Errorf("sample %d: %w", i, ErrSelfLoop)
		}
		if s.NumNodes() != len(labels[i]) {
			return fmt.Errorf("sample %d: %d nodes, %d labels: %w",
				i, s.NumNodes(), len(labels[i]), ErrLabelCount)
		}

		for j := 0; j < s.NumNodes(); j++ {
			data := s.NodeData(j)
			if data == nil || data.Len() == 0 {
				return fmt.Errorf("sample %d node %d: %w", i, j, ErrEmptyNodeVector)
			}
			if d, ok := data.(feature.Dense); ok {
				if nodeDims == -1 {
					nodeDims = len(d)
				}
				if len(d) != nodeDims {
					return fmt.Errorf("sample %d node %d: got %d, want %d: %w",
						i, j, len(d), nodeDims, ErrNodeDimensionMismatch)
				}
			}

			for _, a := range s.Neighbors(j) {
				if a.Data.Min() < 0 {
					return fmt.Errorf("sample %d edge %d-%d: %w",
						i, j, a.To, ErrNegativeEdgeFeature)
				}
				d, ok := a.Data.(feature.Dense)
				if !ok {
					continue
				}
				if len(d) == 0 {
					return fmt.Errorf("sample %d edge %d-%d: %w",
						i, j, a.To, ErrEmptyEdgeVector)
				}
				if edgeDims == -1 {
					edgeDims = len(d)
				}
				if len(d) != edgeDims {
					return fmt.Errorf("sample %d edge %d-%d: got %d, want %d: %w",
						i, j, a.To, len(d), edgeDims, ErrEdgeDimensionMismatch)
				}
			}
		}
	}

	return nil
}

// IsGraphLabelingProblem is the boolean form of Validate.
func IsGraphLabelingProblem(samples []*graph.Sample, labels [][]Label) bool {
	return Validate(samples, labels) == nil
}
