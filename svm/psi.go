package svm

import (
	"fmt"

	"github.com/katalvlaran/graphlabel/feature"
	"github.com/katalvlaran/graphlabel/graph"
)

// accumulateJointFeatures drives one traversal of (sample, labeling)
// into acc, producing ψ with layout [edge block | node block]:
//
//   - every "on" node adds its feature vector at offset edgeDims;
//   - every undirected edge whose endpoints disagree subtracts its
//     feature vector at offset 0, visited exactly once via u < v.
//
// The accumulator decides dense vs sparse; both backings must agree
// after flattening. on(i) reports the label of node i and must accept
// every index in [0, sample.NumNodes()).
// Complexity: O(V + E) vector operations.
func accumulateJointFeatures(
	s *graph.Sample,
	on func(i int) bool,
	edgeDims int,
	acc feature.Accumulator,
) error {
	for i := 0; i < s.NumNodes(); i++ {
		onI := on(i)

		if onI {
			if err := acc.Accumulate(edgeDims, +1, s.NodeData(i)); err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
		}

		for _, a := range s.Neighbors(i) {
			// Visit each undirected edge once; contribute only on
			// disagreement.
			if i < a.To && onI != on(a.To) {
				if err := acc.Accumulate(0, -1, a.Data); err != nil {
					return fmt.Errorf("edge %d-%d: %w", i, a.To, err)
				}
			}
		}
	}

	return nil
}

// jointFeatureVector materializes ψ for (s, on) in the representation
// the problem resolved at construction: Dense when every training
// vector is dense, Sparse otherwise.
func (p *Problem) jointFeatureVector(s *graph.Sample, on func(i int) bool) (feature.Vector, error) {
	if p.dense {
		acc := feature.NewDenseAccumulator(p.NumDimensions())
		if err := accumulateJointFeatures(s, on, p.edgeDims, acc); err != nil {
			return nil, err
		}

		return acc.Result(), nil
	}

	var acc feature.SparseAccumulator
	if err := accumulateJointFeatures(s, on, p.edgeDims, &acc); err != nil {
		return nil, err
	}

	return acc.Result(), nil
}
