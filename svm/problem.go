package svm

import (
	"fmt"

	"github.com/katalvlaran/graphlabel/feature"
	"github.com/katalvlaran/graphlabel/graph"
	"github.com/katalvlaran/graphlabel/potts"
)

// Problem is the training problem adapter: it owns the dimension
// bookkeeping resolved once at construction and forwards the four
// operations the external cutting-plane optimizer drives. Samples and
// labels are held by reference and must stay immutable for the
// problem's lifetime; Problem itself is immutable after NewProblem and
// safe for concurrent use.
type Problem struct {
	samples []*graph.Sample
	labels  [][]Label

	edgeDims int
	nodeDims int
	dense    bool

	threads   int
	minimizer potts.Minimizer
}

// Compile-time check: *Problem satisfies the optimizer contract.
var _ Evaluator = (*Problem)(nil)

// NewProblem validates (samples, labels) and resolves the feature-space
// dimensionality. A validation failure aborts construction with the
// diagnostic; there is no fallback.
//
// Steps:
//  1. Validate the pairing (see Validate) - fatal on violation.
//  2. Resolve nodeDims/edgeDims as one plus the highest populated index
//     over all node / edge vectors (equals the fixed length for dense
//     vectors, the true resolved dimensionality for sparse ones).
//  3. Record whether every vector is dense, fixing the ψ representation.
//
// Complexity: O(total nodes + total arcs · max vector length).
func NewProblem(samples []*graph.Sample, labels [][]Label, opts ...Option) (*Problem, error) {
	if err := Validate(samples, labels); err != nil {
		return nil, fmt.Errorf("svm: invalid graph labeling problem: %w", err)
	}

	p := &Problem{
		samples:   samples,
		labels:    labels,
		dense:     true,
		threads:   DefaultThreads,
		minimizer: potts.NewMinCut(potts.DefaultOptions()),
	}
	for _, opt := range opts {
		opt(p)
	}

	for _, s := range samples {
		for j := 0; j < s.NumNodes(); j++ {
			data := s.NodeData(j)
			if dims := data.MaxIndexPlusOne(); dims > p.nodeDims {
				p.nodeDims = dims
			}
			if _, ok := data.(feature.Dense); !ok {
				p.dense = false
			}
			for _, a := range s.Neighbors(j) {
				if dims := a.Data.MaxIndexPlusOne(); dims > p.edgeDims {
					p.edgeDims = dims
				}
				if _, ok := a.Data.(feature.Dense); !ok {
					p.dense = false
				}
			}
		}
	}

	return p, nil
}

// NumDimensions returns the length of w and ψ: edge dims + node dims.
func (p *Problem) NumDimensions() int { return p.edgeDims + p.nodeDims }

// NumSamples returns the number of training samples.
func (p *Problem) NumSamples() int { return len(p.samples) }

// NumEdgeWeights returns the dimensionality of the edge block, i.e. the
// count of leading weight entries the external optimizer must constrain
// to be non-negative for the oracle's min-cut reduction to stay exact.
func (p *Problem) NumEdgeWeights() int { return p.edgeDims }

// TruthFeatureVector returns ψ of (samples[idx], labels[idx]).
func (p *Problem) TruthFeatureVector(idx int) (feature.Vector, error) {
	if idx < 0 || idx >= len(p.samples) {
		return nil, fmt.Errorf("svm: truth feature vector %d of %d: %w",
			idx, len(p.samples), ErrSampleIndex)
	}
	truth := p.labels[idx]

	return p.jointFeatureVector(p.samples[idx], func(i int) bool { return truth[i] != 0 })
}

// SeparationOracle finds the loss-augmented most violated labeling of
// samples[idx] under the weight snapshot w and returns its Hamming loss
// against the truth together with its joint feature vector.
//
// Steps:
//  1. Build a Potts energy with the sample's topology.
//  2. Node i scores dot(w_node, x_i), shifted by −1 when the true label
//     is "on" and +1 when "off" (Hamming loss augmentation).
//  3. Each undirected edge (u, v), visited once, penalizes disagreement
//     by dot(w_edge, e_uv) - non-negative whenever the caller honors
//     the NumEdgeWeights() constraint.
//  4. Delegate to the minimizer; its failure is propagated as fatal.
//  5. Loss = count of nodes where prediction and truth disagree.
//  6. ψ = joint feature vector of the predicted labeling.
//
// Deterministic for fixed (idx, w); the delegate's tie-breaking is
// inherited as-is. w is read, never written.
// Complexity: dominated by the delegate's min cut.
func (p *Problem) SeparationOracle(idx int, w []float64) (float64, feature.Vector, error) {
	if idx < 0 || idx >= len(p.samples) {
		return 0, nil, fmt.Errorf("svm: separation oracle %d of %d: %w",
			idx, len(p.samples), ErrSampleIndex)
	}
	if len(w) != p.NumDimensions() {
		return 0, nil, fmt.Errorf("svm: got %d weights, want %d: %w",
			len(w), p.NumDimensions(), ErrWeightLength)
	}

	samp, truth := p.samples[idx], p.labels[idx]
	wEdge, wNode := w[:p.edgeDims], w[p.edgeDims:]

	// 1-3) Loss-augmented Potts energy over the sample's topology.
	g := potts.NewGraph(samp.NumNodes())
	for i := 0; i < samp.NumNodes(); i++ {
		score := samp.NodeData(i).Dot(wNode)
		if truth[i] != 0 {
			score -= 1.0
		} else {
			score += 1.0
		}
		if err := g.SetScore(i, score); err != nil {
			return 0, nil, fmt.Errorf("svm: sample %d: %w", idx, err)
		}

		for _, a := range samp.Neighbors(i) {
			// Compute each edge penalty once.
			if i < a.To {
				if err := g.AddPenalty(i, a.To, a.Data.Dot(wEdge)); err != nil {
					return 0, nil, fmt.Errorf("svm: sample %d: %w", idx, err)
				}
			}
		}
	}

	// 4) Exact loss-augmented inference.
	predicted, err := p.minimizer.Minimize(g)
	if err != nil {
		return 0, nil, fmt.Errorf("svm: separation oracle sample %d: %w", idx, err)
	}

	// 5) Hamming distance to the truth.
	var loss float64
	for i := range predicted {
		if predicted[i] != (truth[i] != 0) {
			loss++
		}
	}

	// 6) ψ of the prediction.
	psi, err := p.jointFeatureVector(samp, func(i int) bool { return predicted[i] })
	if err != nil {
		return 0, nil, fmt.Errorf("svm: sample %d: %w", idx, err)
	}

	return loss, psi, nil
}
