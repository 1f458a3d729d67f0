package svm

import (
	"errors"

	"github.com/katalvlaran/graphlabel/feature"
	"github.com/katalvlaran/graphlabel/potts"
)

// Label is one binary node label: zero means "off", any non-zero value
// means "on".
type Label uint32

// DefaultThreads is the oracle parallelism used when WithThreads is not
// supplied.
const DefaultThreads = 2

// Sentinel errors for problem validation and evaluation.
var (
	// ErrNotLearningProblem indicates samples/labels are empty or of
	// unequal length.
	ErrNotLearningProblem = errors.New("svm: samples and labels must be non-empty and of equal length")

	// ErrNilSample indicates a nil sample in the training set.
	ErrNilSample = errors.New("svm: sample must not be nil")

	// ErrSelfLoop indicates a sample containing a length-one cycle.
	ErrSelfLoop = errors.New("svm: sample contains a self-loop")

	// ErrLabelCount indicates a label vector whose length differs from
	// its sample's node count.
	ErrLabelCount = errors.New("svm: label vector length must equal node count")

	// ErrEmptyNodeVector indicates a node with no feature data.
	ErrEmptyNodeVector = errors.New("svm: node feature vector must be non-empty")

	// ErrEmptyEdgeVector indicates a dense edge with no feature data.
	ErrEmptyEdgeVector = errors.New("svm: edge feature vector must be non-empty")

	// ErrNegativeEdgeFeature indicates an edge feature entry below zero;
	// non-negative edge features are required for the min-cut reduction.
	ErrNegativeEdgeFeature = errors.New("svm: edge feature entries must be non-negative")

	// ErrNodeDimensionMismatch indicates dense node vectors of differing
	// dimensionality across the training set.
	ErrNodeDimensionMismatch = errors.New("svm: dense node vectors must share one dimensionality")

	// ErrEdgeDimensionMismatch indicates dense edge vectors of differing
	// dimensionality across the training set.
	ErrEdgeDimensionMismatch = errors.New("svm: dense edge vectors must share one dimensionality")

	// ErrSampleIndex indicates an out-of-range sample index.
	ErrSampleIndex = errors.New("svm: sample index out of range")

	// ErrWeightLength indicates a weight slice whose length differs from
	// NumDimensions().
	ErrWeightLength = errors.New("svm: weight vector length must equal NumDimensions")
)

// Result is one separation-oracle outcome: the Hamming loss of the
// predicted labeling and its joint feature vector.
type Result struct {
	Loss float64
	Psi  feature.Vector
}

// Evaluator is the contract the external cutting-plane optimizer
// consumes. *Problem implements it; nothing in this package calls the
// optimizer back.
type Evaluator interface {
	// NumDimensions returns the length of w and ψ.
	NumDimensions() int

	// NumSamples returns the number of training samples.
	NumSamples() int

	// TruthFeatureVector returns ψ of (samples[idx], labels[idx]).
	TruthFeatureVector(idx int) (feature.Vector, error)

	// SeparationOracle returns the loss-augmented most violated
	// labeling's Hamming loss and ψ under the weight snapshot w.
	SeparationOracle(idx int, w []float64) (loss float64, psi feature.Vector, err error)
}

// Option configures a Problem at construction.
type Option func(*Problem)

// WithThreads sets the parallelism of EvaluateAll. Values below one
// fall back to sequential evaluation.
func WithThreads(n int) Option {
	return func(p *Problem) { p.threads = n }
}

// WithMinimizer substitutes the Potts minimization delegate. The
// default is potts.NewMinCut(potts.DefaultOptions()); substitutes must
// honor the same exactness contract.
func WithMinimizer(m potts.Minimizer) Option {
	return func(p *Problem) {
		if m != nil {
			p.minimizer = m
		}
	}
}
