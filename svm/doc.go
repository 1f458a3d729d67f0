// Package svm implements the learning core of a structured-prediction
// trainer for binary node labeling over graphs.
//
// Given example graphs whose nodes and edges carry feature vectors
// (graph.Sample) and a ground-truth binary label per node, the trainer
// learns a linear model w = [edge block | node block] such that the
// minimum-energy joint labeling of each graph matches the truth. This
// package supplies everything the external cutting-plane optimizer
// needs, behind the Evaluator contract:
//
//   - Validate / IsGraphLabelingProblem — structural preconditions on
//     the (samples, labels) pairing, checked once before training.
//   - Problem — the training problem adapter: resolved dimensionality,
//     sample count, truth joint feature vectors, and the separation
//     oracle.
//   - SeparationOracle — per sample and weight snapshot, builds the
//     loss-augmented Potts energy, delegates the exact minimization to
//     a potts.Minimizer, and returns the Hamming loss together with the
//     joint feature vector ψ of the predicted labeling.
//   - EvaluateAll — bounded-parallel oracle sweep across all samples
//     against one read-only weight snapshot.
//
// # Weight vector layout
//
// ψ and w share one layout: the first NumEdgeWeights() entries score
// edge feature vectors, the remaining entries score node feature
// vectors. The external optimizer must constrain the edge block of its
// solution to be non-negative - the min-cut reduction behind the oracle
// is exact only for non-negative disagreement penalties, so this is a
// correctness requirement, not a convention. NumEdgeWeights() exists
// precisely so callers can configure that constraint.
//
// # Dense and sparse feature spaces
//
// If every node and edge vector of the training set is feature.Dense,
// ψ is produced densely; otherwise sparsely, as appended (index, value)
// entries whose duplicates the consumer sums. Both paths run the same
// traversal through a feature.Accumulator and agree after flattening.
//
// # Concurrency
//
// A Problem is immutable after construction. Samples and labels are
// held by reference and must not be mutated while the problem lives.
// Every oracle call allocates its own working energy graph and ψ, reads
// the weight slice without writing it, and takes no locks, so calls may
// run concurrently across samples - EvaluateAll does exactly that with
// the problem's configured thread count.
//
// # Errors
//
// Construction fails with a precondition diagnostic when Validate does;
// there is no fallback. At oracle time the only failure mode is the
// delegate minimizer's, which is propagated wrapped and must be treated
// as fatal: it signals an upstream invariant breach (typically a
// negative edge penalty produced by an unconstrained edge weight).
package svm
