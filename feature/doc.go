// Package feature provides the vector primitives used throughout
// github.com/katalvlaran/graphlabel: dense and sparse feature vectors,
// dot products against a dense weight slice, and the Accumulator
// abstraction that lets one traversal of a sample populate either a
// dense or a sparse joint feature vector without duplicating logic.
//
// # Representations
//
//   - Dense  — a []float64 where the slice index is the feature id.
//     Dimensionality equals the slice length.
//
//   - Sparse — an append-only list of (Index, Value) entries. The same
//     index may appear more than once; consumers are expected to sum
//     duplicates (Dot and Flatten do). Producers only ever append.
//
// Both satisfy the Vector interface, so callers that only need a dot
// product or the resolved dimensionality never branch on the concrete
// representation.
//
// # Accumulators
//
// An Accumulator receives feature contributions at a block offset with a
// sign. DenseAccumulator applies them in place into a fixed-size vector;
// SparseAccumulator appends shifted (and possibly negated) entries and
// leaves duplicate aggregation to the consumer. The two are required to
// agree after flattening, and the test suite holds them to that.
//
// # Errors
//
//	ErrDimensionMismatch - dense contribution does not fit the target block.
//
// See: docs/FEATURE.md for layout diagrams and worked examples.
package feature
