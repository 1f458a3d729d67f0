package feature

// Accumulator receives signed feature contributions at a block offset.
// One traversal of a (sample, labeling) pair drives an Accumulator; the
// concrete backing decides whether the result is dense or sparse.
//
// Contract:
//   - Accumulate(offset, sign, v) adds sign*v into the output with every
//     index of v shifted by offset.
//   - Implementations must be equivalent: flattening a sparse result must
//     reproduce the dense result for the same sequence of calls.
type Accumulator interface {
	// Accumulate adds sign*v at the given index offset.
	Accumulate(offset int, sign float64, v Vector) error
}

// DenseAccumulator applies contributions in place into a fixed-size
// Dense vector. The zero value is unusable; create it with
// NewDenseAccumulator.
type DenseAccumulator struct {
	out Dense
}

// NewDenseAccumulator returns an accumulator over a zeroed Dense vector
// of the given dimensionality.
// Complexity: O(dims).
func NewDenseAccumulator(dims int) *DenseAccumulator {
	return &DenseAccumulator{out: make(Dense, dims)}
}

// Accumulate adds sign*v into the backing vector at offset.
// Returns ErrDimensionMismatch if any shifted index falls outside the
// backing vector; the backing vector is not modified in that case.
// Complexity: O(v.Len()).
func (a *DenseAccumulator) Accumulate(offset int, sign float64, v Vector) error {
	switch t := v.(type) {
	case Dense:
		if offset < 0 || offset+len(t) > len(a.out) {
			return ErrDimensionMismatch
		}
		for i, val := range t {
			a.out[offset+i] += sign * val
		}
	case Sparse:
		for _, e := range t {
			if e.Index < 0 || offset+e.Index >= len(a.out) {
				return ErrDimensionMismatch
			}
		}
		for _, e := range t {
			a.out[offset+e.Index] += sign * e.Value
		}
	default:
		return ErrDimensionMismatch
	}

	return nil
}

// Result returns the accumulated Dense vector.
func (a *DenseAccumulator) Result() Dense { return a.out }

// SparseAccumulator appends shifted, signed entries and never merges
// duplicates - consumers sum them (see Sparse). The zero value is ready
// to use.
type SparseAccumulator struct {
	out Sparse
}

// Accumulate appends sign*v at offset. Dense inputs append one entry
// per non-zero element; sparse inputs append one entry per stored
// entry, duplicates preserved.
// Complexity: O(v.Len()).
func (a *SparseAccumulator) Accumulate(offset int, sign float64, v Vector) error {
	if offset < 0 {
		return ErrDimensionMismatch
	}
	switch t := v.(type) {
	case Dense:
		for i, val := range t {
			if val == 0 {
				continue
			}
			a.out = append(a.out, Entry{Index: offset + i, Value: sign * val})
		}
	case Sparse:
		for _, e := range t {
			if e.Index < 0 {
				return ErrDimensionMismatch
			}
			a.out = append(a.out, Entry{Index: offset + e.Index, Value: sign * e.Value})
		}
	default:
		return ErrDimensionMismatch
	}

	return nil
}

// Result returns the accumulated Sparse vector.
func (a *SparseAccumulator) Result() Sparse { return a.out }
