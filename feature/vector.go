package feature

import "errors"

// ErrDimensionMismatch indicates a dense contribution that does not fit
// the target block of an accumulator.
var ErrDimensionMismatch = errors.New("feature: dense vector does not fit target block")

// Vector is the read-only contract shared by Dense and Sparse feature
// vectors. It is everything the learning core needs: a dot product
// against a dense weight slice, the resolved dimensionality, and the
// number of stored entries.
type Vector interface {
	// Dot returns the inner product with the dense slice w. Indices of
	// the vector address positions of w; indices beyond len(w)
	// contribute nothing.
	Dot(w []float64) float64

	// MaxIndexPlusOne returns one plus the highest populated index,
	// i.e. the dimensionality needed to store every entry densely.
	// Zero for an empty vector.
	MaxIndexPlusOne() int

	// Len returns the number of stored entries. For Dense this is the
	// fixed length; for Sparse it counts appended entries, duplicates
	// included.
	Len() int

	// Min returns the smallest stored value, or 0 for an empty vector.
	Min() float64
}

// Dense is a fixed-length feature vector; the slice index is the
// feature id.
type Dense []float64

// Dot returns the inner product of d with w.
// Complexity: O(min(len(d), len(w))).
func (d Dense) Dot(w []float64) float64 {
	n := len(d)
	if len(w) < n {
		n = len(w)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += d[i] * w[i]
	}

	return sum
}

// MaxIndexPlusOne returns the dense dimensionality, which is simply the
// slice length.
func (d Dense) MaxIndexPlusOne() int { return len(d) }

// Len returns the slice length.
func (d Dense) Len() int { return len(d) }

// Min returns the smallest entry of d, or 0 for an empty vector.
func (d Dense) Min() float64 {
	if len(d) == 0 {
		return 0
	}
	m := d[0]
	for _, v := range d[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// Entry is a single (index, value) pair of a Sparse vector.
type Entry struct {
	Index int
	Value float64
}

// Sparse is an append-only sparse feature vector. The same index may
// appear in several entries; consumers sum duplicates. Producers must
// only append, never merge - this keeps ψ construction allocation-cheap
// and is what makes the sparse path order-independent after flattening.
type Sparse []Entry

// Dot returns the inner product of s with w, summing duplicate indices.
// Complexity: O(len(s)).
func (s Sparse) Dot(w []float64) float64 {
	var sum float64
	for _, e := range s {
		if e.Index >= 0 && e.Index < len(w) {
			sum += e.Value * w[e.Index]
		}
	}

	return sum
}

// MaxIndexPlusOne returns one plus the highest index present, or zero
// for an empty vector.
func (s Sparse) MaxIndexPlusOne() int {
	dims := 0
	for _, e := range s {
		if e.Index+1 > dims {
			dims = e.Index + 1
		}
	}

	return dims
}

// Len returns the number of stored entries, duplicates included.
func (s Sparse) Len() int { return len(s) }

// Min returns the smallest entry value of s, or 0 for an empty vector.
// Duplicate indices are inspected entry by entry, not summed; for the
// non-negativity checks this library performs, per-entry inspection is
// the stricter and therefore safer reading.
func (s Sparse) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	m := s[0].Value
	for _, e := range s[1:] {
		if e.Value < m {
			m = e.Value
		}
	}

	return m
}

// Flatten sums duplicate indices into a Dense vector of length dims.
// Entries at or beyond dims are dropped.
// Complexity: O(len(s) + dims).
func (s Sparse) Flatten(dims int) Dense {
	out := make(Dense, dims)
	for _, e := range s {
		if e.Index >= 0 && e.Index < dims {
			out[e.Index] += e.Value
		}
	}

	return out
}
