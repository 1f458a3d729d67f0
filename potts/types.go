package potts

import "errors"

// Sentinel errors for energy assembly and minimization.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("potts: node index out of range")

	// ErrSelfLoop indicates a pairwise penalty joining a node to itself.
	ErrSelfLoop = errors.New("potts: self-loop penalty not allowed")

	// ErrNegativePenalty indicates a pairwise penalty below −Epsilon.
	// The min-cut reduction is only exact for non-negative penalties,
	// so a negative one reaching Minimize is an invariant breach.
	ErrNegativePenalty = errors.New("potts: negative pairwise penalty")
)

// Options configures minimization.
//   - Epsilon: treat magnitudes ≤ Epsilon as zero (default 1e-9).
type Options struct {
	Epsilon float64
}

// DefaultOptions returns production-safe defaults: Epsilon = 1e-9.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9}
}

// pairwise is one undirected disagreement penalty.
type pairwise struct {
	u, v    int
	penalty float64
}

// Graph is a binary pairwise labeling energy: unary scores plus
// undirected non-negative disagreement penalties. The zero value is
// unusable; create with NewGraph.
type Graph struct {
	scores    []float64
	penalties []pairwise
}

// NewGraph creates an energy over numNodes nodes with all scores zero
// and no penalties. Negative counts are clamped to zero.
// Complexity: O(numNodes).
func NewGraph(numNodes int) *Graph {
	if numNodes < 0 {
		numNodes = 0
	}

	return &Graph{scores: make([]float64, numNodes)}
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return len(g.scores) }

// SetScore assigns the unary "on" score of node i.
// Complexity: O(1).
func (g *Graph) SetScore(i int, score float64) error {
	if i < 0 || i >= len(g.scores) {
		return ErrNodeOutOfRange
	}
	g.scores[i] = score

	return nil
}

// AddScore adds delta to the unary score of node i.
// Complexity: O(1).
func (g *Graph) AddScore(i int, delta float64) error {
	if i < 0 || i >= len(g.scores) {
		return ErrNodeOutOfRange
	}
	g.scores[i] += delta

	return nil
}

// Score returns the unary score of node i, or 0 if i is out of range.
func (g *Graph) Score(i int) float64 {
	if i < 0 || i >= len(g.scores) {
		return 0
	}

	return g.scores[i]
}

// AddPenalty records an undirected disagreement penalty between u and v.
// Negativity is not checked here - Minimize validates against its own
// Epsilon - but self-loops and bad indices are rejected immediately.
// Complexity: O(1) amortized.
func (g *Graph) AddPenalty(u, v int, penalty float64) error {
	if u < 0 || u >= len(g.scores) || v < 0 || v >= len(g.scores) {
		return ErrNodeOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	g.penalties = append(g.penalties, pairwise{u: u, v: v, penalty: penalty})

	return nil
}

// Value returns the objective of a labeling: the sum of scores over
// "on" nodes minus the sum of penalties over disagreeing pairs.
// Labels beyond len(labeling) are taken as "off".
// Complexity: O(V + E).
func (g *Graph) Value(labeling []bool) float64 {
	on := func(i int) bool { return i < len(labeling) && labeling[i] }

	var v float64
	for i := range g.scores {
		if on(i) {
			v += g.scores[i]
		}
	}
	for _, p := range g.penalties {
		if on(p.u) != on(p.v) {
			v -= p.penalty
		}
	}

	return v
}

// Minimizer finds a labeling maximizing Graph.Value (equivalently,
// minimizing the Potts energy). Implementations must be exact whenever
// every pairwise penalty is non-negative, and must fail - rather than
// approximate - when that precondition is broken.
type Minimizer interface {
	Minimize(g *Graph) ([]bool, error)
}
