package potts_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphlabel/potts"
)

// MinCutSuite exercises the exact minimizer on hand-checkable energies.
type MinCutSuite struct {
	suite.Suite

	m *potts.MinCut
}

func (s *MinCutSuite) SetupTest() {
	s.m = potts.NewMinCut(potts.DefaultOptions())
}

// TestUnaryOnly verifies that isolated nodes follow the sign of their
// scores, with zero scores labeling "off" (the residual-reachability
// tie-break).
func (s *MinCutSuite) TestUnaryOnly() {
	g := potts.NewGraph(3)
	require.NoError(s.T(), g.SetScore(0, 2.5))
	require.NoError(s.T(), g.SetScore(1, -1.0))
	// node 2 stays at score 0

	labeling, err := s.m.Minimize(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bool{true, false, false}, labeling)
}

// TestPenaltyForcesAgreement verifies that a strong penalty drags a
// weakly "off" node along with its strongly "on" neighbor.
func (s *MinCutSuite) TestPenaltyForcesAgreement() {
	g := potts.NewGraph(2)
	require.NoError(s.T(), g.SetScore(0, 5))
	require.NoError(s.T(), g.SetScore(1, -1))
	require.NoError(s.T(), g.AddPenalty(0, 1, 10))

	labeling, err := s.m.Minimize(g)
	require.NoError(s.T(), err)
	// Agreeing on "on" scores 5-1=4; splitting scores 5-10=-5.
	require.Equal(s.T(), []bool{true, true}, labeling)
}

// TestWeakPenaltyAllowsDisagreement verifies the opposite regime: a
// cheap edge is cut rather than flipping a strongly "off" node.
func (s *MinCutSuite) TestWeakPenaltyAllowsDisagreement() {
	g := potts.NewGraph(2)
	require.NoError(s.T(), g.SetScore(0, 5))
	require.NoError(s.T(), g.SetScore(1, -4))
	require.NoError(s.T(), g.AddPenalty(0, 1, 1))

	labeling, err := s.m.Minimize(g)
	require.NoError(s.T(), err)
	// Splitting scores 5-1=4; agreeing on "on" scores only 5-4=1.
	require.Equal(s.T(), []bool{true, false}, labeling)
}

// TestNegativePenaltyFatal verifies that a negative penalty reaching
// Minimize fails rather than approximating.
func (s *MinCutSuite) TestNegativePenaltyFatal() {
	g := potts.NewGraph(2)
	require.NoError(s.T(), g.AddPenalty(0, 1, -0.5))

	_, err := s.m.Minimize(g)
	require.ErrorIs(s.T(), err, potts.ErrNegativePenalty)
}

// TestAssemblyErrors exercises the energy-graph sentinels.
func (s *MinCutSuite) TestAssemblyErrors() {
	g := potts.NewGraph(2)
	require.ErrorIs(s.T(), g.SetScore(2, 1), potts.ErrNodeOutOfRange)
	require.ErrorIs(s.T(), g.AddScore(-1, 1), potts.ErrNodeOutOfRange)
	require.ErrorIs(s.T(), g.AddPenalty(0, 3, 1), potts.ErrNodeOutOfRange)
	require.ErrorIs(s.T(), g.AddPenalty(1, 1, 1), potts.ErrSelfLoop)
}

// TestEmptyGraph verifies the degenerate zero-node energy.
func (s *MinCutSuite) TestEmptyGraph() {
	labeling, err := s.m.Minimize(potts.NewGraph(0))
	require.NoError(s.T(), err)
	require.Empty(s.T(), labeling)
}

// TestEpsilonThreshold verifies that sub-Epsilon magnitudes are treated
// as zero: a tiny positive score must not pull a node "on".
func (s *MinCutSuite) TestEpsilonThreshold() {
	m := potts.NewMinCut(potts.Options{Epsilon: 1e-3})
	g := potts.NewGraph(1)
	require.NoError(s.T(), g.SetScore(0, 1e-4))

	labeling, err := m.Minimize(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []bool{false}, labeling)
}

// TestBruteForceCrossCheck compares the min-cut optimum against
// exhaustive enumeration on random small energies. The labeling itself
// may differ under ties; the achieved objective value must not.
func (s *MinCutSuite) TestBruteForceCrossCheck() {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(5) // 2..6 nodes
		g := potts.NewGraph(n)
		for i := 0; i < n; i++ {
			require.NoError(s.T(), g.SetScore(i, rng.Float64()*10-5))
		}
		edges := rng.Intn(n * 2)
		for e := 0; e < edges; e++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			require.NoError(s.T(), g.AddPenalty(u, v, rng.Float64()*5))
		}

		labeling, err := s.m.Minimize(g)
		require.NoError(s.T(), err)
		require.Len(s.T(), labeling, n)

		best := math.Inf(-1)
		for mask := 0; mask < 1<<n; mask++ {
			candidate := make([]bool, n)
			for i := 0; i < n; i++ {
				candidate[i] = mask&(1<<i) != 0
			}
			if v := g.Value(candidate); v > best {
				best = v
			}
		}

		require.InDelta(s.T(), best, g.Value(labeling), 1e-9,
			"trial %d: min-cut labeling must achieve the exhaustive optimum", trial)
	}
}

// TestValue verifies the objective helper directly.
func (s *MinCutSuite) TestValue() {
	g := potts.NewGraph(3)
	require.NoError(s.T(), g.SetScore(0, 2))
	require.NoError(s.T(), g.SetScore(1, -3))
	require.NoError(s.T(), g.AddPenalty(0, 1, 4))
	require.NoError(s.T(), g.AddPenalty(1, 2, 1))

	// on/off/off: score 2, edge 0-1 disagrees (-4), edge 1-2 agrees.
	require.Equal(s.T(), -2.0, g.Value([]bool{true, false, false}))
	// on/on/on: 2-3, no disagreement.
	require.Equal(s.T(), -1.0, g.Value([]bool{true, true, true}))
	// Short labelings treat missing nodes as "off".
	require.Equal(s.T(), -2.0, g.Value([]bool{true}))
}

func TestMinCutSuite(t *testing.T) {
	suite.Run(t, new(MinCutSuite))
}
