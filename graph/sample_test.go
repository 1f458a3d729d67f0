package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlabel/feature"
	"github.com/katalvlaran/graphlabel/graph"
)

// TestAssembly verifies node data assignment and undirected edge
// bookkeeping: one AddEdge is visible from both endpoints with a shared
// feature vector.
func TestAssembly(t *testing.T) {
	s := graph.NewSample(3)
	require.Equal(t, 3, s.NumNodes())
	require.Equal(t, 0, s.NumEdges())

	require.NoError(t, s.SetNodeData(0, feature.Dense{1, 0}))
	require.NoError(t, s.SetNodeData(1, feature.Dense{0, 1}))
	require.Equal(t, feature.Dense{1, 0}, s.NodeData(0))
	require.Nil(t, s.NodeData(2), "unset node data stays nil")

	require.NoError(t, s.AddEdge(0, 1, feature.Dense{2}))
	require.Equal(t, 1, s.NumEdges())

	from0, from1 := s.Neighbors(0), s.Neighbors(1)
	require.Len(t, from0, 1)
	require.Len(t, from1, 1)
	require.Equal(t, 1, from0[0].To)
	require.Equal(t, 0, from1[0].To)
	require.Equal(t, from0[0].Data, from1[0].Data, "both directions share one vector")
}

// TestAddEdgeErrors exercises the assembly sentinels.
func TestAddEdgeErrors(t *testing.T) {
	s := graph.NewSample(2)
	require.ErrorIs(t, s.AddEdge(0, 2, feature.Dense{1}), graph.ErrNodeOutOfRange)
	require.ErrorIs(t, s.AddEdge(-1, 0, feature.Dense{1}), graph.ErrNodeOutOfRange)
	require.ErrorIs(t, s.AddEdge(1, 1, feature.Dense{1}), graph.ErrSelfLoop)
	require.ErrorIs(t, s.AddEdge(0, 1, nil), graph.ErrNilData)
	require.ErrorIs(t, s.SetNodeData(5, feature.Dense{1}), graph.ErrNodeOutOfRange)
	require.ErrorIs(t, s.SetNodeData(0, nil), graph.ErrNilData)
}

// TestWithLoops verifies that WithLoops admits self-loops at the
// container level and that HasSelfLoop detects them.
func TestWithLoops(t *testing.T) {
	s := graph.NewSample(2, graph.WithLoops())
	require.False(t, s.HasSelfLoop())
	require.NoError(t, s.AddEdge(1, 1, feature.Dense{1}))
	require.True(t, s.HasSelfLoop())
	require.Len(t, s.Neighbors(1), 1, "a loop is stored once, not twice")
}

// TestParallelEdges verifies that repeated AddEdge calls record
// distinct edges.
func TestParallelEdges(t *testing.T) {
	s := graph.NewSample(2)
	require.NoError(t, s.AddEdge(0, 1, feature.Dense{1}))
	require.NoError(t, s.AddEdge(0, 1, feature.Dense{2}))
	require.Equal(t, 2, s.NumEdges())
	require.Len(t, s.Neighbors(0), 2)
}
