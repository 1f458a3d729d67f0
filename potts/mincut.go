package potts

import (
	"fmt"
	"math"
)

// MinCut is the exact Potts minimizer: it reduces the energy to an s/t
// max-flow problem and solves it with Dinic's algorithm (level graph +
// blocking flows). Safe for concurrent use; every Minimize call builds
// its own residual network.
type MinCut struct {
	opts Options
}

// NewMinCut returns a MinCut minimizer with the given options.
func NewMinCut(opts Options) *MinCut {
	if opts.Epsilon <= 0 {
		opts.Epsilon = DefaultOptions().Epsilon
	}

	return &MinCut{opts: opts}
}

// arc is one directed residual arc; rev indexes the paired reverse arc
// inside arcs[to].
type arc struct {
	to, rev int
	cap     float64
}

// network is an index-based residual flow network.
type network struct {
	arcs [][]arc
}

// addArc installs the arc pair u→v (capacity capFwd) and v→u
// (capacity capRev).
func (n *network) addArc(u, v int, capFwd, capRev float64) {
	n.arcs[u] = append(n.arcs[u], arc{to: v, rev: len(n.arcs[v]), cap: capFwd})
	n.arcs[v] = append(n.arcs[v], arc{to: u, rev: len(n.arcs[u]) - 1, cap: capRev})
}

// Minimize computes the optimal labeling of g.
//
// Steps:
//  1. Validate penalties: anything below −Epsilon yields
//     ErrNegativePenalty (O(E)).
//  2. Build the cut network: source s feeds nodes with positive score,
//     nodes with negative score drain to sink t, each penalty becomes a
//     symmetric arc pair (O(V + E)).
//  3. Dinic: BFS level graph from s, then DFS blocking flows until t is
//     unreachable (O(E · V²) worst case).
//  4. Labeling: nodes reachable from s through residual capacity
//     > Epsilon take "on"; the rest take "off" (O(V + E)).
func (m *MinCut) Minimize(g *Graph) ([]bool, error) {
	eps := m.opts.Epsilon
	n := g.NumNodes()
	source, sink := n, n+1

	net := &network{arcs: make([][]arc, n+2)}

	// 1-2) Unary terms become source/sink arcs.
	for i, score := range g.scores {
		switch {
		case score > eps:
			net.addArc(source, i, score, 0)
		case score < -eps:
			net.addArc(i, sink, -score, 0)
		}
	}
	// Pairwise terms become symmetric arcs; negatives are fatal.
	for _, p := range g.penalties {
		if p.penalty < -eps {
			return nil, fmt.Errorf("potts: penalty %g on pair %d-%d: %w",
				p.penalty, p.u, p.v, ErrNegativePenalty)
		}
		if p.penalty > eps {
			net.addArc(p.u, p.v, p.penalty, p.penalty)
		}
	}

	// 3) Dinic main loop: rebuild levels until the sink is unreachable.
	level := make([]int, n+2)
	iter := make([]int, n+2)
	queue := make([]int, 0, n+2)
	for {
		// BFS to compute levels over residual arcs.
		for i := range level {
			level[i] = -1
		}
		queue = append(queue[:0], source)
		level[source] = 0
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, a := range net.arcs[u] {
				if a.cap > eps && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// DFS-based blocking flow on the level graph.
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := net.push(level, iter, source, sink, math.Inf(1), eps)
			if pushed == 0 {
				break
			}
		}
	}

	// 4) Residual reachability from the source defines the labeling.
	reach := make([]bool, n+2)
	queue = append(queue[:0], source)
	reach[source] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, a := range net.arcs[u] {
			if a.cap > eps && !reach[a.to] {
				reach[a.to] = true
				queue = append(queue, a.to)
			}
		}
	}

	return reach[:n], nil
}

// push recursively advances flow along the level graph, updating
// residual capacities in place, and returns the amount actually sent.
func (n *network) push(level, iter []int, u, sink int, available, eps float64) float64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(n.arcs[u]); iter[u]++ {
		a := &n.arcs[u][iter[u]]
		if a.cap <= eps || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		pushed := n.push(level, iter, a.to, sink, send, eps)
		if pushed > 0 {
			a.cap -= pushed
			n.arcs[a.to][a.rev].cap += pushed

			return pushed
		}
	}

	return 0
}
