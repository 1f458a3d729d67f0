// Package potts models pairwise binary labeling energies (Potts models)
// and minimizes them exactly via a min-cut/max-flow reduction.
//
// A potts.Graph holds, for nodes 0..N-1:
//
//   - a unary score per node: the reward collected when the node takes
//     the "on" label (negative scores reward "off");
//   - non-negative pairwise penalties on undirected node pairs: the
//     price paid when the two endpoints disagree.
//
// Minimize returns the labeling maximizing
//
//	value(L) = Σ_{i: L[i]} score(i)  −  Σ_{(u,v): L[u]≠L[v]} penalty(u,v)
//
// which is the same labeling that minimizes the corresponding Potts
// energy. Non-negative penalties make the energy submodular, so the
// optimum is found exactly by a single s/t min cut:
//
//  1. Build a flow network over the N nodes plus a source s and sink t.
//  2. For score(i) > 0 add arc s→i with capacity score(i); for
//     score(i) < 0 add arc i→t with capacity −score(i).
//  3. For each penalty p(u,v) add arcs u→v and v→u with capacity p.
//  4. Run Dinic (level graph + blocking flow) to saturate the min cut.
//  5. Nodes still reachable from s in the residual network take "on";
//     all others take "off".
//
// Step 5 also fixes the tie-breaking rule: a node under zero net pull
// has no residual arc from the source and therefore labels "off".
// Callers that depend on exact tie behavior (the svm test suite does)
// get this rule, deterministically, for free.
//
// # Options
//
// Options{Epsilon} controls the zero threshold: scores and penalties
// with magnitude ≤ Epsilon are dropped while building the network, and
// residual arcs ≤ Epsilon are treated as saturated during the final
// reachability sweep. DefaultOptions() returns Epsilon = 1e-9.
//
// # Errors
//
//	ErrNodeOutOfRange   - a node index is not in [0, NumNodes).
//	ErrSelfLoop         - a penalty joins a node to itself.
//	ErrNegativePenalty  - a penalty below −Epsilon reached Minimize;
//	                      the reduction is only exact without it, so
//	                      this is fatal, not recoverable.
//
// # Complexity
//
//	Time:   O(E · V²) worst case for Dinic; far better in practice on
//	        the shallow networks this reduction produces.
//	Memory: O(V + E) arcs.
//
// The Minimizer interface decouples consumers from this implementation;
// MinCut is the exact default, and anything honoring the same contract
// (exact for non-negative penalties) can stand in for it.
package potts
