// Package graphlabel is the learning core of a structured-prediction
// trainer for binary node labeling over graphs: feature-carrying
// samples, exact loss-augmented inference, and the separation oracle a
// cutting-plane optimizer drives.
//
// 🚀 What is graphlabel?
//
//	A pure-Go, dependency-free core that brings together:
//		• feature/ — dense & sparse feature vectors + one Accumulator abstraction
//		• graph/   — Sample: indexed nodes and undirected edges, each with feature data
//		• potts/   — binary pairwise energies, minimized exactly via min-cut (Dinic)
//		• svm/     — validation, the training-problem adapter, and the separation oracle
//
// ✨ Why choose graphlabel?
//
//   - Exact inference – submodular Potts energies solved by max-flow, no approximation
//   - Concurrency-ready – lock-free oracle calls over immutable samples
//   - Pure Go – no cgo, no hidden deps
//   - Pluggable – swap the Potts minimizer or the ψ representation without touching callers
//
// The external cutting-plane optimizer stays external: it consumes the
// svm.Evaluator contract (dimensions, sample count, truth ψ, oracle)
// and owns the weight vector. Remember to constrain its first
// svm.Problem.NumEdgeWeights() solution entries to be non-negative -
// the min-cut reduction is exact only then.
//
// Quick ASCII example:
//
//	    x₀───x₁        nodes carry feature vectors,
//	     \   /         edges carry their own,
//	      x₂           labels are one bit per node.
//
// Dive into the package docs and examples/ for full scenarios.
//
//	go get github.com/katalvlaran/graphlabel
package graphlabel
