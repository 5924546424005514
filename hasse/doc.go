// SPDX-License-Identifier: MIT

// Package hasse builds and queries the Hasse diagram (covering digraph) of
// a finite partial order whose elements are the indices {0..n-1}.
//
// The order is supplied as a predicate leq(i, j). Indices must already form
// a linear extension: i < j whenever i is strictly below j. Callers sorting
// their elements by rank get this for free.
//
// Edges point upward: i → j means j covers i (i < j with nothing strictly
// between). The diagram is immutable after Build and safe for concurrent
// reads.
//
// Functions:
//
//   - Build(n, leq, opts...)        covering relation, ranks, cancellation.
//   - Up(i), Down(i), Edges()       upper/lower covers, all edges.
//   - Rank(i), Height()             longest chain from a minimal element.
//   - Minimal(), Maximal()          extremal elements.
//   - ShortestChain(from, to)       fewest cover steps, breadth-first.
//   - MaximalChain(from, to)        unrefinable chain taking the first
//     usable upper cover at every step.
//   - TopologicalOrder()            depth-first white/gray/black colouring.
//   - WriteDOT(w, label)            Graphviz rendering, bottom to top.
//
// Complexity:
//
//   - Build: O(n² + n·c) leq calls where c is the maximum number of upper covers.
//   - Chains and topological order: O(n + E).
//
// Errors:
//
//   - ErrNotLinearExtension  leq(j, i) holds for some j > i.
//   - ErrVertexOutOfRange    index outside [0, n).
//   - ErrNoChain             to is not above from.
//   - ErrCycleDetected       a cycle was found while ordering (never for diagrams from Build).
package hasse
