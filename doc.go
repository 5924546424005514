// Package conlat computes congruence lattices of finite algebras.
//
// 🚀 What is conlat?
//
//	A small, dependency-light engine that brings together:
//		• Partitions: canonical equivalence relations with join, meet and order
//		• Algebras: finite operation tables, typed adapters, YAML definitions
//		• Congruences: principal generation, universe closure, irreducibles,
//		  atoms, covers, chains, complements, distributivity and modularity
//		• Hasse diagrams: covering digraphs, chains, Graphviz output
//
// ✨ Why choose conlat?
//
//   - Index-based – the engine never sees element types, only indices
//   - Canonical – equal relations are byte-identical, so hashing is exact
//   - Lazy – every derived field is computed once and shared between goroutines
//   - Bounded – cancellation and a universe size cap fail loudly, never truncate
//
// Packages:
//
//	partition/  — canonical partitions of {0..n-1}, Builder, bar notation, JSON
//	algebra/    — Algebra interface, Table, Indexed[T], constructors, YAML
//	congruence/ — Lattice: Cg, Universe, irreducibles, covers, chains, predicates
//	hasse/      — covering digraph of a finite poset
//	cmd/conlat  — command-line front end
//
// Quick example:
//
//	z6, _ := algebra.CyclicGroup(6)
//	l, _ := congruence.New(z6)
//	theta, _ := l.Cg(0, 2) // |0,2,4|1,3,5|
//	n, _ := l.Cardinality() // 4: the subgroups of Z6
//
//	go install github.com/katalvlaran/conlat/cmd/conlat@latest
package conlat
