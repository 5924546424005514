// SPDX-License-Identifier: MIT

// Package congruence computes the lattice of congruences of a finite algebra.
//
// A congruence is an equivalence relation on the algebra's elements that is
// compatible with every operation. Congruences are represented as canonical
// partition.Partition values over the element indices {0..n-1}; the engine
// never sees the algebra's native element type, only the algebra.Algebra
// capability interface (cardinality, operation count, arity, Evaluate).
//
// Pipeline:
//
//  1. Cg(a, b): least congruence merging a and b, by a work-queue closure.
//     For every merged pair (x, y), every operation and every argument
//     position, all tuples agreeing outside that position are evaluated
//     with x and with y in it, and the two results are merged.
//  2. Principals(): the distinct Cg(a, b) for a < b, finest first.
//  3. Universe(): the principals closed under join, zero first, one last.
//  4. Derived queries over the universe: join/meet irreducibles with their
//     lower/upper stars, atoms, coatoms, covers, the Hasse diagram,
//     principal chains, complements, distributivity and modularity.
//
// Every derived field is computed at most once per Lattice and cached in
// a memo arena. Concurrent first callers share one computation; a failed
// computation (cancellation, size bound, malformed algebra) is not cached
// and the next call retries.
//
// Options:
//
//   - WithContext(ctx)       checked between work-queue and closure iterations.
//   - WithMaxUniverse(k)     report ErrUniverseTooLarge beyond k congruences.
//   - WithLogger(l)          Debug records when a memo field is filled.
//
// Complexity (n elements, U congruences, ops of arity ≤ k):
//
//   - Cg:            O(n · Σ k·n^(k-1)) evaluations.
//   - Universe:      O(n²) Cg calls plus O(U · P) joins, P principals.
//   - Join/meet tables, irreducibles, Hasse: O(U² · n).
//   - IsDistributive, IsModular: O(U³) table lookups.
//
// Errors:
//
//   - ErrNilAlgebra, ErrEmptyAlgebra, ErrOptionViolation at construction.
//   - ErrIndexOutOfRange, ErrSizeMismatch, ErrNotInUniverse for bad arguments.
//   - ErrMalformedAlgebra wraps evaluation failures of the algebra.
//   - ErrUniverseTooLarge when the configured bound is exceeded.
//   - ErrNotJoinIrreducible, ErrNotMeetIrreducible from LowerStar/UpperStar.
//   - ErrNotAvailable from Commutator, TypeSet and IsCentral.
//   - context.Canceled / context.DeadlineExceeded, wrapped.
package congruence
