// SPDX-License-Identifier: MIT

// Package algebra supplies finite algebras to the congruence engine through
// a capability interface that speaks element indices only.
//
// What:
//
//   - Algebra: Cardinality, OperationCount, Arity and Evaluate over indices
//     {0..n-1}. This is all the congruence package ever sees, so one engine
//     serves algebras whose native elements are integers, tuples, bit sets
//     or classes of another structure.
//   - Table: the concrete index-based algebra. Every operation is a fully
//     tabulated function stored in Horner order (args[0] most significant).
//   - Indexed[T]: adapter from native elements of any comparable type plus
//     Go functions to a Table, translating results back to indices.
//   - Constructors: Set, CyclicGroup, Chain, Unary, Subsets, Product.
//   - Definitions: YAML files decoded, validated and turned into Tables
//     (Decode, LoadFile), and the reverse (Encode).
//
// Definition file format:
//
//	name: z3
//	cardinality: 3
//	elements: [a, b, c]          # optional labels
//	operations:
//	  - symbol: "+"
//	    arity: 2
//	    table: [0, 1, 2, 1, 2, 0, 2, 0, 1]
//
// Errors:
//
//   - ErrEmptyUniverse      cardinality below 1.
//   - ErrUnknownOperation   operation index outside [0, OperationCount()).
//   - ErrArityMismatch      wrong number of arguments, or negative arity.
//   - ErrIndexOutOfRange    argument index outside [0, n).
//   - ErrInvalidTable       table of the wrong length or with entries outside [0, n).
//   - ErrInvalidLabels      wrong number of labels or duplicates after NFC normalisation.
//   - ErrNotClosed          an Indexed function returned a foreign element.
//   - ErrDuplicateElement   an Indexed universe lists an element twice.
//   - ErrSignatureMismatch  Product of algebras with different signatures.
//   - ErrInvalidDefinition  a YAML definition failing structural validation.
package algebra
