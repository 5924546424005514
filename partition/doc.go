// SPDX-License-Identifier: MIT

// Package partition implements equivalence relations over the index set
// {0..n-1} in a canonical forest-array form.
//
// What:
//
//   - Partition: an immutable value holding an array rep of length n.
//     Every block has exactly one representative, its minimum element,
//     and rep[r] == -size(block) for that representative. Every other
//     element i stores the representative index directly (rep[i] == r).
//   - Merge, Join, Meet: produce new partitions, always canonical.
//   - Leq: the refinement order (P ≤ Q iff every block of P lies inside
//     a block of Q).
//   - Hash, Key, Equal, Compare: defined on the canonical array only, so
//     two partitions denoting the same relation are interchangeable as map
//     keys regardless of how they were built.
//
// Why canonical form matters:
//
//	Sets of partitions are deduplicated by hashing. A representation that
//	is only transitively compressed (i → j → r) would hash differently
//	from the directly compressed one (i → r) while denoting the same
//	relation, and the set would silently keep both. Every constructor and
//	every operation in this package therefore returns the unique form
//	described above.
//
// Notation:
//
//	String and Parse use the bar notation "|0,1|2|" with blocks ordered by
//	their minimum element and elements ascending inside each block.
//
// Complexity:
//
//   - Representative, SameBlock: O(1).
//   - Merge: O(n) (the absorbed block is re-pointed; the result is a copy).
//   - Join: O(n·α(n)); Meet, Leq, Equal, Hash: O(n).
//
// Errors:
//
//   - ErrIndexOutOfRange  an element index outside [0, n).
//   - ErrSizeMismatch     binary operation on partitions of different size.
//   - ErrNegativeSize     negative n passed to FromBlocks.
//   - ErrInvalidArray     FromArray input is not a forest.
//   - ErrInvalidBlocks    FromBlocks input repeats an element.
//   - ErrSyntax           Parse input is not valid bar notation.
package partition
