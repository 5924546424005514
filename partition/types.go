// SPDX-License-Identifier: MIT

package partition

import "errors"

// Sentinel errors for partition construction and operations.
var (
	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("partition: index out of range")

	// ErrSizeMismatch indicates a binary operation on partitions over
	// index sets of different sizes.
	ErrSizeMismatch = errors.New("partition: size mismatch")

	// ErrNegativeSize indicates a negative index-set size.
	ErrNegativeSize = errors.New("partition: negative size")

	// ErrInvalidArray indicates a forest array containing a cycle or a
	// pointer outside [0, n).
	ErrInvalidArray = errors.New("partition: invalid forest array")

	// ErrInvalidBlocks indicates blocks that share an element.
	ErrInvalidBlocks = errors.New("partition: invalid blocks")

	// ErrSyntax indicates malformed bar notation passed to Parse.
	ErrSyntax = errors.New("partition: syntax error")
)

// Partition is an equivalence relation on {0..n-1} stored in canonical
// forest-array form. The zero value is the partition of the empty set.
//
// A Partition is immutable: no exported method modifies the receiver, so
// values may be shared freely between goroutines and stored in sets.
type Partition struct {
	// rep[i] < 0: i is the minimum of its block and -rep[i] is the block size.
	// rep[i] >= 0: rep[i] is the representative of i's block (always a root).
	rep []int

	// blocks caches the number of blocks.
	blocks int
}
