// SPDX-License-Identifier: MIT

package partition

import "fmt"

// Zero returns the finest partition of {0..n-1}: every element alone.
// A negative n is treated as 0.
// Complexity: O(n).
func Zero(n int) *Partition {
	if n < 0 {
		n = 0
	}
	rep := make([]int, n)
	for i := range rep {
		rep[i] = -1
	}

	return &Partition{rep: rep, blocks: n}
}

// One returns the coarsest partition of {0..n-1}: a single block.
// A negative n is treated as 0; One(0) has no blocks.
// Complexity: O(n).
func One(n int) *Partition {
	if n <= 0 {
		return &Partition{rep: []int{}}
	}
	// every non-root entry already points at 0
	rep := make([]int, n)
	rep[0] = -n

	return &Partition{rep: rep, blocks: 1}
}

// FromBlocks builds the partition of {0..n-1} whose blocks are the given
// slices. Elements not mentioned in any block become singletons and empty
// blocks are ignored.
//
// Errors: ErrNegativeSize, ErrIndexOutOfRange, ErrInvalidBlocks (an element
// listed twice).
// Complexity: O(n + Σ|block|).
func FromBlocks(n int, blocks [][]int) (*Partition, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	// label[i] = first element of the block listing i, or i itself.
	label := make([]int, n)
	seen := make([]bool, n)
	for i := range label {
		label[i] = i
	}
	for bi, block := range blocks {
		if len(block) == 0 {
			continue
		}
		head := block[0]
		for _, x := range block {
			if x < 0 || x >= n {
				return nil, fmt.Errorf("partition: FromBlocks block %d element %d (n=%d): %w", bi, x, n, ErrIndexOutOfRange)
			}
			if seen[x] {
				return nil, fmt.Errorf("partition: FromBlocks element %d listed twice: %w", x, ErrInvalidBlocks)
			}
			seen[x] = true
			label[x] = head
		}
	}

	return fromLabels(label), nil
}

// FromArray builds a partition from any forest array: arr[i] < 0 marks a
// root and arr[i] >= 0 points to another element of the same block. Chains
// of any length are accepted; the result is fully compressed and rooted at
// block minima.
//
// Errors: ErrInvalidArray if a pointer leaves [0, n) or the pointers cycle.
// Complexity: O(n²) worst case for pathological chains, O(n) typically.
func FromArray(arr []int) (*Partition, error) {
	n := len(arr)
	label := make([]int, n)
	for i := 0; i < n; i++ {
		// 1. Walk to the root, bounding the walk by n steps.
		cur := i
		for steps := 0; arr[cur] >= 0; steps++ {
			if arr[cur] >= n || steps > n {
				return nil, fmt.Errorf("partition: FromArray at %d: %w", i, ErrInvalidArray)
			}
			cur = arr[cur]
		}
		// 2. The root is a block-wide label in [0, n).
		label[i] = cur
	}

	return fromLabels(label), nil
}

// fromLabels canonicalises a labelling where label[i] in [0, n) names the
// block of i. Elements sharing a label share a block.
func fromLabels(label []int) *Partition {
	n := len(label)
	rep := make([]int, n)
	// first[l] is the minimum element carrying label l, or -1.
	first := make([]int, n)
	for i := range first {
		first[i] = -1
	}
	blocks := 0
	for i := 0; i < n; i++ {
		l := label[i]
		r := first[l]
		if r < 0 {
			// ascending scan: the first element seen is the block minimum
			first[l] = i
			rep[i] = -1
			blocks++
			continue
		}
		rep[i] = r
		rep[r]--
	}

	return &Partition{rep: rep, blocks: blocks}
}

// root returns the representative of i without bounds checks.
func (p *Partition) root(i int) int {
	if p.rep[i] < 0 {
		return i
	}

	return p.rep[i]
}

// check reports ErrIndexOutOfRange for i outside [0, n).
func (p *Partition) check(i int) error {
	if i < 0 || i >= len(p.rep) {
		return fmt.Errorf("partition: index %d (n=%d): %w", i, len(p.rep), ErrIndexOutOfRange)
	}

	return nil
}

// Size returns n, the size of the underlying index set.
func (p *Partition) Size() int { return len(p.rep) }

// NumBlocks returns the number of blocks.
func (p *Partition) NumBlocks() int { return p.blocks }

// Rank returns n - NumBlocks(), the height of p in the partition lattice.
func (p *Partition) Rank() int { return len(p.rep) - p.blocks }

// IsZero reports whether every block is a singleton.
func (p *Partition) IsZero() bool { return p.blocks == len(p.rep) }

// IsOne reports whether p has at most one block.
func (p *Partition) IsOne() bool { return p.blocks <= 1 }

// Representative returns the minimum element of the block containing i.
// Complexity: O(1).
func (p *Partition) Representative(i int) (int, error) {
	if err := p.check(i); err != nil {
		return 0, err
	}

	return p.root(i), nil
}

// SameBlock reports whether i and j lie in the same block.
// Complexity: O(1).
func (p *Partition) SameBlock(i, j int) (bool, error) {
	if err := p.check(i); err != nil {
		return false, err
	}
	if err := p.check(j); err != nil {
		return false, err
	}

	return p.root(i) == p.root(j), nil
}

// BlockSize returns the number of elements in the block of i.
func (p *Partition) BlockSize(i int) (int, error) {
	if err := p.check(i); err != nil {
		return 0, err
	}

	return -p.rep[p.root(i)], nil
}

// Array returns a copy of the canonical forest array.
func (p *Partition) Array() []int {
	out := make([]int, len(p.rep))
	copy(out, p.rep)

	return out
}

// Blocks returns the blocks ordered by their minimum element, each block
// sorted ascending.
// Complexity: O(n).
func (p *Partition) Blocks() [][]int {
	out := make([][]int, 0, p.blocks)
	// slot[r] is the position of r's block in out.
	slot := make([]int, len(p.rep))
	for i := range p.rep {
		r := p.root(i)
		if r == i {
			slot[i] = len(out)
			out = append(out, make([]int, 0, -p.rep[i]))
		}
		out[slot[r]] = append(out[slot[r]], i)
	}

	return out
}

// Clone returns a deep copy of p.
func (p *Partition) Clone() *Partition {
	return &Partition{rep: p.Array(), blocks: p.blocks}
}
