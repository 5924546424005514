// SPDX-License-Identifier: MIT

package partition

// Builder is a mutable union-find over {0..n-1} used to accumulate merges
// before publishing an immutable Partition. It uses union by size with path
// compression, so a long run of Union calls costs O(α(n)) each.
//
// Indices must lie in [0, n); an out-of-range index panics like slice
// indexing. Callers validating input up front (such as congruence
// generation) use Builder in their inner loops; everything else should go
// through the checked Partition methods.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	parent []int // parent[i] == i for roots
	size   []int // valid at roots only
	blocks int
}

// NewBuilder returns a Builder holding the zero partition of {0..n-1}.
// A negative n is treated as 0.
func NewBuilder(n int) *Builder {
	if n < 0 {
		n = 0
	}
	b := &Builder{
		parent: make([]int, n),
		size:   make([]int, n),
		blocks: n,
	}
	for i := 0; i < n; i++ {
		b.parent[i] = i
		b.size[i] = 1
	}

	return b
}

// NewBuilderFrom returns a Builder seeded with the blocks of p.
func NewBuilderFrom(p *Partition) *Builder {
	n := len(p.rep)
	b := &Builder{
		parent: make([]int, n),
		size:   make([]int, n),
		blocks: p.blocks,
	}
	for i := 0; i < n; i++ {
		r := p.root(i)
		b.parent[i] = r
		if r == i {
			b.size[i] = -p.rep[i]
		}
	}

	return b
}

// Size returns n.
func (b *Builder) Size() int { return len(b.parent) }

// NumBlocks returns the current number of blocks.
func (b *Builder) NumBlocks() int { return b.blocks }

// Find returns the current root of i's tree, compressing the path behind it.
// The root is an implementation detail and need not be the block minimum.
func (b *Builder) Find(i int) int {
	root := i
	for b.parent[root] != root {
		root = b.parent[root]
	}
	// Path compression: point every visited node straight at the root.
	for b.parent[i] != root {
		next := b.parent[i]
		b.parent[i] = root
		i = next
	}

	return root
}

// Same reports whether i and j are currently in one block.
func (b *Builder) Same(i, j int) bool {
	return b.Find(i) == b.Find(j)
}

// Union merges the blocks of i and j and reports whether anything changed.
// The smaller tree is linked under the larger one.
func (b *Builder) Union(i, j int) bool {
	ri, rj := b.Find(i), b.Find(j)
	if ri == rj {
		return false
	}
	if b.size[ri] < b.size[rj] {
		ri, rj = rj, ri
	}
	b.parent[rj] = ri
	b.size[ri] += b.size[rj]
	b.blocks--

	return true
}

// Partition publishes the accumulated relation in canonical form. The
// Builder remains usable afterwards; later unions do not affect the
// returned value.
// Complexity: O(n·α(n)).
func (b *Builder) Partition() *Partition {
	label := make([]int, len(b.parent))
	for i := range label {
		label[i] = b.Find(i)
	}

	return fromLabels(label)
}
