// SPDX-License-Identifier: MIT

package partition_test

import (
	"encoding/json"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conlat/partition"
)

// mustParse parses bar notation or fails the test.
func mustParse(t *testing.T, s string) *partition.Partition {
	t.Helper()
	p, err := partition.Parse(s)
	require.NoError(t, err, "Parse(%q)", s)

	return p
}

// assertCanonical checks the canonical-form invariant directly on the array:
// roots are block minima holding -size, every other entry points straight
// at a root smaller than itself.
func assertCanonical(t *testing.T, p *partition.Partition) {
	t.Helper()
	arr := p.Array()
	sizes := make(map[int]int)
	for i, v := range arr {
		if v < 0 {
			sizes[i]++
			continue
		}
		require.Less(t, v, i, "element %d must point at a smaller root", i)
		require.Negative(t, arr[v], "element %d must point directly at a root", i)
		sizes[v]++
	}
	for r, size := range sizes {
		assert.Equal(t, -arr[r], size, "root %d must hold -size", r)
	}
	assert.Equal(t, len(sizes), p.NumBlocks())
}

// TestZeroOne verifies the extreme partitions.
func TestZeroOne(t *testing.T) {
	for n := 1; n <= 5; n++ {
		z, o := partition.Zero(n), partition.One(n)
		assert.Equal(t, n, z.NumBlocks())
		assert.Equal(t, 1, o.NumBlocks())
		assert.True(t, z.IsZero())
		assert.True(t, o.IsOne())
		assert.Equal(t, 0, z.Rank())
		assert.Equal(t, n-1, o.Rank())
		assertCanonical(t, z)
		assertCanonical(t, o)
	}
	assert.Equal(t, 0, partition.Zero(-3).Size())
	assert.Equal(t, 0, partition.One(0).NumBlocks())
	assert.Equal(t, "||", partition.Zero(0).String())
}

// TestMerge_SameRelationTwoWays builds {0,2,4}{1,3} through different merge
// orders and requires byte-identical results.
func TestMerge_SameRelationTwoWays(t *testing.T) {
	build := func(pairs [][2]int) *partition.Partition {
		p := partition.Zero(5)
		for _, pr := range pairs {
			var err error
			p, err = p.Merge(pr[0], pr[1])
			require.NoError(t, err)
			assertCanonical(t, p)
		}

		return p
	}
	a := build([][2]int{{0, 2}, {2, 4}, {1, 3}})
	b := build([][2]int{{4, 2}, {3, 1}, {4, 0}})
	c := build([][2]int{{3, 1}, {2, 0}, {4, 2}, {0, 4}})

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(c))
	assert.Equal(t, a.Array(), c.Array())
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Key(), c.Key())
	assert.Equal(t, 0, a.Compare(c))
	assert.Equal(t, "|0,2,4|1,3|", a.String())
}

// TestMerge_NoOpReturnsReceiver verifies that merging a pair already in one
// block returns the receiver unchanged.
func TestMerge_NoOpReturnsReceiver(t *testing.T) {
	p := mustParse(t, "|0,1|2|")
	q, err := p.Merge(1, 0)
	require.NoError(t, err)
	assert.Same(t, p, q)

	// The receiver is never modified by a real merge either.
	r, err := p.Merge(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "|0,1|2|", p.String())
	assert.Equal(t, "|0,1,2|", r.String())
}

// TestMerge_OutOfRange verifies index validation.
func TestMerge_OutOfRange(t *testing.T) {
	p := partition.Zero(3)
	_, err := p.Merge(0, 3)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfRange)
	_, err = p.Merge(-1, 0)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfRange)
	_, err = p.Representative(7)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfRange)
	_, err = p.SameBlock(0, 9)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfRange)
	_, err = p.BlockSize(-2)
	assert.ErrorIs(t, err, partition.ErrIndexOutOfRange)
}

// TestRandomMerges_Canonical runs seeded random merge sequences through both
// Merge and Builder and checks they agree and stay canonical.
func TestRandomMerges_Canonical(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(9)
		p := partition.Zero(n)
		b := partition.NewBuilder(n)
		for k := r.Intn(2 * n); k > 0; k-- {
			i, j := r.Intn(n), r.Intn(n)
			var err error
			p, err = p.Merge(i, j)
			require.NoError(t, err)
			b.Union(i, j)
		}
		assertCanonical(t, p)
		q := b.Partition()
		assertCanonical(t, q)
		require.True(t, p.Equal(q), "round %d: %s vs %s", round, p, q)
		assert.Equal(t, p.NumBlocks(), b.NumBlocks())

		// Re-normalising a canonical array is the identity.
		again, err := partition.FromArray(p.Array())
		require.NoError(t, err)
		assert.Equal(t, p.Array(), again.Array())
	}
}

// TestFromArray accepts uncompressed forests and rejects cycles.
func TestFromArray(t *testing.T) {
	// 3 → 2 → 1 chain with a non-minimal root.
	p, err := partition.FromArray([]int{-1, 2, -3, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -3, 1, 1}, p.Array())
	assert.Equal(t, "|0|1,2,3|", p.String())

	_, err = partition.FromArray([]int{1, 0})
	assert.ErrorIs(t, err, partition.ErrInvalidArray)
	_, err = partition.FromArray([]int{-1, 5})
	assert.ErrorIs(t, err, partition.ErrInvalidArray)
}

// TestFromBlocks covers omitted singletons and repeated elements.
func TestFromBlocks(t *testing.T) {
	p, err := partition.FromBlocks(5, [][]int{{4, 1}, {}, {3, 0}})
	require.NoError(t, err)
	assert.Equal(t, "|0,3|1,4|2|", p.String())
	assert.Equal(t, [][]int{{0, 3}, {1, 4}, {2}}, p.Blocks())

	_, err = partition.FromBlocks(3, [][]int{{0, 1}, {1, 2}})
	assert.ErrorIs(t, err, partition.ErrInvalidBlocks)
	_, err = partition.FromBlocks(3, [][]int{{0, 3}})
	assert.ErrorIs(t, err, partition.ErrIndexOutOfRange)
	_, err = partition.FromBlocks(-1, nil)
	assert.ErrorIs(t, err, partition.ErrNegativeSize)
}

// TestAccessors checks Representative, SameBlock, BlockSize on one value.
func TestAccessors(t *testing.T) {
	p := mustParse(t, "|0,3|1,2,4|")
	r, err := p.Representative(4)
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	same, err := p.SameBlock(0, 3)
	require.NoError(t, err)
	assert.True(t, same)
	same, err = p.SameBlock(0, 1)
	require.NoError(t, err)
	assert.False(t, same)

	size, err := p.BlockSize(2)
	require.NoError(t, err)
	assert.Equal(t, 3, size)
	assert.Equal(t, 3, p.Rank())

	c := p.Clone()
	assert.True(t, c.Equal(p))
	assert.NotSame(t, c, p)
}

// TestParse round-trips bar notation and rejects malformed input.
func TestParse(t *testing.T) {
	for _, s := range []string{"|0|", "|0,1|", "|0,2|1|", "|0,1,2,3|", "|0|1|2|3|", "||"} {
		p := mustParse(t, s)
		assert.Equal(t, s, p.String())
	}
	p := mustParse(t, " | 2 0 | 1 | ")
	assert.Equal(t, "|0,2|1|", p.String())

	for _, bad := range []string{"", "0,1", "|0,1", "|0||1|", "|0,x|", "|0,-1|"} {
		_, err := partition.Parse(bad)
		assert.ErrorIs(t, err, partition.ErrSyntax, "input %q", bad)
	}
	for _, bad := range []string{"|0,2|", "|1|", "|0,0|2|"} {
		_, err := partition.Parse(bad)
		assert.ErrorIs(t, err, partition.ErrInvalidBlocks, "input %q", bad)
	}
}

// TestJSON covers the block-list encoding.
func TestJSON(t *testing.T) {
	p := mustParse(t, "|0,2|1|")
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[[0,2],[1]]`, string(data))

	var q partition.Partition
	require.NoError(t, json.Unmarshal(data, &q))
	assert.True(t, q.Equal(p))

	assert.Error(t, json.Unmarshal([]byte(`[[0,5]]`), &q))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &q))
}

// TestLogValue verifies the slog rendering.
func TestLogValue(t *testing.T) {
	v := mustParse(t, "|0,1|2|").LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())
	attrs := v.Group()
	require.Len(t, attrs, 3)
	assert.Equal(t, "str", attrs[2].Key)
	assert.Equal(t, "|0,1|2|", attrs[2].Value.String())
}

// TestCompare verifies the total order.
func TestCompare(t *testing.T) {
	z, o := partition.Zero(3), partition.One(3)
	a := mustParse(t, "|0,1|2|")
	b := mustParse(t, "|0,2|1|")
	assert.Equal(t, -1, z.Compare(a))
	assert.Equal(t, 1, o.Compare(a))
	assert.Equal(t, -b.Compare(a), a.Compare(b))
	assert.NotEqual(t, 0, a.Compare(b))
	assert.Equal(t, -1, partition.Zero(2).Compare(z))

	var h partition.Hasher
	assert.True(t, h.Equal(a, mustParse(t, "|1,0|2|")))
	assert.Equal(t, a.Hash(), h.Hash(mustParse(t, "|1,0|2|")))
	assert.False(t, a.Equal(nil))
}
