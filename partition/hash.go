// SPDX-License-Identifier: MIT

package partition

import (
	"cmp"
	"encoding/binary"
	"hash/fnv"
	"slices"
	"strconv"
	"strings"
)

// Hash returns the 32-bit FNV-1a hash of the canonical array. Partitions
// denoting the same relation always hash equal.
// Complexity: O(n).
func (p *Partition) Hash() uint32 {
	h := fnv.New32a()
	var buf [4]byte
	for _, v := range p.rep {
		binary.LittleEndian.PutUint32(buf[:], uint32(int32(v)))
		_, _ = h.Write(buf[:])
	}

	return h.Sum32()
}

// Key returns the canonical array as a compact string, usable as a Go map
// key: equal relations produce equal keys.
func (p *Partition) Key() string {
	var sb strings.Builder
	for i, v := range p.rep {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Equal reports whether p and q denote the same relation on the same set.
// Complexity: O(n).
func (p *Partition) Equal(q *Partition) bool {
	if p == q {
		return true
	}
	if p == nil || q == nil || p.blocks != q.blocks {
		return false
	}

	return slices.Equal(p.rep, q.rep)
}

// Compare is a total order on partitions: by n, then by rank (finer first),
// then lexicographically on the canonical array. It returns -1, 0 or +1 and
// agrees with Equal.
func (p *Partition) Compare(q *Partition) int {
	switch {
	case len(p.rep) != len(q.rep):
		return cmp.Compare(len(p.rep), len(q.rep))
	case p.blocks != q.blocks:
		// more blocks means lower rank
		return cmp.Compare(q.blocks, p.blocks)
	default:
		return slices.Compare(p.rep, q.rep)
	}
}

// Hasher hashes and compares *Partition values by canonical form. It
// satisfies github.com/benbjohnson/immutable.Hasher[*Partition].
type Hasher struct{}

// Hash returns p.Hash().
func (Hasher) Hash(p *Partition) uint32 { return p.Hash() }

// Equal returns a.Equal(b).
func (Hasher) Equal(a, b *Partition) bool { return a.Equal(b) }
