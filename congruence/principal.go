// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/conlat/partition"
)

// Cg returns the principal congruence generated by the pair (a, b): the
// least congruence in which a and b share a block. Cg(a, a) is Zero.
//
// Errors: ErrIndexOutOfRange, ErrMalformedAlgebra, context errors.
func (l *Lattice) Cg(a, b int) (*partition.Partition, error) {
	if err := l.checkIndex("Cg", a); err != nil {
		return nil, err
	}
	if err := l.checkIndex("Cg", b); err != nil {
		return nil, err
	}
	if a == b {
		return l.zero, nil
	}

	bld := partition.NewBuilder(l.n)
	bld.Union(a, b)
	p, err := l.closure(bld, [][2]int{{a, b}})
	if err != nil {
		return nil, fmt.Errorf("congruence: Cg(%d,%d): %w", a, b, err)
	}

	return p, nil
}

// CgPairs returns the least congruence merging every given pair.
func (l *Lattice) CgPairs(pairs [][2]int) (*partition.Partition, error) {
	bld := partition.NewBuilder(l.n)
	var queue [][2]int
	for _, pr := range pairs {
		if err := l.checkIndex("CgPairs", pr[0]); err != nil {
			return nil, err
		}
		if err := l.checkIndex("CgPairs", pr[1]); err != nil {
			return nil, err
		}
		if bld.Union(pr[0], pr[1]) {
			queue = append(queue, pr)
		}
	}
	if len(queue) == 0 {
		return l.zero, nil
	}
	p, err := l.closure(bld, queue)
	if err != nil {
		return nil, fmt.Errorf("congruence: CgPairs: %w", err)
	}

	return p, nil
}

// Generate returns the least congruence containing the relation p.
func (l *Lattice) Generate(p *partition.Partition) (*partition.Partition, error) {
	if err := l.checkAll("Generate", p); err != nil {
		return nil, err
	}
	var queue [][2]int
	for i := 0; i < l.n; i++ {
		r, _ := p.Representative(i)
		if r != i {
			queue = append(queue, [2]int{r, i})
		}
	}
	if len(queue) == 0 {
		return l.zero, nil
	}
	g, err := l.closure(partition.NewBuilderFrom(p), queue)
	if err != nil {
		return nil, fmt.Errorf("congruence: Generate(%v): %w", p, err)
	}

	return g, nil
}

// IsCongruence reports whether p is compatible with every operation.
func (l *Lattice) IsCongruence(p *partition.Partition) (bool, error) {
	g, err := l.Generate(p)
	if err != nil {
		return false, err
	}

	return g.Equal(p), nil
}

// closure merges every pair forced by compatibility, starting from the
// merged pairs in queue, and returns the resulting partition.
//
// For a popped pair (x, y), each operation f of arity k and each position
// pos, every tuple over the other k-1 positions is evaluated with x and
// with y at pos. Unequal blocks of the two results are merged and the
// pair is queued. Nullary operations impose nothing.
func (l *Lattice) closure(bld *partition.Builder, queue [][2]int) (*partition.Partition, error) {
	buf := make([]int, l.maxArity)
	for len(queue) > 0 {
		if err := l.canceled(); err != nil {
			return nil, err
		}
		x, y := queue[0][0], queue[0][1]
		queue = queue[1:]

		for op, k := range l.arity {
			tuple := buf[:k]
			for pos := 0; pos < k; pos++ {
				clear(tuple)
				for {
					tuple[pos] = x
					u, err := l.eval(op, tuple)
					if err != nil {
						return nil, err
					}
					tuple[pos] = y
					v, err := l.eval(op, tuple)
					if err != nil {
						return nil, err
					}
					if bld.Union(u, v) {
						queue = append(queue, [2]int{u, v})
					}
					if !advance(tuple, pos, l.n) {
						break
					}
				}
			}
		}
	}

	return bld.Partition(), nil
}

// advance steps tuple as an odometer over {0..n-1}, leaving position skip
// untouched. It reports false after the last tuple.
func advance(tuple []int, skip, n int) bool {
	for i := len(tuple) - 1; i >= 0; i-- {
		if i == skip {
			continue
		}
		tuple[i]++
		if tuple[i] < n {
			return true
		}
		tuple[i] = 0
	}

	return false
}

// eval calls the algebra and validates its result.
func (l *Lattice) eval(op int, args []int) (int, error) {
	v, err := l.alg.Evaluate(op, args)
	if err != nil {
		return 0, fmt.Errorf("operation %d%v: %w: %w", op, args, ErrMalformedAlgebra, err)
	}
	if v < 0 || v >= l.n {
		return 0, fmt.Errorf("operation %d%v = %d outside [0,%d): %w", op, args, v, l.n, ErrMalformedAlgebra)
	}

	return v, nil
}

// principalSet lists the distinct principal congruences with the first
// pair that generated each.
type principalSet struct {
	elems []*partition.Partition
	pairs [][2]int
}

func (s *principalSet) Len() int { return len(s.elems) }

// Principals returns the distinct principal congruences Cg(a, b), a < b,
// ordered by increasing rank and then by the first generating pair.
func (l *Lattice) Principals() ([]*partition.Partition, error) {
	s, err := l.principals()
	if err != nil {
		return nil, err
	}

	return slices.Clone(s.elems), nil
}

// PrincipalPairs returns, parallel to Principals, the first pair (a, b)
// generating each principal congruence.
func (l *Lattice) PrincipalPairs() ([][2]int, error) {
	s, err := l.principals()
	if err != nil {
		return nil, err
	}

	return slices.Clone(s.pairs), nil
}

func (l *Lattice) principals() (*principalSet, error) {
	return fill(l, keyPrincipals, func() (*principalSet, error) {
		s := &principalSet{}
		seen := make(map[string]struct{})
		for a := 0; a < l.n; a++ {
			for b := a + 1; b < l.n; b++ {
				p, err := l.Cg(a, b)
				if err != nil {
					return nil, err
				}
				key := p.Key()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				s.elems = append(s.elems, p)
				s.pairs = append(s.pairs, [2]int{a, b})
			}
		}

		// Stable sort keeps pair order within a rank.
		idx := make([]int, len(s.elems))
		for i := range idx {
			idx[i] = i
		}
		slices.SortStableFunc(idx, func(i, j int) int {
			return s.elems[i].Rank() - s.elems[j].Rank()
		})
		sorted := &principalSet{
			elems: make([]*partition.Partition, len(idx)),
			pairs: make([][2]int, len(idx)),
		}
		for k, i := range idx {
			sorted.elems[k] = s.elems[i]
			sorted.pairs[k] = s.pairs[i]
		}

		return sorted, nil
	})
}
