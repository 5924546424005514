// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"
	"slices"

	"github.com/benbjohnson/immutable"

	"github.com/katalvlaran/conlat/partition"
)

// irreducibles lists irreducible elements with their stars: the lower star
// of a join-irreducible, or the upper star of a meet-irreducible.
type irreducibles struct {
	elems []*partition.Partition
	star  *immutable.Map[*partition.Partition, *partition.Partition]
}

func (s *irreducibles) Len() int { return len(s.elems) }

// JoinIrreducibles returns the congruences that are not the join of
// strictly smaller ones, in principal order.
//
// Every join-irreducible congruence is principal, so only principals are
// candidates; each is still checked against the universe.
func (l *Lattice) JoinIrreducibles() ([]*partition.Partition, error) {
	s, err := l.joinIrreducibles()
	if err != nil {
		return nil, err
	}

	return slices.Clone(s.elems), nil
}

// LowerStar returns the largest congruence strictly below the
// join-irreducible beta.
func (l *Lattice) LowerStar(beta *partition.Partition) (*partition.Partition, error) {
	if err := l.checkAll("LowerStar", beta); err != nil {
		return nil, err
	}
	s, err := l.joinIrreducibles()
	if err != nil {
		return nil, err
	}
	star, ok := s.star.Get(beta)
	if !ok {
		return nil, fmt.Errorf("congruence: LowerStar(%v): %w", beta, ErrNotJoinIrreducible)
	}

	return star, nil
}

func (l *Lattice) joinIrreducibles() (*irreducibles, error) {
	return fill(l, keyJoinIrr, func() (*irreducibles, error) {
		ps, err := l.principals()
		if err != nil {
			return nil, err
		}
		u, err := l.universe()
		if err != nil {
			return nil, err
		}
		t, err := l.tables()
		if err != nil {
			return nil, err
		}

		s := &irreducibles{}
		star := immutable.NewMapBuilder[*partition.Partition, *partition.Partition](partition.Hasher{})
		for _, beta := range ps.elems {
			b, err := u.position("JoinIrreducibles", beta)
			if err != nil {
				return nil, err
			}
			// Join of everything strictly below beta.
			below := 0
			for x := 0; x < b; x++ {
				if t.leq(x, b) {
					below = t.joinOf(below, x)
				}
			}
			if below != b {
				s.elems = append(s.elems, beta)
				star.Set(beta, u.elems[below])
			}
		}
		s.star = star.Map()

		return s, nil
	})
}

// MeetIrreducibles returns the congruences that are not the meet of
// strictly larger ones, in universe order.
func (l *Lattice) MeetIrreducibles() ([]*partition.Partition, error) {
	s, err := l.meetIrreducibles()
	if err != nil {
		return nil, err
	}

	return slices.Clone(s.elems), nil
}

// UpperStar returns the smallest congruence strictly above the
// meet-irreducible mu.
func (l *Lattice) UpperStar(mu *partition.Partition) (*partition.Partition, error) {
	if err := l.checkAll("UpperStar", mu); err != nil {
		return nil, err
	}
	s, err := l.meetIrreducibles()
	if err != nil {
		return nil, err
	}
	star, ok := s.star.Get(mu)
	if !ok {
		return nil, fmt.Errorf("congruence: UpperStar(%v): %w", mu, ErrNotMeetIrreducible)
	}

	return star, nil
}

func (l *Lattice) meetIrreducibles() (*irreducibles, error) {
	return fill(l, keyMeetIrr, func() (*irreducibles, error) {
		u, err := l.universe()
		if err != nil {
			return nil, err
		}
		t, err := l.tables()
		if err != nil {
			return nil, err
		}

		s := &irreducibles{}
		star := immutable.NewMapBuilder[*partition.Partition, *partition.Partition](partition.Hasher{})
		top := t.size - 1
		for m := 0; m < t.size; m++ {
			// Meet of everything strictly above m; strictly larger
			// elements sit at higher positions.
			above := top
			for x := m + 1; x < t.size; x++ {
				if t.leq(m, x) {
					above = t.meetOf(above, x)
				}
			}
			if above != m {
				s.elems = append(s.elems, u.elems[m])
				star.Set(u.elems[m], u.elems[above])
			}
		}
		s.star = star.Map()

		return s, nil
	})
}
