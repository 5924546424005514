// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"
	"slices"

	"github.com/benbjohnson/immutable"

	"github.com/katalvlaran/conlat/partition"
)

// universe is the sorted set of all congruences with a position index.
// Both fields are read-only once published.
type universe struct {
	elems []*partition.Partition
	index *immutable.Map[*partition.Partition, int]
}

func (u *universe) Len() int { return len(u.elems) }

// position returns the index of p, or ErrNotInUniverse.
func (u *universe) position(op string, p *partition.Partition) (int, error) {
	i, ok := u.index.Get(p)
	if !ok {
		return 0, fmt.Errorf("congruence: %s(%v): %w", op, p, ErrNotInUniverse)
	}

	return i, nil
}

// Universe returns every congruence, ordered by increasing rank and then
// by canonical array. Zero is first and One last.
//
// Errors: ErrUniverseTooLarge, ErrMalformedAlgebra, context errors.
func (l *Lattice) Universe() ([]*partition.Partition, error) {
	u, err := l.universe()
	if err != nil {
		return nil, err
	}

	return slices.Clone(u.elems), nil
}

// Cardinality returns the number of congruences.
func (l *Lattice) Cardinality() (int, error) {
	u, err := l.universe()
	if err != nil {
		return 0, err
	}

	return len(u.elems), nil
}

// Index returns the position of theta in Universe.
func (l *Lattice) Index(theta *partition.Partition) (int, error) {
	if err := l.checkAll("Index", theta); err != nil {
		return 0, err
	}
	u, err := l.universe()
	if err != nil {
		return 0, err
	}

	return u.position("Index", theta)
}

// Contains reports whether theta is a congruence.
func (l *Lattice) Contains(theta *partition.Partition) (bool, error) {
	if err := l.checkAll("Contains", theta); err != nil {
		return false, err
	}
	u, err := l.universe()
	if err != nil {
		return false, err
	}
	_, ok := u.index.Get(theta)

	return ok, nil
}

// universe closes the principals under join.
//
// Every congruence is the join of the principal congruences below it, so
// starting from zero and joining each discovered element with every
// principal reaches all of them.
func (l *Lattice) universe() (*universe, error) {
	return fill(l, keyUniverse, func() (*universe, error) {
		ps, err := l.principals()
		if err != nil {
			return nil, err
		}

		seen := immutable.NewMapBuilder[*partition.Partition, int](partition.Hasher{})
		elems := []*partition.Partition{l.zero}
		seen.Set(l.zero, 0)
		add := func(p *partition.Partition) error {
			if _, ok := seen.Get(p); ok {
				return nil
			}
			if l.opts.MaxUniverse > 0 && len(elems) >= l.opts.MaxUniverse {
				return fmt.Errorf("congruence: Universe: more than %d congruences: %w", l.opts.MaxUniverse, ErrUniverseTooLarge)
			}
			seen.Set(p, len(elems))
			elems = append(elems, p)

			return nil
		}
		for _, p := range ps.elems {
			if err = add(p); err != nil {
				return nil, err
			}
		}
		for k := 0; k < len(elems); k++ {
			if err = l.canceled(); err != nil {
				return nil, fmt.Errorf("congruence: Universe: %w", err)
			}
			for _, p := range ps.elems {
				j, _ := elems[k].Join(p)
				if err = add(j); err != nil {
					return nil, err
				}
			}
		}

		slices.SortFunc(elems, func(a, b *partition.Partition) int { return a.Compare(b) })
		index := immutable.NewMapBuilder[*partition.Partition, int](partition.Hasher{})
		for i, p := range elems {
			index.Set(p, i)
		}
		l.log.Debug("congruence: universe closed", "principals", len(ps.elems), "congruences", len(elems))

		return &universe{elems: elems, index: index.Map()}, nil
	})
}
