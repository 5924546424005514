// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"

	"github.com/katalvlaran/conlat/partition"
)

// IsDistributive reports whether x∧(y∨z) = (x∧y)∨(x∧z) for all x, y, z in
// the universe. The search stops at the first counterexample.
func (l *Lattice) IsDistributive() (bool, error) {
	return fill(l, keyDistributive, func() (bool, error) {
		t, err := l.tables()
		if err != nil {
			return false, err
		}
		for x := 0; x < t.size; x++ {
			if err = l.canceled(); err != nil {
				return false, fmt.Errorf("congruence: IsDistributive: %w", err)
			}
			for y := 0; y < t.size; y++ {
				xy := t.meetOf(x, y)
				for z := y + 1; z < t.size; z++ {
					lhs := t.meetOf(x, t.joinOf(y, z))
					rhs := t.joinOf(xy, t.meetOf(x, z))
					if lhs != rhs {
						l.log.Debug("congruence: distributivity fails",
							"x", x, "y", y, "z", z)
						return false, nil
					}
				}
			}
		}

		return true, nil
	})
}

// IsModular reports whether x∨(y∧z) = (x∨y)∧z whenever x ≤ z.
func (l *Lattice) IsModular() (bool, error) {
	return fill(l, keyModular, func() (bool, error) {
		t, err := l.tables()
		if err != nil {
			return false, err
		}
		for x := 0; x < t.size; x++ {
			if err = l.canceled(); err != nil {
				return false, fmt.Errorf("congruence: IsModular: %w", err)
			}
			for z := x + 1; z < t.size; z++ {
				if !t.leq(x, z) {
					continue
				}
				for y := 0; y < t.size; y++ {
					if t.joinOf(x, t.meetOf(y, z)) != t.meetOf(t.joinOf(x, y), z) {
						return false, nil
					}
				}
			}
		}

		return true, nil
	})
}

// IsSimple reports whether the only congruences are Zero and One, with
// Zero ≠ One.
func (l *Lattice) IsSimple() (bool, error) {
	c, err := l.Cardinality()
	if err != nil {
		return false, err
	}

	return c == 2, nil
}

// Complements returns the congruences c with theta ∧ c = Zero and
// theta ∨ c = One, in universe order.
func (l *Lattice) Complements(theta *partition.Partition) ([]*partition.Partition, error) {
	if err := l.checkAll("Complements", theta); err != nil {
		return nil, err
	}
	u, err := l.universe()
	if err != nil {
		return nil, err
	}
	i, err := u.position("Complements", theta)
	if err != nil {
		return nil, err
	}
	t, err := l.tables()
	if err != nil {
		return nil, err
	}
	var out []*partition.Partition
	top := t.size - 1
	for c := 0; c < t.size; c++ {
		if t.meetOf(i, c) == 0 && t.joinOf(i, c) == top {
			out = append(out, u.elems[c])
		}
	}

	return out, nil
}
