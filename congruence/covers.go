// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"

	"github.com/katalvlaran/conlat/hasse"
	"github.com/katalvlaran/conlat/partition"
)

// Hasse returns the covering digraph of the universe. Vertex i is
// Universe()[i]; edges point from a congruence to its upper covers.
func (l *Lattice) Hasse() (*hasse.Diagram, error) {
	return fill(l, keyHasse, func() (*hasse.Diagram, error) {
		t, err := l.tables()
		if err != nil {
			return nil, err
		}
		d, err := hasse.Build(t.size, t.leq, hasse.WithContext(l.opts.Ctx))
		if err != nil {
			return nil, fmt.Errorf("congruence: Hasse: %w", err)
		}

		return d, nil
	})
}

// pick maps diagram vertices back to congruences.
func (l *Lattice) pick(vs []int) ([]*partition.Partition, error) {
	u, err := l.universe()
	if err != nil {
		return nil, err
	}
	out := make([]*partition.Partition, len(vs))
	for i, v := range vs {
		out[i] = u.elems[v]
	}

	return out, nil
}

// Atoms returns the congruences covering Zero, in universe order.
func (l *Lattice) Atoms() ([]*partition.Partition, error) {
	d, err := l.Hasse()
	if err != nil {
		return nil, err
	}
	up, _ := d.Up(0)

	return l.pick(up)
}

// Coatoms returns the congruences covered by One, in universe order.
func (l *Lattice) Coatoms() ([]*partition.Partition, error) {
	d, err := l.Hasse()
	if err != nil {
		return nil, err
	}
	down, _ := d.Down(d.Len() - 1)

	return l.pick(down)
}

// UpperCovers returns the minimal congruences strictly above theta.
func (l *Lattice) UpperCovers(theta *partition.Partition) ([]*partition.Partition, error) {
	i, d, err := l.locate("UpperCovers", theta)
	if err != nil {
		return nil, err
	}
	up, _ := d.Up(i)

	return l.pick(up)
}

// LowerCovers returns the maximal congruences strictly below theta.
func (l *Lattice) LowerCovers(theta *partition.Partition) ([]*partition.Partition, error) {
	i, d, err := l.locate("LowerCovers", theta)
	if err != nil {
		return nil, err
	}
	down, _ := d.Down(i)

	return l.pick(down)
}

// locate returns the universe position of theta together with the diagram.
func (l *Lattice) locate(op string, theta *partition.Partition) (int, *hasse.Diagram, error) {
	if err := l.checkAll(op, theta); err != nil {
		return 0, nil, err
	}
	u, err := l.universe()
	if err != nil {
		return 0, nil, err
	}
	i, err := u.position(op, theta)
	if err != nil {
		return 0, nil, err
	}
	d, err := l.Hasse()
	if err != nil {
		return 0, nil, err
	}

	return i, d, nil
}

// Height returns the length of the longest chain from Zero to One.
func (l *Lattice) Height() (int, error) {
	d, err := l.Hasse()
	if err != nil {
		return 0, err
	}

	return d.Height(), nil
}

// FindPrincipalChain returns a maximal chain Zero = θ0 ⋖ θ1 ⋖ … ⋖ θk = One.
// Each step takes the first upper cover in universe order; every step
// θi ⋖ θi+1 equals θi ∨ Cg(a, b) for any pair (a, b) merged by θi+1 and
// not by θi.
func (l *Lattice) FindPrincipalChain() ([]*partition.Partition, error) {
	d, err := l.Hasse()
	if err != nil {
		return nil, err
	}
	vs, err := d.MaximalChain(0, d.Len()-1)
	if err != nil {
		return nil, fmt.Errorf("congruence: FindPrincipalChain: %w", err)
	}

	return l.pick(vs)
}

// ShortestChain returns a maximal chain from Zero to One with the fewest
// cover steps.
func (l *Lattice) ShortestChain() ([]*partition.Partition, error) {
	d, err := l.Hasse()
	if err != nil {
		return nil, err
	}
	vs, err := d.ShortestChain(0, d.Len()-1)
	if err != nil {
		return nil, fmt.Errorf("congruence: ShortestChain: %w", err)
	}

	return l.pick(vs)
}
