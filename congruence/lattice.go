// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"

	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/partition"
)

// New builds the lattice of alg. Nothing is computed until the first query.
//
// Errors: ErrNilAlgebra, ErrEmptyAlgebra, ErrOptionViolation, and
// ErrMalformedAlgebra for a negative operation arity.
func New(alg algebra.Algebra, opts ...Option) (*Lattice, error) {
	if alg == nil {
		return nil, ErrNilAlgebra
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, o.err)
	}

	n := alg.Cardinality()
	if n < 1 {
		return nil, fmt.Errorf("congruence: New: cardinality %d: %w", n, ErrEmptyAlgebra)
	}
	ops := alg.OperationCount()
	if ops < 0 {
		return nil, fmt.Errorf("congruence: New: %d operations: %w", ops, ErrMalformedAlgebra)
	}
	l := &Lattice{
		alg:   alg,
		n:     n,
		arity: make([]int, ops),
		opts:  o,
		log:   o.Logger,
		zero:  partition.Zero(n),
		one:   partition.One(n),
	}
	for op := range l.arity {
		k := alg.Arity(op)
		if k < 0 {
			return nil, fmt.Errorf("congruence: New: operation %d has arity %d: %w", op, k, ErrMalformedAlgebra)
		}
		l.arity[op] = k
		if k > l.maxArity {
			l.maxArity = k
		}
	}

	return l, nil
}

// Algebra returns the underlying algebra.
func (l *Lattice) Algebra() algebra.Algebra { return l.alg }

// Size returns the cardinality n of the algebra.
func (l *Lattice) Size() int { return l.n }

// Zero returns the identity congruence (n singleton blocks).
func (l *Lattice) Zero() *partition.Partition { return l.zero }

// One returns the total congruence (a single block).
func (l *Lattice) One() *partition.Partition { return l.one }

// Join returns the finest common coarsening of a and b. Join, Meet and Leq
// are plain partition operations: any partition of the right size is
// accepted, congruence or not. Use Contains or Index to test membership.
// The join of two congruences is always a congruence.
func (l *Lattice) Join(a, b *partition.Partition) (*partition.Partition, error) {
	if err := l.checkAll("Join", a, b); err != nil {
		return nil, err
	}

	return a.Join(b)
}

// Meet returns the coarsest common refinement of a and b.
func (l *Lattice) Meet(a, b *partition.Partition) (*partition.Partition, error) {
	if err := l.checkAll("Meet", a, b); err != nil {
		return nil, err
	}

	return a.Meet(b)
}

// Leq reports whether a refines b.
func (l *Lattice) Leq(a, b *partition.Partition) (bool, error) {
	if err := l.checkAll("Leq", a, b); err != nil {
		return false, err
	}

	return a.Leq(b)
}

// checkIndex rejects element indices outside [0, n).
func (l *Lattice) checkIndex(op string, i int) error {
	if i < 0 || i >= l.n {
		return fmt.Errorf("congruence: %s: index %d (n=%d): %w", op, i, l.n, ErrIndexOutOfRange)
	}

	return nil
}

// checkAll rejects nil partitions and partitions of the wrong size.
func (l *Lattice) checkAll(op string, ps ...*partition.Partition) error {
	for _, p := range ps {
		if p == nil {
			return fmt.Errorf("congruence: %s: nil partition: %w", op, ErrSizeMismatch)
		}
		if p.Size() != l.n {
			return fmt.Errorf("congruence: %s: size %d (n=%d): %w", op, p.Size(), l.n, ErrSizeMismatch)
		}
	}

	return nil
}

// canceled reports the context error, if any.
func (l *Lattice) canceled() error {
	select {
	case <-l.opts.Ctx.Done():
		return l.opts.Ctx.Err()
	default:
		return nil
	}
}
