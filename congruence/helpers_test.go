// SPDX-License-Identifier: MIT

package congruence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conlat/algebra"
	"github.com/katalvlaran/conlat/congruence"
	"github.com/katalvlaran/conlat/partition"
)

// lattice returns a function building the congruence lattice of a
// constructor's result, so that lattice(t)(algebra.Set(3)) reads inline.
func lattice(t testing.TB, opts ...congruence.Option) func(*algebra.Table, error) *congruence.Lattice {
	return func(alg *algebra.Table, err error) *congruence.Lattice {
		t.Helper()
		require.NoError(t, err)
		l, err := congruence.New(alg, opts...)
		require.NoError(t, err)

		return l
	}
}

func mustParse(t testing.TB, s string) *partition.Partition {
	t.Helper()
	p, err := partition.Parse(s)
	require.NoError(t, err)

	return p
}

// strs renders partitions in bar notation.
func strs(ps []*partition.Partition) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

// fakeAlgebra is a configurable Algebra for error paths.
type fakeAlgebra struct {
	n     int
	arity []int
	eval  func(op int, args []int) (int, error)
}

func (f *fakeAlgebra) Cardinality() int    { return f.n }
func (f *fakeAlgebra) OperationCount() int { return len(f.arity) }
func (f *fakeAlgebra) Arity(op int) int {
	if op < 0 || op >= len(f.arity) {
		return -1
	}
	return f.arity[op]
}
func (f *fakeAlgebra) Evaluate(op int, args []int) (int, error) { return f.eval(op, args) }
