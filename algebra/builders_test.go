// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conlat/algebra"
)

// eval evaluates or fails the test.
func eval(t *testing.T, a algebra.Algebra, op int, args ...int) int {
	t.Helper()
	v, err := a.Evaluate(op, args)
	require.NoError(t, err)

	return v
}

// TestSet verifies the operation-free algebra.
func TestSet(t *testing.T) {
	s, err := algebra.Set(4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Cardinality())
	assert.Equal(t, 0, s.OperationCount())
	assert.Equal(t, "set4", s.Name())

	s, err = algebra.Set(2, algebra.WithName("pair"))
	require.NoError(t, err)
	assert.Equal(t, "pair", s.Name())

	_, err = algebra.Set(0)
	assert.ErrorIs(t, err, algebra.ErrEmptyUniverse)
}

// TestCyclicGroup verifies Z_5 arithmetic.
func TestCyclicGroup(t *testing.T) {
	z, err := algebra.CyclicGroup(5)
	require.NoError(t, err)
	assert.Equal(t, "Z5", z.Name())
	assert.Equal(t, 3, z.OperationCount())
	assert.Equal(t, 0, z.Arity(2))
	assert.Equal(t, 1, eval(t, z, 0, 3, 3))
	assert.Equal(t, 2, eval(t, z, 1, 3))
	assert.Equal(t, 0, eval(t, z, 1, 0))
	assert.Equal(t, 0, eval(t, z, 2))

	_, err = algebra.CyclicGroup(0)
	assert.ErrorIs(t, err, algebra.ErrEmptyUniverse)
}

// TestChain verifies min/max tables.
func TestChain(t *testing.T) {
	c, err := algebra.Chain(4)
	require.NoError(t, err)
	assert.Equal(t, 1, eval(t, c, 0, 3, 1))
	assert.Equal(t, 3, eval(t, c, 1, 3, 1))

	_, err = algebra.Chain(-2)
	assert.ErrorIs(t, err, algebra.ErrEmptyUniverse)
}

// TestUnary verifies tabulation and range checking of f.
func TestUnary(t *testing.T) {
	u, err := algebra.Unary(4, func(x int) int { return (x + 1) % 4 })
	require.NoError(t, err)
	assert.Equal(t, 0, eval(t, u, 0, 3))

	_, err = algebra.Unary(3, func(x int) int { return x + 1 })
	assert.ErrorIs(t, err, algebra.ErrInvalidTable)
	_, err = algebra.Unary(3, nil)
	assert.ErrorIs(t, err, algebra.ErrInvalidTable)
	_, err = algebra.Unary(0, func(x int) int { return x })
	assert.ErrorIs(t, err, algebra.ErrEmptyUniverse)
}

// TestSubsets verifies the Boolean lattice on bitmasks.
func TestSubsets(t *testing.T) {
	b, err := algebra.Subsets(3)
	require.NoError(t, err)
	assert.Equal(t, 8, b.Cardinality())
	assert.Equal(t, "{}", b.Label(0))
	assert.Equal(t, "{0,2}", b.Label(5))
	assert.Equal(t, 1, eval(t, b, 0, 5, 3))
	assert.Equal(t, 7, eval(t, b, 1, 5, 3))

	_, err = algebra.Subsets(11)
	assert.ErrorIs(t, err, algebra.ErrEmptyUniverse)
}

// TestProduct verifies componentwise evaluation and signature checks.
func TestProduct(t *testing.T) {
	z2, err := algebra.CyclicGroup(2)
	require.NoError(t, err)
	z3, err := algebra.CyclicGroup(3)
	require.NoError(t, err)

	p, err := algebra.Product(z2, z3)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Cardinality())
	assert.Equal(t, "Z2xZ3", p.Name())
	assert.Equal(t, "(1,2)", p.Label(5))
	assert.Equal(t, "+", p.Symbol(0))

	// (1,2) + (1,2) = (0,1) → index 1
	assert.Equal(t, 1, eval(t, p, 0, 5, 5))
	// -(1,1) = (1,2) → index 5
	assert.Equal(t, 5, eval(t, p, 1, 4))

	c2, err := algebra.Chain(2)
	require.NoError(t, err)
	_, err = algebra.Product(z2, c2)
	assert.ErrorIs(t, err, algebra.ErrSignatureMismatch)

	s, err := algebra.Set(2)
	require.NoError(t, err)
	u, err := algebra.Unary(2, func(x int) int { return x })
	require.NoError(t, err)
	_, err = algebra.Product(s, u)
	assert.ErrorIs(t, err, algebra.ErrSignatureMismatch)
}
