// SPDX-License-Identifier: MIT

package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conlat/algebra"
)

// z3Ops returns the tables of Z_3 addition and negation.
func z3Ops() []algebra.Operation {
	return []algebra.Operation{
		{Symbol: "+", Arity: 2, Table: []int{0, 1, 2, 1, 2, 0, 2, 0, 1}},
		{Symbol: "-", Arity: 1, Table: []int{0, 2, 1}},
	}
}

// TestNew_Valid checks the accessors of a valid Table.
func TestNew_Valid(t *testing.T) {
	tb, err := algebra.New(3, z3Ops(), algebra.WithName("z3"), algebra.WithLabels("a", "b", "c"))
	require.NoError(t, err)

	assert.Equal(t, "z3", tb.Name())
	assert.Equal(t, 3, tb.Cardinality())
	assert.Equal(t, 2, tb.OperationCount())
	assert.Equal(t, 2, tb.Arity(0))
	assert.Equal(t, 1, tb.Arity(1))
	assert.Equal(t, -1, tb.Arity(2))
	assert.Equal(t, "+", tb.Symbol(0))
	assert.Equal(t, "", tb.Symbol(5))
	assert.Equal(t, "b", tb.Label(1))
	assert.Equal(t, "7", tb.Label(7))
	assert.Equal(t, []string{"a", "b", "c"}, tb.Labels())

	v, err := tb.Evaluate(0, []int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = tb.Evaluate(1, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

// TestNew_CopiesTables verifies that caller slices are not aliased.
func TestNew_CopiesTables(t *testing.T) {
	ops := z3Ops()
	tb, err := algebra.New(3, ops)
	require.NoError(t, err)
	ops[0].Table[0] = 2

	v, err := tb.Evaluate(0, []int{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	got := tb.Operations()
	got[1].Table[0] = 1
	v, err = tb.Evaluate(1, []int{0})
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.Nil(t, tb.Labels())
}

// TestNew_Errors covers every validation branch.
func TestNew_Errors(t *testing.T) {
	_, err := algebra.New(0, nil)
	assert.ErrorIs(t, err, algebra.ErrEmptyUniverse)

	_, err = algebra.New(2, []algebra.Operation{{Symbol: "f", Arity: -1}})
	assert.ErrorIs(t, err, algebra.ErrArityMismatch)

	_, err = algebra.New(2, []algebra.Operation{{Symbol: "f", Arity: 2, Table: []int{0, 1, 1}}})
	assert.ErrorIs(t, err, algebra.ErrInvalidTable)

	_, err = algebra.New(2, []algebra.Operation{{Symbol: "f", Arity: 1, Table: []int{0, 2}}})
	assert.ErrorIs(t, err, algebra.ErrInvalidTable)

	_, err = algebra.New(2, nil, algebra.WithLabels("x"))
	assert.ErrorIs(t, err, algebra.ErrInvalidLabels)

	// "é" precomposed and decomposed collide after NFC normalisation.
	_, err = algebra.New(2, nil, algebra.WithLabels("\u00e9", "e\u0301"))
	assert.ErrorIs(t, err, algebra.ErrInvalidLabels)
}

// TestEvaluate_Errors covers malformed evaluation requests.
func TestEvaluate_Errors(t *testing.T) {
	tb, err := algebra.New(3, z3Ops())
	require.NoError(t, err)

	_, err = tb.Evaluate(2, []int{0})
	assert.ErrorIs(t, err, algebra.ErrUnknownOperation)
	_, err = tb.Evaluate(-1, nil)
	assert.ErrorIs(t, err, algebra.ErrUnknownOperation)
	_, err = tb.Evaluate(0, []int{0})
	assert.ErrorIs(t, err, algebra.ErrArityMismatch)
	_, err = tb.Evaluate(0, []int{0, 3})
	assert.ErrorIs(t, err, algebra.ErrIndexOutOfRange)
}
