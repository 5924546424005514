// SPDX-License-Identifier: MIT

package algebra_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conlat/algebra"
)

const z3YAML = `
name: z3
cardinality: 3
elements: [a, b, c]
operations:
  - symbol: "+"
    arity: 2
    table: [0, 1, 2, 1, 2, 0, 2, 0, 1]
  - symbol: "0"
    arity: 0
    table: [0]
`

// TestDecode reads a well-formed definition.
func TestDecode(t *testing.T) {
	tb, err := algebra.Decode(strings.NewReader(z3YAML))
	require.NoError(t, err)
	assert.Equal(t, "z3", tb.Name())
	assert.Equal(t, 3, tb.Cardinality())
	assert.Equal(t, 2, tb.OperationCount())
	assert.Equal(t, "c", tb.Label(2))

	v, err := tb.Evaluate(0, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

// TestDecode_Invalid covers structural and semantic rejections.
func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "cardinality: 2\ncolour: red\n",
		"zero cardinality": "cardinality: 0\n",
		"label count":      "cardinality: 2\nelements: [a]\n",
		"empty symbol":     "cardinality: 2\noperations:\n  - symbol: \"\"\n    arity: 1\n    table: [0, 1]\n",
		"negative entry":   "cardinality: 2\noperations:\n  - symbol: f\n    arity: 1\n    table: [0, -1]\n",
		"not yaml":         "cardinality: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := algebra.Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, algebra.ErrInvalidDefinition)
		})
	}

	// Structurally fine, but the table is too short for arity 2.
	_, err := algebra.Decode(strings.NewReader("cardinality: 2\noperations:\n  - symbol: f\n    arity: 2\n    table: [0, 1]\n"))
	assert.ErrorIs(t, err, algebra.ErrInvalidTable)
}

// TestEncode_RoundTrip writes a constructed algebra and reads it back.
func TestEncode_RoundTrip(t *testing.T) {
	orig, err := algebra.Subsets(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, algebra.Encode(&buf, orig))
	assert.Contains(t, buf.String(), "table: [0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 2, 2, 0, 1, 2, 3]")

	back, err := algebra.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, orig.Name(), back.Name())
	assert.Equal(t, orig.Labels(), back.Labels())
	assert.Equal(t, orig.Operations(), back.Operations())
}

// TestLoadFile reads a definition from disk.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "z3.yaml")
	require.NoError(t, os.WriteFile(path, []byte(z3YAML), 0o600))

	tb, err := algebra.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "z3", tb.Name())

	_, err = algebra.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
