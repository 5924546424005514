// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// maxTableEntries bounds n^arity for a single operation table.
const maxTableEntries = 1 << 24

// Table is a finite algebra with fully tabulated operations.
// A Table is immutable after New returns and safe for concurrent use.
type Table struct {
	name   string
	n      int
	labels []string // nil means decimal indices
	ops    []Operation
}

// New validates ops against the universe {0..n-1} and returns a Table.
// Operation tables are copied; callers may reuse their slices.
//
// Steps:
//  1. Reject n < 1.
//  2. For each operation: reject negative arity, check len(Table) == n^Arity
//     and every entry in [0, n).
//  3. NFC-normalise labels and symbols; labels must number n and be unique.
//
// Complexity: O(Σ n^arity) time and memory.
func New(n int, ops []Operation, opts ...Option) (*Table, error) {
	// 1. Universe.
	if n < 1 {
		return nil, fmt.Errorf("algebra: New(n=%d): %w", n, ErrEmptyUniverse)
	}
	o := resolve(opts)

	// 2. Operations.
	t := &Table{name: o.name, n: n, ops: make([]Operation, len(ops))}
	for i, op := range ops {
		if op.Arity < 0 {
			return nil, fmt.Errorf("algebra: New: operation %d (%q) arity %d: %w", i, op.Symbol, op.Arity, ErrArityMismatch)
		}
		size, ok := tableSize(n, op.Arity)
		if !ok || len(op.Table) != size {
			return nil, fmt.Errorf("algebra: New: operation %d (%q) has %d entries, want %d^%d: %w",
				i, op.Symbol, len(op.Table), n, op.Arity, ErrInvalidTable)
		}
		for k, v := range op.Table {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("algebra: New: operation %d (%q) entry %d = %d: %w", i, op.Symbol, k, v, ErrInvalidTable)
			}
		}
		t.ops[i] = Operation{
			Symbol: norm.NFC.String(op.Symbol),
			Arity:  op.Arity,
			Table:  append([]int(nil), op.Table...),
		}
	}

	// 3. Labels.
	if o.labels != nil {
		if len(o.labels) != n {
			return nil, fmt.Errorf("algebra: New: %d labels for %d elements: %w", len(o.labels), n, ErrInvalidLabels)
		}
		seen := make(map[string]bool, n)
		t.labels = make([]string, n)
		for i, l := range o.labels {
			l = norm.NFC.String(l)
			if l == "" || seen[l] {
				return nil, fmt.Errorf("algebra: New: label %d %q empty or repeated: %w", i, l, ErrInvalidLabels)
			}
			seen[l] = true
			t.labels[i] = l
		}
	}

	return t, nil
}

// tableSize returns n^arity and false when it exceeds maxTableEntries.
func tableSize(n, arity int) (int, bool) {
	size := 1
	for k := 0; k < arity; k++ {
		size *= n
		if size > maxTableEntries {
			return 0, false
		}
	}

	return size, true
}

// Name returns the display name, possibly empty.
func (t *Table) Name() string { return t.name }

// Cardinality returns the number of elements.
func (t *Table) Cardinality() int { return t.n }

// OperationCount returns the number of basic operations.
func (t *Table) OperationCount() int { return len(t.ops) }

// Arity returns the arity of op, or -1 if op is unknown.
func (t *Table) Arity(op int) int {
	if op < 0 || op >= len(t.ops) {
		return -1
	}

	return t.ops[op].Arity
}

// Evaluate applies operation op to args.
// Complexity: O(arity).
func (t *Table) Evaluate(op int, args []int) (int, error) {
	if op < 0 || op >= len(t.ops) {
		return 0, fmt.Errorf("algebra: Evaluate(op=%d): %w", op, ErrUnknownOperation)
	}
	o := &t.ops[op]
	if len(args) != o.Arity {
		return 0, fmt.Errorf("algebra: Evaluate(%q): %d args for arity %d: %w", o.Symbol, len(args), o.Arity, ErrArityMismatch)
	}
	idx := 0
	for _, a := range args {
		if a < 0 || a >= t.n {
			return 0, fmt.Errorf("algebra: Evaluate(%q): argument %d (n=%d): %w", o.Symbol, a, t.n, ErrIndexOutOfRange)
		}
		idx = idx*t.n + a
	}

	return o.Table[idx], nil
}

// Operations returns a deep copy of the operations.
func (t *Table) Operations() []Operation {
	out := make([]Operation, len(t.ops))
	for i, op := range t.ops {
		out[i] = Operation{Symbol: op.Symbol, Arity: op.Arity, Table: append([]int(nil), op.Table...)}
	}

	return out
}

// Symbol returns the symbol of op, or "" if op is unknown.
func (t *Table) Symbol(op int) string {
	if op < 0 || op >= len(t.ops) {
		return ""
	}

	return t.ops[op].Symbol
}

// Label returns the display label of element i: the configured label, or
// the decimal index when none was set or i is out of range.
func (t *Table) Label(i int) string {
	if t.labels == nil || i < 0 || i >= len(t.labels) {
		return strconv.Itoa(i)
	}

	return t.labels[i]
}

// Labels returns a copy of the configured labels, or nil.
func (t *Table) Labels() []string {
	if t.labels == nil {
		return nil
	}

	return append([]string(nil), t.labels...)
}

// forEachTuple calls fn for every k-tuple over {0..n-1} in Horner order;
// idx is the tuple's table position. args is reused between calls.
func forEachTuple(n, k int, fn func(idx int, args []int) error) error {
	args := make([]int, k)
	size, ok := tableSize(n, k)
	if !ok {
		return fmt.Errorf("algebra: %d^%d entries: %w", n, k, ErrInvalidTable)
	}
	for idx := 0; idx < size; idx++ {
		if err := fn(idx, args); err != nil {
			return err
		}
		// odometer increment, last position fastest
		for p := k - 1; p >= 0; p-- {
			args[p]++
			if args[p] < n {
				break
			}
			args[p] = 0
		}
	}

	return nil
}

// tabulate builds the table of a k-ary function over {0..n-1}.
func tabulate(n, k int, fn func(args []int) (int, error)) ([]int, error) {
	size, ok := tableSize(n, k)
	if !ok {
		return nil, fmt.Errorf("algebra: %d^%d entries: %w", n, k, ErrInvalidTable)
	}
	table := make([]int, size)
	err := forEachTuple(n, k, func(idx int, args []int) error {
		v, err := fn(args)
		if err != nil {
			return err
		}
		table[idx] = v

		return nil
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}
