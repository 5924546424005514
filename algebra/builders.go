// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// maxSubsetsRank bounds Subsets(k); 2^k elements with binary tables.
const maxSubsetsRank = 10

// Set returns the n-element algebra with no operations. Its congruences are
// all partitions of {0..n-1}.
func Set(n int, opts ...Option) (*Table, error) {
	return New(n, nil, withDefaultName("set"+strconv.Itoa(n), opts)...)
}

// CyclicGroup returns Z_n as a group: binary "+", unary "-" and the
// constant "0". Its congruences correspond to the subgroups of Z_n, i.e. to
// the divisors of n.
func CyclicGroup(n int, opts ...Option) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("algebra: CyclicGroup(%d): %w", n, ErrEmptyUniverse)
	}
	add, _ := tabulate(n, 2, func(a []int) (int, error) { return (a[0] + a[1]) % n, nil })
	neg, _ := tabulate(n, 1, func(a []int) (int, error) { return (n - a[0]) % n, nil })
	ops := []Operation{
		{Symbol: "+", Arity: 2, Table: add},
		{Symbol: "-", Arity: 1, Table: neg},
		{Symbol: "0", Arity: 0, Table: []int{0}},
	}

	return New(n, ops, withDefaultName("Z"+strconv.Itoa(n), opts)...)
}

// Chain returns the n-element chain 0 < 1 < ... < n-1 as a lattice with
// "meet" (min) and "join" (max). Its congruences are the partitions into
// intervals, 2^(n-1) of them.
func Chain(n int, opts ...Option) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("algebra: Chain(%d): %w", n, ErrEmptyUniverse)
	}
	meet, _ := tabulate(n, 2, func(a []int) (int, error) { return min(a[0], a[1]), nil })
	join, _ := tabulate(n, 2, func(a []int) (int, error) { return max(a[0], a[1]), nil })
	ops := []Operation{
		{Symbol: "meet", Arity: 2, Table: meet},
		{Symbol: "join", Arity: 2, Table: join},
	}

	return New(n, ops, withDefaultName("C"+strconv.Itoa(n), opts)...)
}

// Unary returns the n-element algebra with the single unary operation f.
// f must map {0..n-1} into itself.
func Unary(n int, f func(int) int, opts ...Option) (*Table, error) {
	if n < 1 {
		return nil, fmt.Errorf("algebra: Unary(%d): %w", n, ErrEmptyUniverse)
	}
	if f == nil {
		return nil, fmt.Errorf("algebra: Unary: nil function: %w", ErrInvalidTable)
	}
	table, _ := tabulate(n, 1, func(a []int) (int, error) { return f(a[0]), nil })

	// New rejects results outside [0, n).
	return New(n, []Operation{{Symbol: "f", Arity: 1, Table: table}}, withDefaultName("unary"+strconv.Itoa(n), opts)...)
}

// Subsets returns the Boolean lattice of all subsets of a k-element set,
// elements encoded as bitmasks, with "meet" (intersection) and "join"
// (union). Labels use set notation such as "{0,2}".
func Subsets(k int, opts ...Option) (*Table, error) {
	if k < 0 || k > maxSubsetsRank {
		return nil, fmt.Errorf("algebra: Subsets(%d): rank outside [0, %d]: %w", k, maxSubsetsRank, ErrEmptyUniverse)
	}
	n := 1 << k
	meet, _ := tabulate(n, 2, func(a []int) (int, error) { return a[0] & a[1], nil })
	join, _ := tabulate(n, 2, func(a []int) (int, error) { return a[0] | a[1], nil })
	labels := make([]string, n)
	for m := 0; m < n; m++ {
		parts := make([]string, 0, bits.OnesCount(uint(m)))
		for b := 0; b < k; b++ {
			if m&(1<<b) != 0 {
				parts = append(parts, strconv.Itoa(b))
			}
		}
		labels[m] = "{" + strings.Join(parts, ",") + "}"
	}
	ops := []Operation{
		{Symbol: "meet", Arity: 2, Table: meet},
		{Symbol: "join", Arity: 2, Table: join},
	}
	opts = append([]Option{WithLabels(labels...)}, opts...)

	return New(n, ops, withDefaultName("B"+strconv.Itoa(k), opts)...)
}

// Product returns the direct product a × b. Element (i, j) has index
// i·|b| + j and operations act componentwise. Both factors must have the
// same number of operations with pairwise equal arities.
//
// Errors: ErrSignatureMismatch, and any evaluation error of a factor.
// Complexity: O(Σ (|a|·|b|)^arity) evaluations.
func Product(a, b Algebra, opts ...Option) (*Table, error) {
	if a.OperationCount() != b.OperationCount() {
		return nil, fmt.Errorf("algebra: Product: %d vs %d operations: %w", a.OperationCount(), b.OperationCount(), ErrSignatureMismatch)
	}
	na, nb := a.Cardinality(), b.Cardinality()
	n := na * nb
	ops := make([]Operation, a.OperationCount())
	for op := range ops {
		k := a.Arity(op)
		if k != b.Arity(op) {
			return nil, fmt.Errorf("algebra: Product: operation %d arity %d vs %d: %w", op, k, b.Arity(op), ErrSignatureMismatch)
		}
		left, right := make([]int, k), make([]int, k)
		table, err := tabulate(n, k, func(args []int) (int, error) {
			for p, x := range args {
				left[p], right[p] = x/nb, x%nb
			}
			u, err := a.Evaluate(op, left)
			if err != nil {
				return 0, err
			}
			v, err := b.Evaluate(op, right)
			if err != nil {
				return 0, err
			}

			return u*nb + v, nil
		})
		if err != nil {
			return nil, fmt.Errorf("algebra: Product: operation %d: %w", op, err)
		}
		ops[op] = Operation{Symbol: symbolOf(a, op), Arity: k, Table: table}
	}

	labels := make([]string, n)
	for x := range labels {
		labels[x] = "(" + labelOf(a, x/nb) + "," + labelOf(b, x%nb) + ")"
	}
	opts = append([]Option{WithLabels(labels...), WithName(nameOf(a) + "x" + nameOf(b))}, opts...)

	return New(n, ops, opts...)
}

// withDefaultName prepends a default name so that a caller's WithName wins.
func withDefaultName(name string, opts []Option) []Option {
	return append([]Option{WithName(name)}, opts...)
}

// labelOf, symbolOf and nameOf use the display hooks of a Table when the
// Algebra carries them.
func labelOf(a Algebra, i int) string {
	if l, ok := a.(interface{ Label(int) string }); ok {
		return l.Label(i)
	}

	return strconv.Itoa(i)
}

func symbolOf(a Algebra, op int) string {
	if s, ok := a.(interface{ Symbol(int) string }); ok {
		return s.Symbol(op)
	}

	return "f" + strconv.Itoa(op)
}

func nameOf(a Algebra) string {
	if s, ok := a.(interface{ Name() string }); ok && s.Name() != "" {
		return s.Name()
	}

	return "A"
}
