// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Func is a basic operation written over native elements of type T.
type Func[T any] struct {
	Symbol string
	Arity  int
	Fn     func(args ...T) T
}

// Indexed adapts an algebra over native elements of type T to the
// index-based Algebra interface. Element i is Elements()[i]; every Func is
// tabulated once at construction so Evaluate never calls back into user
// code.
type Indexed[T comparable] struct {
	*Table
	elems []T
	index map[T]int
}

// NewIndexed tabulates funcs over elems. Labels default to fmt.Sprint of
// each element unless WithLabels is given; when those derived labels are
// empty or collide after NFC normalisation the algebra falls back to
// decimal index labels. Explicit labels are still checked strictly.
//
// Errors: ErrEmptyUniverse, ErrDuplicateElement, ErrNotClosed, and any
// error of New.
// Complexity: O(Σ n^arity) calls to the Funcs.
func NewIndexed[T comparable](elems []T, funcs []Func[T], opts ...Option) (*Indexed[T], error) {
	n := len(elems)
	if n == 0 {
		return nil, fmt.Errorf("algebra: NewIndexed: %w", ErrEmptyUniverse)
	}
	index := make(map[T]int, n)
	for i, e := range elems {
		if _, dup := index[e]; dup {
			return nil, fmt.Errorf("algebra: NewIndexed: element %v at %d: %w", e, i, ErrDuplicateElement)
		}
		index[e] = i
	}

	ops := make([]Operation, len(funcs))
	for fi, f := range funcs {
		if f.Arity < 0 || f.Fn == nil {
			return nil, fmt.Errorf("algebra: NewIndexed: func %d (%q): %w", fi, f.Symbol, ErrArityMismatch)
		}
		native := make([]T, f.Arity)
		table, err := tabulate(n, f.Arity, func(args []int) (int, error) {
			for k, a := range args {
				native[k] = elems[a]
			}
			v := f.Fn(native...)
			r, ok := index[v]
			if !ok {
				return 0, fmt.Errorf("algebra: NewIndexed: %q%v = %v: %w", f.Symbol, native, v, ErrNotClosed)
			}

			return r, nil
		})
		if err != nil {
			return nil, err
		}
		ops[fi] = Operation{Symbol: f.Symbol, Arity: f.Arity, Table: table}
	}

	o := resolve(opts)
	if o.labels == nil {
		if labels := derivedLabels(elems); labels != nil {
			opts = append(opts, WithLabels(labels...))
		}
	}
	t, err := New(n, ops, opts...)
	if err != nil {
		return nil, err
	}

	return &Indexed[T]{Table: t, elems: append([]T(nil), elems...), index: index}, nil
}

// derivedLabels renders elems with fmt.Sprint, or returns nil when two
// renderings normalise to the same label or one is empty.
func derivedLabels[T comparable](elems []T) []string {
	labels := make([]string, len(elems))
	seen := make(map[string]struct{}, len(elems))
	for i, e := range elems {
		l := norm.NFC.String(fmt.Sprint(e))
		if _, dup := seen[l]; dup || l == "" {
			return nil
		}
		seen[l] = struct{}{}
		labels[i] = l
	}

	return labels
}

// IndexOf returns the index of e and whether e belongs to the universe.
func (a *Indexed[T]) IndexOf(e T) (int, bool) {
	i, ok := a.index[e]

	return i, ok
}

// ElementAt returns the native element with index i.
func (a *Indexed[T]) ElementAt(i int) (T, error) {
	if i < 0 || i >= len(a.elems) {
		var zero T

		return zero, fmt.Errorf("algebra: ElementAt(%d) (n=%d): %w", i, len(a.elems), ErrIndexOutOfRange)
	}

	return a.elems[i], nil
}

// Elements returns a copy of the universe in index order.
func (a *Indexed[T]) Elements() []T {
	return append([]T(nil), a.elems...)
}
