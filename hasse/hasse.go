// SPDX-License-Identifier: MIT

package hasse

import (
	"fmt"
	"io"
	"strconv"
)

// Build computes the covering relation of the order leq on {0..n-1}.
//
// Steps:
//  1. Apply options.
//  2. For each i, scan j > i in index order. A j above i is an upper cover
//     unless an already accepted cover c of i lies below j; because the
//     index order is a linear extension, any element strictly between i
//     and j is visited before j and leads to such a c.
//  3. Reject leq(j, i) for j > i with ErrNotLinearExtension.
//  4. Ranks follow in index order from the lower covers.
//
// Complexity: O(n² + n·c) leq calls, O(n + E) memory.
func Build(n int, leq func(i, j int) bool, opts ...Option) (*Diagram, error) {
	// 1. Options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n < 0 {
		n = 0
	}
	d := &Diagram{
		n:    n,
		up:   make([][]int, n),
		down: make([][]int, n),
		rank: make([]int, n),
	}

	// 2–3. Covers.
	for i := 0; i < n; i++ {
		select {
		case <-o.Ctx.Done():
			return nil, fmt.Errorf("hasse: Build: %w", o.Ctx.Err())
		default:
		}
		for j := i + 1; j < n; j++ {
			if leq(j, i) {
				return nil, fmt.Errorf("hasse: Build: %d ≤ %d: %w", j, i, ErrNotLinearExtension)
			}
			if !leq(i, j) {
				continue
			}
			covered := false
			for _, c := range d.up[i] {
				if leq(c, j) {
					covered = true
					break
				}
			}
			if !covered {
				d.up[i] = append(d.up[i], j)
				d.down[j] = append(d.down[j], i)
			}
		}
	}

	// 4. Ranks: every lower cover has a smaller index.
	for j := 0; j < n; j++ {
		for _, i := range d.down[j] {
			if d.rank[i]+1 > d.rank[j] {
				d.rank[j] = d.rank[i] + 1
			}
		}
	}

	return d, nil
}

// check reports ErrVertexOutOfRange for i outside [0, n).
func (d *Diagram) check(i int) error {
	if i < 0 || i >= d.n {
		return fmt.Errorf("hasse: vertex %d (n=%d): %w", i, d.n, ErrVertexOutOfRange)
	}

	return nil
}

// Len returns the number of elements.
func (d *Diagram) Len() int { return d.n }

// Up returns the upper covers of i in ascending order.
func (d *Diagram) Up(i int) ([]int, error) {
	if err := d.check(i); err != nil {
		return nil, err
	}

	return append([]int(nil), d.up[i]...), nil
}

// Down returns the lower covers of i in ascending order.
func (d *Diagram) Down(i int) ([]int, error) {
	if err := d.check(i); err != nil {
		return nil, err
	}

	return append([]int(nil), d.down[i]...), nil
}

// Edges returns every covering pair (lower, upper), ordered by lower then upper.
func (d *Diagram) Edges() [][2]int {
	var out [][2]int
	for i, ups := range d.up {
		for _, j := range ups {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

// Rank returns the length of the longest chain from a minimal element to i.
func (d *Diagram) Rank(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}

	return d.rank[i], nil
}

// Height returns the length of the longest chain in the poset.
func (d *Diagram) Height() int {
	h := 0
	for _, r := range d.rank {
		if r > h {
			h = r
		}
	}

	return h
}

// Minimal returns the elements without lower covers.
func (d *Diagram) Minimal() []int {
	var out []int
	for i := range d.down {
		if len(d.down[i]) == 0 {
			out = append(out, i)
		}
	}

	return out
}

// Maximal returns the elements without upper covers.
func (d *Diagram) Maximal() []int {
	var out []int
	for i := range d.up {
		if len(d.up[i]) == 0 {
			out = append(out, i)
		}
	}

	return out
}

// WriteDOT renders the diagram in Graphviz DOT with the bottom at the
// bottom. label names each vertex; nil uses the index.
func (d *Diagram) WriteDOT(w io.Writer, label func(int) string) error {
	if label == nil {
		label = strconv.Itoa
	}
	order, err := d.TopologicalOrder()
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, "digraph hasse {\n  rankdir=BT;"); err != nil {
		return err
	}
	for _, v := range order {
		if _, err = fmt.Fprintf(w, "  n%d [label=%q];\n", v, label(v)); err != nil {
			return err
		}
	}
	for _, e := range d.Edges() {
		if _, err = fmt.Fprintf(w, "  n%d -> n%d;\n", e[0], e[1]); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, "}")

	return err
}
