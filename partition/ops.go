// SPDX-License-Identifier: MIT

package partition

import "fmt"

// Merge returns the partition obtained from p by uniting the blocks of i
// and j. If i and j already share a block, p itself is returned.
//
// Steps:
//  1. Validate both indices.
//  2. Resolve both representatives; equal representatives mean no change.
//  3. Copy the array; the smaller representative keeps the root slot and
//     absorbs the other block's size.
//  4. Re-point every member of the absorbed block directly at the new root.
//
// Complexity: O(n) time and memory.
func (p *Partition) Merge(i, j int) (*Partition, error) {
	// 1. Validate.
	if err := p.check(i); err != nil {
		return nil, err
	}
	if err := p.check(j); err != nil {
		return nil, err
	}

	// 2. Representatives.
	ri, rj := p.root(i), p.root(j)
	if ri == rj {
		return p, nil
	}
	if rj < ri {
		ri, rj = rj, ri
	}

	// 3. New root ri absorbs block rj.
	rep := p.Array()
	rep[ri] += rep[rj]
	rep[rj] = ri

	// 4. Full compression of the absorbed block.
	for k := rj + 1; k < len(rep); k++ {
		if rep[k] == rj {
			rep[k] = ri
		}
	}

	return &Partition{rep: rep, blocks: p.blocks - 1}, nil
}

// Join returns the finest partition coarser than both p and q: the
// transitive closure of the union of the two relations.
// Join is commutative and associative.
//
// Errors: ErrSizeMismatch.
// Complexity: O(n·α(n)).
func (p *Partition) Join(q *Partition) (*Partition, error) {
	if err := p.sameSize(q, "Join"); err != nil {
		return nil, err
	}
	// Fast paths keep shared instances shared.
	if p.IsOne() || q.IsZero() {
		return p, nil
	}
	if q.IsOne() || p.IsZero() {
		return q, nil
	}
	b := NewBuilderFrom(p)
	for i := range q.rep {
		if r := q.rep[i]; r >= 0 {
			b.Union(i, r)
		}
	}

	return b.Partition(), nil
}

// Meet returns the coarsest partition finer than both p and q: its blocks
// are the non-empty intersections of a block of p with a block of q.
//
// Errors: ErrSizeMismatch.
// Complexity: O(n) expected.
func (p *Partition) Meet(q *Partition) (*Partition, error) {
	if err := p.sameSize(q, "Meet"); err != nil {
		return nil, err
	}
	if p.IsZero() || q.IsOne() {
		return p, nil
	}
	if q.IsZero() || p.IsOne() {
		return q, nil
	}
	n := len(p.rep)
	// The pair of representatives identifies the intersection block; the
	// first element seen with a pair labels the whole intersection.
	firstOf := make(map[int]int, n)
	label := make([]int, n)
	for i := 0; i < n; i++ {
		key := p.root(i)*n + q.root(i)
		f, ok := firstOf[key]
		if !ok {
			f = i
			firstOf[key] = i
		}
		label[i] = f
	}

	return fromLabels(label), nil
}

// Leq reports whether p refines q, i.e. every block of p is contained in a
// block of q.
//
// Errors: ErrSizeMismatch.
// Complexity: O(n).
func (p *Partition) Leq(q *Partition) (bool, error) {
	if err := p.sameSize(q, "Leq"); err != nil {
		return false, err
	}

	return p.leq(q), nil
}

// leq is Leq without the size check.
func (p *Partition) leq(q *Partition) bool {
	if p.blocks < q.blocks {
		return false
	}
	for i := range p.rep {
		// i and its p-representative must share a q-block
		if r := p.rep[i]; r >= 0 && q.root(i) != q.root(r) {
			return false
		}
	}

	return true
}

// sameSize reports ErrSizeMismatch when p and q differ in n.
func (p *Partition) sameSize(q *Partition, op string) error {
	if q == nil || len(p.rep) != len(q.rep) {
		m := -1
		if q != nil {
			m = len(q.rep)
		}

		return fmt.Errorf("partition: %s(n=%d, n=%d): %w", op, len(p.rep), m, ErrSizeMismatch)
	}

	return nil
}
