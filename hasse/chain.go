// SPDX-License-Identifier: MIT

package hasse

import "fmt"

// ShortestChain returns a chain from → … → to with the fewest cover steps,
// walking upper covers breadth-first. Ties resolve toward smaller indices.
// from == to yields the one-element chain.
func (d *Diagram) ShortestChain(from, to int) ([]int, error) {
	if err := d.check(from); err != nil {
		return nil, err
	}
	if err := d.check(to); err != nil {
		return nil, err
	}

	parent := make([]int, d.n)
	for i := range parent {
		parent[i] = -2 // unvisited
	}
	parent[from] = -1
	queue := []int{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if id == to {
			return d.unwind(parent, to), nil
		}
		for _, next := range d.up[id] {
			if parent[next] != -2 {
				continue
			}
			parent[next] = id
			queue = append(queue, next)
		}
	}

	return nil, fmt.Errorf("hasse: ShortestChain %d→%d: %w", from, to, ErrNoChain)
}

// unwind rebuilds the path ending at to from a parent table.
func (d *Diagram) unwind(parent []int, to int) []int {
	var rev []int
	for v := to; v != -1; v = parent[v] {
		rev = append(rev, v)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// MaximalChain returns an unrefinable chain from → … → to. At each step it
// takes the smallest upper cover that still lies below to.
func (d *Diagram) MaximalChain(from, to int) ([]int, error) {
	if err := d.check(from); err != nil {
		return nil, err
	}
	if err := d.check(to); err != nil {
		return nil, err
	}

	// Elements at or below to, by walking lower covers downward.
	below := make([]bool, d.n)
	below[to] = true
	stack := []int{to}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range d.down[v] {
			if !below[w] {
				below[w] = true
				stack = append(stack, w)
			}
		}
	}
	if !below[from] {
		return nil, fmt.Errorf("hasse: MaximalChain %d→%d: %w", from, to, ErrNoChain)
	}

	chain := []int{from}
	for cur := from; cur != to; {
		for _, next := range d.up[cur] {
			if below[next] {
				cur = next
				break
			}
		}
		chain = append(chain, cur)
	}

	return chain, nil
}
