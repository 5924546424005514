// SPDX-License-Identifier: MIT

package algebra_test

import (
	"fmt"

	"github.com/katalvlaran/conlat/algebra"
)

// ExampleNewIndexed adapts strings with a rotation to the index-based
// interface.
func ExampleNewIndexed() {
	next := map[string]string{"red": "green", "green": "blue", "blue": "red"}
	rot := algebra.Func[string]{Symbol: "next", Arity: 1, Fn: func(a ...string) string { return next[a[0]] }}

	a, _ := algebra.NewIndexed([]string{"red", "green", "blue"}, []algebra.Func[string]{rot})
	i, _ := a.IndexOf("blue")
	j, _ := a.Evaluate(0, []int{i})
	e, _ := a.ElementAt(j)
	fmt.Println(i, j, e)

	// Output:
	// 2 0 red
}

// ExampleCyclicGroup evaluates 4 + 3 in Z_5.
func ExampleCyclicGroup() {
	z5, _ := algebra.CyclicGroup(5)
	v, _ := z5.Evaluate(0, []int{4, 3})
	fmt.Println(z5.Name(), z5.OperationCount(), v)

	// Output:
	// Z5 3 2
}
