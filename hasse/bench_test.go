// SPDX-License-Identifier: MIT

package hasse_test

import (
	"testing"

	"github.com/katalvlaran/conlat/hasse"
)

// BenchmarkBuild_Boolean measures covers of the Boolean lattice on 8 atoms.
func BenchmarkBuild_Boolean(b *testing.B) {
	const n = 1 << 8
	leq := func(i, j int) bool { return i&j == i }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hasse.Build(n, leq); err != nil {
			b.Fatal(err)
		}
	}
}
