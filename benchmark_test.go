// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gcomb_test

import (
	"testing"

	"code.hybscloud.com/gcomb"
)

var sinkInt int

// BenchmarkCount measures the cost of a single pull.
func BenchmarkCount(b *testing.B) {
	g := gcomb.Count(0, 1)
	for b.Loop() {
		sinkInt = g.Next()
	}
}

// BenchmarkBindChain measures a chain of value transformations per pull.
func BenchmarkBindChain(b *testing.B) {
	inc := func(x int) int { return x + 1 }
	g := gcomb.Bind(gcomb.Bind(gcomb.Bind(gcomb.Count(0, 1), inc), inc), inc)
	for b.Loop() {
		sinkInt = g.Next()
	}
}

// BenchmarkBraid2 measures pairwise advancement per pull.
func BenchmarkBraid2(b *testing.B) {
	g := gcomb.Braid2(gcomb.Count(0, 1), gcomb.Count(0, 1))
	for b.Loop() {
		sinkInt = g.Next().Fst
	}
}

// BenchmarkBound measures the truncation wrapper per pull.
func BenchmarkBound(b *testing.B) {
	g := gcomb.Bound(gcomb.Count(0, 1), 1<<62)
	for b.Loop() {
		v, _ := g.Next().GetFirst()
		sinkInt = v
	}
}
