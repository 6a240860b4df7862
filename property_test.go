// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gcomb_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/gcomb"
)

const propertyN = 1000

// randSmall returns a random int in [-100, 100].
func randSmall(rng *rand.Rand) int {
	return rng.IntN(201) - 100
}

// TestPropertyCountClosedForm: the i-th pull of Count(a, s) is a + i*s.
func TestPropertyCountClosedForm(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, s := randSmall(rng), randSmall(rng)
		g := gcomb.Count(a, s)
		for i := range 8 {
			got := g.Next()
			want := a + i*s
			if got != want {
				t.Fatalf("pull %d of Count(%d, %d): got %d, want %d", i, a, s, got, want)
			}
		}
	}
}

// TestPropertyBindComposition: Bind(Bind(g, f), h) ≡ Bind(g, h∘f)
// over generators with identical captured state.
func TestPropertyBindComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x*2 + 1 }
	h := func(x int) int { return x * x }
	for range propertyN {
		a, s := randSmall(rng), randSmall(rng)
		left := gcomb.Bind(gcomb.Bind(gcomb.Count(a, s), f), h)
		right := gcomb.Bind(gcomb.Count(a, s), func(x int) int { return h(f(x)) })
		for i := range 8 {
			l, r := left.Next(), right.Next()
			if l != r {
				t.Fatalf("bind composition at pull %d: %d != %d (a=%d, s=%d)", i, l, r, a, s)
			}
		}
	}
}

// TestPropertyBraidPairsPositionally: the i-th pull of a braid is the pair
// of the i-th values of its inputs.
func TestPropertyBraidPairsPositionally(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a1, s1 := randSmall(rng), randSmall(rng)
		a2, s2 := randSmall(rng), randSmall(rng)
		g := gcomb.Braid2(gcomb.Count(a1, s1), gcomb.Count(a2, s2))
		for i := range 8 {
			p := g.Next()
			if p.Fst != a1+i*s1 || p.Snd != a2+i*s2 {
				t.Fatalf("braid pull %d: got (%d, %d), want (%d, %d)",
					i, p.Fst, p.Snd, a1+i*s1, a2+i*s2)
			}
		}
	}
}

// TestPropertyBoundLength: Drain(Bound(g, n)) has exactly n elements.
func TestPropertyBoundLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := rng.IntN(50)
		got := gcomb.Drain(gcomb.Bound(gcomb.Count(0, 1), n))
		if len(got) != n {
			t.Fatalf("drained %d values, want %d", len(got), n)
		}
		for i, v := range got {
			if v != i {
				t.Fatalf("drained[%d] = %d, want %d", i, v, i)
			}
		}
	}
}

// TestPropertySeqPrefixThenTail: with branch firing on the k-th value, the
// first k pulls come from t and everything after from u.
func TestPropertySeqPrefixThenTail(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		k := 1 + rng.IntN(6)
		s := gcomb.Seq(
			gcomb.Count(1, 1),
			gcomb.Count(1000, 1),
			func(n int) bool { return n == k },
		)
		for i := 1; i <= k; i++ {
			v, ok := s.Next().GetFirst()
			if !ok || v != i {
				t.Fatalf("pull %d before switch: got (%d, %v), want (%d, true)", i, v, ok, i)
			}
		}
		for i := range 3 {
			v, ok := s.Next().GetSecond()
			if !ok || v != 1000+i {
				t.Fatalf("pull %d after switch: got (%d, %v), want (%d, true)", i, v, ok, 1000+i)
			}
		}
	}
}
