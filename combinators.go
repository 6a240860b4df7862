// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gcomb

import "code.hybscloud.com/gcomb/algebraic"

// Combinators over generators.
//
// Every combinator is a pure composition: it returns a new handle and does
// not invoke its inputs until the result is pulled. Combinators advance
// their constituent generators in a fixed left-to-right order per pull.

// Bind applies f to every value g produces.
func Bind[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return func() U {
		return f(g())
	}
}

// Bind2 applies f to every pair g produces, unpacked as positional
// arguments.
func Bind2[A, B, U any](g Generator[Pair[A, B]], f func(A, B) U) Generator[U] {
	return func() U {
		p := g()
		return f(p.Fst, p.Snd)
	}
}

// Bind3 applies f to every triple g produces, unpacked as positional
// arguments.
func Bind3[A, B, C, U any](g Generator[Triple[A, B, C]], f func(A, B, C) U) Generator[U] {
	return func() U {
		p := g()
		return f(p.Fst, p.Snd, p.Trd)
	}
}

// BindAll2 braids ga and gb and applies f to each resulting pair.
// Equivalent to Bind2(Braid2(ga, gb), f).
func BindAll2[A, B, U any](f func(A, B) U, ga Generator[A], gb Generator[B]) Generator[U] {
	return Bind2(Braid2(ga, gb), f)
}

// BindAll3 braids ga, gb and gc and applies f to each resulting triple.
func BindAll3[A, B, C, U any](f func(A, B, C) U, ga Generator[A], gb Generator[B], gc Generator[C]) Generator[U] {
	return Bind3(Braid3(ga, gb, gc), f)
}

// Braid2 pairs one value from each input per pull, advancing every input
// exactly once, left to right.
func Braid2[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return func() Pair[A, B] {
		a := ga()
		b := gb()
		return Pair[A, B]{Fst: a, Snd: b}
	}
}

// Braid3 triples one value from each input per pull, advancing every input
// exactly once, left to right.
func Braid3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Triple[A, B, C]] {
	return func() Triple[A, B, C] {
		a := ga()
		b := gb()
		c := gc()
		return Triple[A, B, C]{Fst: a, Snd: b, Trd: c}
	}
}

// Tie2 is [Braid2] under its alternate name.
func Tie2[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return Braid2(ga, gb)
}

// Tie3 is [Braid3] under its alternate name.
func Tie3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Triple[A, B, C]] {
	return Braid3(ga, gb, gc)
}

// Seq concatenates two generators, switching on a branch predicate.
//
// While branch reports false the result draws from t; the value that makes
// branch report true is still delivered from t, and every pull after it
// draws from u, permanently. The switch-over latch is owned by this
// application: distinct Seq applications never share it, while copies of
// the one returned handle do.
func Seq[T, U any](t Generator[T], u Generator[U], branch func(T) bool) Generator[algebraic.Of2[T, U]] {
	switched := false
	return func() algebraic.Of2[T, U] {
		if switched {
			return algebraic.Second[T](u())
		}
		v := t()
		if branch(v) {
			switched = true
		}
		return algebraic.First[T, U](v)
	}
}

// Bound truncates g to its first n values.
//
// The result yields n values drawn from g as the first alternative, then
// [Sentinel] forever; g is never pulled again once exhausted. The counter
// is owned by this application. A non-positive n yields Sentinel from the
// first pull.
func Bound[T any](g Generator[T], n int) Generator[algebraic.Of2[T, Sentinel]] {
	remaining := n
	return func() algebraic.Of2[T, Sentinel] {
		if remaining <= 0 {
			return algebraic.Second[T](Sentinel{})
		}
		remaining--
		return algebraic.First[T, Sentinel](g())
	}
}

// Drain pulls a bounded generator until its sentinel alternative and
// collects the values drawn before it. Draining an unbounded generator
// does not return.
func Drain[T any](g Generator[algebraic.Of2[T, Sentinel]]) []T {
	var out []T
	for {
		v, ok := g().GetFirst()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
