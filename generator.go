// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gcomb

import "golang.org/x/exp/constraints"

// Generator is a lazily invoked producer of values of type T.
// Generator[T] wraps a nullary producer; each invocation yields the next
// logical element and advances any captured state by exactly one step.
//
// A generator is purely functional when its producer is referentially
// transparent; otherwise it carries mutable captured state. Copies of a
// handle share the underlying producer and its state. Handles are not safe
// for concurrent invocation.
type Generator[T any] func() T

// Next pulls one value, advancing the generator by one logical step.
func (g Generator[T]) Next() T {
	return g()
}

// Apply pulls one value from g and feeds it to the continuation k.
// This is the continuation-form invocation; Next is the plain pull.
func Apply[T, R any](g Generator[T], k func(T) R) R {
	return k(g())
}

// Repeat adapts an external nullary producer into a generator.
func Repeat[T any](f func() T) Generator[T] {
	return Generator[T](f)
}

// Pure returns a constant generator producing v on every pull.
func Pure[T any](v T) Generator[T] {
	return func() T { return v }
}

// Pure2 returns a constant generator producing the pair (a, b) on every
// pull.
func Pure2[A, B any](a A, b B) Generator[Pair[A, B]] {
	p := Pair[A, B]{Fst: a, Snd: b}
	return func() Pair[A, B] { return p }
}

// Pure3 returns a constant generator producing the triple (a, b, c) on
// every pull.
func Pure3[A, B, C any](a A, b B, c C) Generator[Triple[A, B, C]] {
	p := Triple[A, B, C]{Fst: a, Snd: b, Trd: c}
	return func() Triple[A, B, C] { return p }
}

// Sentinel is the zero-size marker signaling sequence exhaustion.
// It carries no state and is distinguished only by its position in a
// variant's alternative list.
type Sentinel struct{}

// Bot returns the bottom generator: it produces [Sentinel] forever, in
// essence a sequence with no values at all.
func Bot() Generator[Sentinel] {
	return Pure(Sentinel{})
}

// Numeric constrains the element type of the arithmetic generators.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Count returns the arithmetic progression start, start+step, start+2*step,
// advanced once per pull.
func Count[T Numeric](start, step T) Generator[T] {
	next := start
	return func() T {
		out := next
		next += step
		return out
	}
}

// Prod returns the geometric progression start, start*factor,
// start*factor², advanced once per pull.
func Prod[T Numeric](start, factor T) Generator[T] {
	next := start
	return func() T {
		out := next
		next *= factor
		return out
	}
}
