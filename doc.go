// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gcomb provides composable generator combinators for lazy,
// potentially infinite sequences of values.
//
// The core type [Generator] wraps a nullary producer: each invocation
// yields the next logical element, on demand, never pre-materialized.
// Combinators compose generators into new generators while preserving
// static type information; finite termination is represented with the
// [code.hybscloud.com/gcomb/algebraic] sum types.
//
// # Design Philosophy
//
// gcomb provides:
//   - A minimal pull contract: one call, one logical step
//   - Pure composition — every combinator returns a new handle and never
//     invokes its inputs at composition time
//   - Sum-typed sequence boundaries instead of ad-hoc ok flags
//
// # Generators
//
//   - [Generator]: the handle; Next pulls one value
//   - [Repeat]: adapt an external nullary producer
//   - [Pure], [Pure2], [Pure3]: constant generators
//   - [Count]: arithmetic progression (start, start+step, ...)
//   - [Prod]: geometric progression (start, start*factor, ...)
//   - [Bot]: produces [Sentinel] forever — the empty sequence
//   - [Apply]: continuation-form invocation, pulls once and feeds k
//
// # Combinators
//
// All combinators are pure compositions returning new handles:
//
//   - [Bind], [Bind2], [Bind3]: map a function over produced values;
//     the tuple forms unpack [Pair]/[Triple] into positional arguments
//   - [Braid2], [Braid3] (aliases [Tie2], [Tie3]): pair one value from
//     each input per pull, advancing every input exactly once, left to
//     right
//   - [BindAll2], [BindAll3]: braid-then-bind fusion
//   - [Seq]: sequential concatenation — draw from the first generator
//     until a branch predicate fires, then permanently switch to the
//     second
//   - [Bound]: bounded truncation — n values from an infinite generator,
//     then [Sentinel] forever
//   - [Drain]: collect a bounded generator into a slice
//   - [Observe]: pass-through logging of every pull via an injected
//     logr.Logger
//
// # State and Sharing
//
// A generator with captured mutable state (such as [Count]) advances once
// per call. Copies of one handle share the producer and its state; distinct
// combinator applications never share state — [Seq]'s switch-over latch and
// [Bound]'s counter are owned per application.
//
// Everything is single-threaded and synchronous: no suspension, timeout or
// cancellation exists in the core, and a handle must not be invoked from
// multiple goroutines.
//
// # Example
//
//	evens := gcomb.Count(0, 2)
//	firstThree := gcomb.Bound(evens, 3)
//	gcomb.Drain(firstThree) // [0 2 4]
package gcomb
