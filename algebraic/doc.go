// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package algebraic provides fixed-alternative tagged unions (sum types)
// with a never-empty guarantee, including recursive sum types through
// owned heap indirection.
//
// A variant is a value that holds exactly one of a fixed, ordered list of
// alternative types, together with a [Tag] identifying which alternative is
// live. The tag is fixed at construction and never changes for the lifetime
// of the value.
//
// # Variants
//
// [Of2] and [Of3] are the two- and three-alternative variants. They are
// constructed through typed per-alternative constructors, a dynamic value
// constructor, or a type-checked factory:
//
//   - [First], [Second] (and [First3], [Second3], [Third3]): typed
//     constructors — an undeclared alternative type cannot compile
//   - [Make2], [Make3]: construct from a dynamic value, resolving the
//     alternative by first match against the declared list
//   - [Emplace2], [Emplace3]: type-checked factories
//
// The zero value of a variant is uninitialized and unusable; every observer
// panics on it. This is the closest Go rendition of the never-empty
// guarantee: a variant is only obtained through the constructors above.
//
// # Access
//
// Access follows the checked-accessor idiom:
//
//   - Tag: the sole runtime introspection primitive
//   - GetFirst, GetSecond, GetThird: (value, ok) accessors
//   - [Get2], [Get3]: generic access by alternative type, transparently
//     dereferencing a boxed recursive alternative
//   - [Match2], [Match3]: exhaustive pattern matching
//
// # Recursive alternatives
//
// An alternative may refer to the type under construction through [Box],
// which exclusively owns one heap-allocated value and therefore has a fixed
// size regardless of its payload. Declaring the alternative as Box[T] breaks
// the otherwise infinite size of a self-referential sum type:
//
//	// expr is either a literal or a negated sub-expression.
//	type expr struct {
//		node algebraic.Of2[int, algebraic.Box[expr]]
//	}
//
// Accessors unwrap the box transparently: Get2[expr] on such a variant
// yields the expr, never the box. [Make2] boxes a recursive value
// automatically.
//
// # Type resolution
//
// [Index2], [Index3] resolve a query type to its zero-based position in the
// declared alternative list. The first matching alternative wins; a list
// that declares the same type twice resolves to the first occurrence. A
// query type U also matches an alternative declared as Box[U].
//
// # Contract violations
//
// The package has no error channel. Constructing from a type that is not an
// alternative, observing an uninitialized variant, dereferencing an empty
// (moved-from) box, or assigning through a non-live alternative all panic
// with an "algebraic:" prefixed message.
package algebraic
