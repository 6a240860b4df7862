// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package algebraic

import (
	"fmt"
	"reflect"
)

// Of2 is a tagged union over the ordered alternative list {T1, T2}.
//
// The tag is fixed at construction and never changes afterwards. The zero
// value is uninitialized; every observer panics on it. Plain assignment
// copies the tag and storage member-wise; [Of2.Clone] produces a deep,
// storage-independent copy of a live boxed alternative.
type Of2[T1, T2 any] struct {
	// tag is stored 1-based so the zero value is detectable as
	// uninitialized. Tag() reports the conventional 0-based position.
	tag Tag
	s   storage2[T1, T2]
}

// Of3 is a tagged union over the ordered alternative list {T1, T2, T3}.
// Shares every contract of [Of2].
type Of3[T1, T2, T3 any] struct {
	tag Tag
	s   storage3[T1, T2, T3]
}

// First constructs an Of2 holding v as the first alternative.
func First[T1, T2 any](v T1) Of2[T1, T2] {
	out := Of2[T1, T2]{tag: 1}
	out.s.setFirst(v)
	return out
}

// Second constructs an Of2 holding v as the second alternative.
func Second[T1, T2 any](v T2) Of2[T1, T2] {
	out := Of2[T1, T2]{tag: 2}
	out.s.setSecond(v)
	return out
}

// First3 constructs an Of3 holding v as the first alternative.
func First3[T1, T2, T3 any](v T1) Of3[T1, T2, T3] {
	out := Of3[T1, T2, T3]{tag: 1}
	out.s.setFirst(v)
	return out
}

// Second3 constructs an Of3 holding v as the second alternative.
func Second3[T1, T2, T3 any](v T2) Of3[T1, T2, T3] {
	out := Of3[T1, T2, T3]{tag: 2}
	out.s.setSecond(v)
	return out
}

// Third3 constructs an Of3 holding v as the third alternative.
func Third3[T1, T2, T3 any](v T3) Of3[T1, T2, T3] {
	out := Of3[T1, T2, T3]{tag: 3}
	out.s.setThird(v)
	return out
}

// noConversion panics with the shared rejection message of the
// construction paths.
//
//go:noinline
func noConversion() {
	panic("algebraic: no possible conversion")
}

// coerce converts a dynamically typed value into alternative type A.
// Either v already is an A, or A is a box and v is its payload type (the
// recursive case), in which case v is boxed.
func coerce[A any](v any) A {
	if a, ok := v.(A); ok {
		return a
	}
	var zero A
	if m, ok := any(zero).(boxMarker); ok {
		if a, ok := m.boxAny(v).(A); ok {
			return a
		}
	}
	noConversion()
	var unreachable A
	return unreachable
}

// Make2 constructs an Of2 from a dynamically typed value.
//
// The alternative is resolved through the type-index resolver: the first
// alternative whose type matches v's dynamic type wins. A value whose type
// U matches an alternative declared as Box[U] is boxed automatically.
// Panics when no alternative matches.
func Make2[T1, T2 any](v any) Of2[T1, T2] {
	idx, ok := indexOf(reflect.TypeOf(v), []reflect.Type{typeOf[T1](), typeOf[T2]()})
	if !ok {
		noConversion()
	}
	switch idx {
	case 0:
		return First[T1, T2](coerce[T1](v))
	default:
		return Second[T1](coerce[T2](v))
	}
}

// Make3 constructs an Of3 from a dynamically typed value.
// Shares the resolution contract of [Make2].
func Make3[T1, T2, T3 any](v any) Of3[T1, T2, T3] {
	idx, ok := indexOf(reflect.TypeOf(v), []reflect.Type{typeOf[T1](), typeOf[T2](), typeOf[T3]()})
	if !ok {
		noConversion()
	}
	switch idx {
	case 0:
		return First3[T1, T2, T3](coerce[T1](v))
	case 1:
		return Second3[T1, T2, T3](coerce[T2](v))
	default:
		return Third3[T1, T2](coerce[T3](v))
	}
}

// Emplace2 is the type-checked factory: it constructs an Of2 holding v,
// rejecting at the call boundary any U that is not a declared alternative
// (or the payload of a boxed alternative).
func Emplace2[U, T1, T2 any](v U) Of2[T1, T2] {
	if !IsAlternative2[U, T1, T2]() {
		noConversion()
	}
	return Make2[T1, T2](any(v))
}

// Emplace3 is the type-checked factory for [Of3].
func Emplace3[U, T1, T2, T3 any](v U) Of3[T1, T2, T3] {
	if !IsAlternative3[U, T1, T2, T3]() {
		noConversion()
	}
	return Make3[T1, T2, T3](any(v))
}

// uninitialized panics with the never-empty violation message.
//
//go:noinline
func uninitialized() {
	panic("algebraic: uninitialized variant")
}

func (v Of2[T1, T2]) check() {
	if v.tag == 0 {
		uninitialized()
	}
}

func (v Of3[T1, T2, T3]) check() {
	if v.tag == 0 {
		uninitialized()
	}
}

// Tag returns the fixed discriminant: the 0-based position of the live
// alternative. It is the sole runtime introspection primitive and is stable
// for the lifetime of the value.
func (v Of2[T1, T2]) Tag() Tag {
	v.check()
	return v.tag - 1
}

// Tag returns the fixed discriminant of the live alternative.
func (v Of3[T1, T2, T3]) Tag() Tag {
	v.check()
	return v.tag - 1
}

// NumAlternatives returns the arity of the declared alternative list.
func (Of2[T1, T2]) NumAlternatives() int { return 2 }

// NumAlternatives returns the arity of the declared alternative list.
func (Of3[T1, T2, T3]) NumAlternatives() int { return 3 }

// IsFirst reports whether the first alternative is live.
func (v Of2[T1, T2]) IsFirst() bool {
	v.check()
	return v.tag == 1
}

// IsSecond reports whether the second alternative is live.
func (v Of2[T1, T2]) IsSecond() bool {
	v.check()
	return v.tag == 2
}

// IsFirst reports whether the first alternative is live.
func (v Of3[T1, T2, T3]) IsFirst() bool {
	v.check()
	return v.tag == 1
}

// IsSecond reports whether the second alternative is live.
func (v Of3[T1, T2, T3]) IsSecond() bool {
	v.check()
	return v.tag == 2
}

// IsThird reports whether the third alternative is live.
func (v Of3[T1, T2, T3]) IsThird() bool {
	v.check()
	return v.tag == 3
}

// GetFirst returns the first alternative and true, or zero and false.
func (v Of2[T1, T2]) GetFirst() (T1, bool) {
	v.check()
	if v.tag != 1 {
		var zero T1
		return zero, false
	}
	return v.s.first(), true
}

// GetSecond returns the second alternative and true, or zero and false.
func (v Of2[T1, T2]) GetSecond() (T2, bool) {
	v.check()
	if v.tag != 2 {
		var zero T2
		return zero, false
	}
	return v.s.second(), true
}

// GetFirst returns the first alternative and true, or zero and false.
func (v Of3[T1, T2, T3]) GetFirst() (T1, bool) {
	v.check()
	if v.tag != 1 {
		var zero T1
		return zero, false
	}
	return v.s.first(), true
}

// GetSecond returns the second alternative and true, or zero and false.
func (v Of3[T1, T2, T3]) GetSecond() (T2, bool) {
	v.check()
	if v.tag != 2 {
		var zero T2
		return zero, false
	}
	return v.s.second(), true
}

// GetThird returns the third alternative and true, or zero and false.
func (v Of3[T1, T2, T3]) GetThird() (T3, bool) {
	v.check()
	if v.tag != 3 {
		var zero T3
		return zero, false
	}
	return v.s.third(), true
}

// unboxTo converts the live alternative to U.
// A direct match takes precedence; a boxed live value is dereferenced so
// the caller sees the payload type, never the box.
func unboxTo[U any](live any) (U, bool) {
	if u, ok := live.(U); ok {
		return u, true
	}
	if m, ok := live.(boxMarker); ok {
		if u, ok := m.unboxAny().(U); ok {
			return u, true
		}
	}
	var zero U
	return zero, false
}

// Get2 returns the live alternative of v as U.
//
// This is access by alternative type: it succeeds when the live alternative
// is U itself, or is Box[U], in which case the box is dereferenced
// transparently. Reports false when the live alternative is a different
// type.
func Get2[U, T1, T2 any](v Of2[T1, T2]) (U, bool) {
	v.check()
	var live any
	if v.tag == 1 {
		live = v.s.first()
	} else {
		live = v.s.second()
	}
	return unboxTo[U](live)
}

// Get3 returns the live alternative of v as U.
// Shares the transparent-unboxing contract of [Get2].
func Get3[U, T1, T2, T3 any](v Of3[T1, T2, T3]) (U, bool) {
	v.check()
	var live any
	switch v.tag {
	case 1:
		live = v.s.first()
	case 2:
		live = v.s.second()
	default:
		live = v.s.third()
	}
	return unboxTo[U](live)
}

// MustGet2 is [Get2] for call sites already gated on the tag.
// Panics when the live alternative is not U.
func MustGet2[U, T1, T2 any](v Of2[T1, T2]) U {
	u, ok := Get2[U](v)
	if !ok {
		panic("algebraic: variant does not hold " + typeOf[U]().String())
	}
	return u
}

// MustGet3 is [Get3] for call sites already gated on the tag.
// Panics when the live alternative is not U.
func MustGet3[U, T1, T2, T3 any](v Of3[T1, T2, T3]) U {
	u, ok := Get3[U](v)
	if !ok {
		panic("algebraic: variant does not hold " + typeOf[U]().String())
	}
	return u
}

// Match2 pattern matches on the live alternative, calling exactly one of
// the branch functions.
func Match2[T1, T2, R any](v Of2[T1, T2], onFirst func(T1) R, onSecond func(T2) R) R {
	v.check()
	if v.tag == 1 {
		return onFirst(v.s.first())
	}
	return onSecond(v.s.second())
}

// Match3 pattern matches on the live alternative, calling exactly one of
// the branch functions.
func Match3[T1, T2, T3, R any](v Of3[T1, T2, T3], onFirst func(T1) R, onSecond func(T2) R, onThird func(T3) R) R {
	v.check()
	switch v.tag {
	case 1:
		return onFirst(v.s.first())
	case 2:
		return onSecond(v.s.second())
	default:
		return onThird(v.s.third())
	}
}

// retag panics with the never-retagged violation message.
//
//go:noinline
func retag() {
	panic("algebraic: assignment would retag variant")
}

// SetFirst assigns a new value to the live first alternative.
//
// Assignment is destroy-then-construct: the previous value is released
// before the new one is stored. The tag never changes through assignment;
// calling SetFirst on a variant whose live alternative is not the first
// panics.
func (v *Of2[T1, T2]) SetFirst(nv T1) {
	v.check()
	if v.tag != 1 {
		retag()
	}
	v.s.clearFirst()
	v.s.setFirst(nv)
}

// SetSecond assigns a new value to the live second alternative.
// Shares the destroy-then-construct and never-retagged contract of
// [Of2.SetFirst].
func (v *Of2[T1, T2]) SetSecond(nv T2) {
	v.check()
	if v.tag != 2 {
		retag()
	}
	v.s.clearSecond()
	v.s.setSecond(nv)
}

// SetFirst assigns a new value to the live first alternative.
func (v *Of3[T1, T2, T3]) SetFirst(nv T1) {
	v.check()
	if v.tag != 1 {
		retag()
	}
	v.s.clearFirst()
	v.s.setFirst(nv)
}

// SetSecond assigns a new value to the live second alternative.
func (v *Of3[T1, T2, T3]) SetSecond(nv T2) {
	v.check()
	if v.tag != 2 {
		retag()
	}
	v.s.clearSecond()
	v.s.setSecond(nv)
}

// SetThird assigns a new value to the live third alternative.
func (v *Of3[T1, T2, T3]) SetThird(nv T3) {
	v.check()
	if v.tag != 3 {
		retag()
	}
	v.s.clearThird()
	v.s.setThird(nv)
}

// Clone produces a deep, storage-independent copy.
//
// A live alternative implementing [Cloner] of its own type is cloned
// through it — in particular a boxed recursive alternative, so mutating the
// clone's boxed payload never affects the original. Other alternatives are
// copied by value, as plain assignment would.
func (v Of2[T1, T2]) Clone() Of2[T1, T2] {
	v.check()
	out := v
	if v.tag == 1 {
		if c, ok := any(v.s.first()).(Cloner[T1]); ok {
			out.s.setFirst(c.Clone())
		}
	} else {
		if c, ok := any(v.s.second()).(Cloner[T2]); ok {
			out.s.setSecond(c.Clone())
		}
	}
	return out
}

// Clone produces a deep, storage-independent copy.
// Shares the contract of [Of2.Clone].
func (v Of3[T1, T2, T3]) Clone() Of3[T1, T2, T3] {
	v.check()
	out := v
	switch v.tag {
	case 1:
		if c, ok := any(v.s.first()).(Cloner[T1]); ok {
			out.s.setFirst(c.Clone())
		}
	case 2:
		if c, ok := any(v.s.second()).(Cloner[T2]); ok {
			out.s.setSecond(c.Clone())
		}
	default:
		if c, ok := any(v.s.third()).(Cloner[T3]); ok {
			out.s.setThird(c.Clone())
		}
	}
	return out
}

// String returns a diagnostic form. Unlike the observers it does not panic
// on the zero value, so printing never traps.
func (v Of2[T1, T2]) String() string {
	switch v.tag {
	case 1:
		return fmt.Sprintf("Of2[0]=%v", v.s.first())
	case 2:
		return fmt.Sprintf("Of2[1]=%v", v.s.second())
	default:
		return "Of2[?]"
	}
}

// String returns a diagnostic form, safe on the zero value.
func (v Of3[T1, T2, T3]) String() string {
	switch v.tag {
	case 1:
		return fmt.Sprintf("Of3[0]=%v", v.s.first())
	case 2:
		return fmt.Sprintf("Of3[1]=%v", v.s.second())
	case 3:
		return fmt.Sprintf("Of3[2]=%v", v.s.third())
	default:
		return "Of3[?]"
	}
}
