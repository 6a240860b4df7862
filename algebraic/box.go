// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package algebraic

import "reflect"

// Box exclusively owns one heap-allocated value of type T.
//
// A box is the in-variant representative of a self-referential alternative:
// it has a fixed size (one pointer) regardless of T, which gives a recursive
// sum type finite per-node size. Single-owner semantics: copying the Go
// value of a box aliases the pointee; [Box.Clone] is the deep copy and
// [Box.Take] is the ownership transfer.
//
// The zero box is empty and non-dereferenceable, the state a box is left in
// after Take.
type Box[T any] struct {
	ptr *T
}

// Cloner is implemented by payloads that define their own deep copy.
// [Box.Clone] and the variant Clone methods use it to copy recursive
// structures level by level; payloads without it are copied by value.
type Cloner[T any] interface {
	Clone() T
}

// boxMarker is the structural interface every Box instantiation implements.
// It lets the type-index resolver and the variant accessors see through
// boxes without knowing the payload type statically.
type boxMarker interface {
	boxElem() reflect.Type
	boxAny(v any) any
	unboxAny() any
}

// NewBox allocates a node on the heap and stores v in it.
func NewBox[T any](v T) Box[T] {
	return Box[T]{ptr: &v}
}

// Empty reports whether the box owns no value.
func (b Box[T]) Empty() bool {
	return b.ptr == nil
}

// Value returns the owned value.
// Panics when called on an empty (moved-from) box.
func (b Box[T]) Value() T {
	if b.ptr == nil {
		panic("algebraic: value of empty box")
	}
	return *b.ptr
}

// Ref returns a pointer to the owned value for in-place mutation.
// Panics when called on an empty box.
func (b Box[T]) Ref() *T {
	if b.ptr == nil {
		panic("algebraic: value of empty box")
	}
	return b.ptr
}

// Get returns the owned value and true, or zero and false for an empty box.
func (b Box[T]) Get() (T, bool) {
	if b.ptr == nil {
		var zero T
		return zero, false
	}
	return *b.ptr, true
}

// Set replaces the owned value, allocating when the box is empty.
func (b *Box[T]) Set(v T) {
	if b.ptr == nil {
		b.ptr = &v
		return
	}
	*b.ptr = v
}

// Take transfers ownership of the pointee to the returned box and leaves
// the receiver empty. Dereferencing the receiver afterwards panics.
func (b *Box[T]) Take() Box[T] {
	moved := Box[T]{ptr: b.ptr}
	b.ptr = nil
	return moved
}

// Clone produces an independent deep copy: a new node is allocated and the
// pointee is copied into it. A pointee implementing [Cloner] is cloned
// through it, so nested boxes are duplicated rather than aliased.
// Cloning an empty box yields an empty box.
func (b Box[T]) Clone() Box[T] {
	if b.ptr == nil {
		return Box[T]{}
	}
	v := *b.ptr
	if c, ok := any(v).(Cloner[T]); ok {
		v = c.Clone()
	}
	return NewBox(v)
}

func (Box[T]) boxElem() reflect.Type { return typeOf[T]() }

// boxAny wraps a dynamically typed value of the payload type.
// Called on the zero box by the dynamic construction path.
func (Box[T]) boxAny(v any) any { return NewBox(v.(T)) }

// unboxAny exposes the pointee for the transparent-access path.
// Shares the empty-box contract of [Box.Value].
func (b Box[T]) unboxAny() any { return b.Value() }
