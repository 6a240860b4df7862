// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package algebraic

import "reflect"

// Tag identifies which alternative of a variant is live.
// It is the zero-based position of the alternative in the declared list,
// fixed exactly once at construction.
type Tag int

// typeOf returns the reflect.Type of T without requiring a value of T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// indexOf resolves query against the ordered alternative list.
// The first matching alternative wins: duplicate entries resolve to the
// first occurrence. A direct match takes precedence over a box match, so a
// list may declare both U and Box[U] and queries for U resolve to U.
func indexOf(query reflect.Type, alts []reflect.Type) (Tag, bool) {
	for i, alt := range alts {
		if alt == query {
			return Tag(i), true
		}
	}
	for i, alt := range alts {
		if elem, ok := boxElem(alt); ok && elem == query {
			return Tag(i), true
		}
	}
	return 0, false
}

// boxMarkerType is the structural marker implemented by every Box
// instantiation.
var boxMarkerType = reflect.TypeOf((*boxMarker)(nil)).Elem()

// boxElem reports the payload type of a Box alternative.
// The zero box is sufficient to answer the type-level query.
func boxElem(alt reflect.Type) (reflect.Type, bool) {
	if !alt.Implements(boxMarkerType) {
		return nil, false
	}
	return reflect.Zero(alt).Interface().(boxMarker).boxElem(), true
}

// Index2 resolves U against the alternative list {T1, T2} of [Of2].
// Reports the position of the first alternative identical to U, or declared
// as Box[U], and whether any alternative matched.
func Index2[U, T1, T2 any]() (Tag, bool) {
	return indexOf(typeOf[U](), []reflect.Type{typeOf[T1](), typeOf[T2]()})
}

// Index3 resolves U against the alternative list {T1, T2, T3} of [Of3].
func Index3[U, T1, T2, T3 any]() (Tag, bool) {
	return indexOf(typeOf[U](), []reflect.Type{typeOf[T1](), typeOf[T2](), typeOf[T3]()})
}

// IsAlternative2 reports whether U is a declared alternative of
// Of2[T1, T2], either directly or as the payload of a boxed alternative.
func IsAlternative2[U, T1, T2 any]() bool {
	_, ok := Index2[U, T1, T2]()
	return ok
}

// IsAlternative3 reports whether U is a declared alternative of
// Of3[T1, T2, T3], either directly or as the payload of a boxed alternative.
func IsAlternative3[U, T1, T2, T3 any]() bool {
	_, ok := Index3[U, T1, T2, T3]()
	return ok
}
