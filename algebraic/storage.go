// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package algebraic

// Alternative storage for variants.
//
// One native field per alternative, so the runtime owns layout and lifecycle.
// The accessors never consult the tag: the variant is the single caller and
// gates every access on the live tag. At most one slot holds a live value;
// the others stay zero. clear* releases a previously live value by zeroing
// its slot (the destroy step of destroy-then-construct assignment).

// storage2 holds the alternatives of a two-way variant.
type storage2[T1, T2 any] struct {
	t1 T1
	t2 T2
}

func (s *storage2[T1, T2]) first() T1  { return s.t1 }
func (s *storage2[T1, T2]) second() T2 { return s.t2 }

func (s *storage2[T1, T2]) setFirst(v T1)  { s.t1 = v }
func (s *storage2[T1, T2]) setSecond(v T2) { s.t2 = v }

func (s *storage2[T1, T2]) clearFirst() {
	var zero T1
	s.t1 = zero
}

func (s *storage2[T1, T2]) clearSecond() {
	var zero T2
	s.t2 = zero
}

// storage3 holds the alternatives of a three-way variant.
type storage3[T1, T2, T3 any] struct {
	t1 T1
	t2 T2
	t3 T3
}

func (s *storage3[T1, T2, T3]) first() T1  { return s.t1 }
func (s *storage3[T1, T2, T3]) second() T2 { return s.t2 }
func (s *storage3[T1, T2, T3]) third() T3  { return s.t3 }

func (s *storage3[T1, T2, T3]) setFirst(v T1)  { s.t1 = v }
func (s *storage3[T1, T2, T3]) setSecond(v T2) { s.t2 = v }
func (s *storage3[T1, T2, T3]) setThird(v T3)  { s.t3 = v }

func (s *storage3[T1, T2, T3]) clearFirst() {
	var zero T1
	s.t1 = zero
}

func (s *storage3[T1, T2, T3]) clearSecond() {
	var zero T2
	s.t2 = zero
}

func (s *storage3[T1, T2, T3]) clearThird() {
	var zero T3
	s.t3 = zero
}
