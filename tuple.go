// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gcomb

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Triple holds three values.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Trd C
}
