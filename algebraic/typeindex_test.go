// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package algebraic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/gcomb/algebraic"
)

func TestIndexResolvesDeclaredAlternatives(t *testing.T) {
	idx, ok := algebraic.Index2[int, int, string]()
	require.True(t, ok)
	require.Equal(t, algebraic.Tag(0), idx)

	idx, ok = algebraic.Index2[string, int, string]()
	require.True(t, ok)
	require.Equal(t, algebraic.Tag(1), idx)

	idx, ok = algebraic.Index3[bool, int, string, bool]()
	require.True(t, ok)
	require.Equal(t, algebraic.Tag(2), idx)
}

func TestIndexUndeclaredType(t *testing.T) {
	_, ok := algebraic.Index2[float64, int, string]()
	require.False(t, ok)

	_, ok = algebraic.Index3[float64, int, string, bool]()
	require.False(t, ok)
}

func TestIndexDuplicateAlternatives(t *testing.T) {
	// Duplicate types in the list resolve to the first occurrence,
	// silently. This is a documented decision, not an accident.
	idx, ok := algebraic.Index2[int, int, int]()
	require.True(t, ok)
	require.Equal(t, algebraic.Tag(0), idx)

	idx, ok = algebraic.Index3[string, int, string, string]()
	require.True(t, ok)
	require.Equal(t, algebraic.Tag(1), idx)
}

func TestIndexBoxedAlternative(t *testing.T) {
	// The recursive case: a query for the payload type resolves to the
	// position of its boxed alternative.
	idx, ok := algebraic.Index2[expr, int, algebraic.Box[expr]]()
	require.True(t, ok)
	require.Equal(t, algebraic.Tag(1), idx)
}

func TestIndexDirectMatchPrecedesBoxMatch(t *testing.T) {
	idx, ok := algebraic.Index2[expr, expr, algebraic.Box[expr]]()
	require.True(t, ok)
	require.Equal(t, algebraic.Tag(0), idx)
}

func TestIsAlternative(t *testing.T) {
	require.True(t, algebraic.IsAlternative2[int, int, string]())
	require.True(t, algebraic.IsAlternative2[expr, int, algebraic.Box[expr]]())
	require.False(t, algebraic.IsAlternative2[float64, int, string]())
	require.True(t, algebraic.IsAlternative3[bool, int, string, bool]())
	require.False(t, algebraic.IsAlternative3[float64, int, string, bool]())
}
