// SPDX-License-Identifier: MIT

package values_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tuplex/values"
)

// column builds Column(xs...) from ints.
func column(xs ...int) []values.Tuple {
	out := make([]values.Tuple, len(xs))
	for i, x := range xs {
		out[i] = t1(x)
	}

	return out
}

// TestReduceTo_ReferenceTable pins the selection for N=10.
func TestReduceTo_ReferenceTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ratio float64
		want  []values.Tuple
	}{
		{0.5, column(2, 4, 6, 8, 10)},
		{0.3, column(3, 6, 9)},
		{0.2, column(3, 8)},
		{0.9, column(2, 3, 4, 5, 6, 7, 8, 9, 10)},
		{0.95, column(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)},
		{0.99, column(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("ratio_%g", tc.ratio), func(t *testing.T) {
			t.Parallel()
			assertRows(t, tc.want, collect(t, ints(10).ReduceTo(tc.ratio)))
		})
	}
}

// TestReduceTo_Bounds rejects ratios outside (0,1) before iteration.
func TestReduceTo_Bounds(t *testing.T) {
	t.Parallel()

	for _, r := range []float64{0, 1, -0.5, 1.5, math.NaN(), math.Inf(1)} {
		v := ints(10).ReduceTo(r)
		require.ErrorIs(t, v.Err(), values.ErrInvalidRatio, "ratio %g", r)
		require.ErrorIs(t, v.Err(), values.ErrInvalidArgument, "ratio %g", r)
		_, err := v.Iter()
		require.ErrorIs(t, err, values.ErrInvalidRatio)
		assert.Nil(t, values.ReduceIndices(10, r))
	}
}

// TestReduceTo_Empty reduces an empty source to empty.
func TestReduceTo_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, collect(t, values.Column().ReduceTo(0.5)))
	assert.Empty(t, collect(t, values.Empty().ReduceTo(0.1)))
	assert.Empty(t, values.ReduceIndices(0, 0.5))
}

// TestReduceTo_Sweep checks structural properties of the selection for many
// (N, ratio) pairs against the index preview.
func TestReduceTo_Sweep(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 40; n++ {
		for step := 1; step < 100; step += 7 {
			ratio := float64(step) / 100
			idx := values.ReduceIndices(n, ratio)
			k := int(math.Round(float64(n) * ratio))
			if k < 1 {
				k = 1
			}
			require.Len(t, idx, k, "N=%d ratio=%g", n, ratio)
			for j, i := range idx {
				require.True(t, i >= 0 && i < n, "N=%d ratio=%g index %d", n, ratio, i)
				if j > 0 {
					require.Greater(t, i, idx[j-1], "N=%d ratio=%g strictly increasing", n, ratio)
				}
			}

			got := collect(t, ints(n).ReduceTo(ratio))
			require.Len(t, got, k)
			for j, i := range idx {
				require.Equal(t, t1(i+1), got[j])
			}
		}
	}
}

// TestReduceTo_DynamicSize reduces a source whose length needs iteration.
func TestReduceTo_DynamicSize(t *testing.T) {
	t.Parallel()

	evens := ints(20).Intersect(values.Column(2, 4, 6, 8, 10, 12, 14, 16, 18, 20))
	assertRows(t, column(4, 8, 12, 16, 20), collect(t, evens.ReduceTo(0.5)))
}

// TestReduceTo_PartiallySizedSource counts Concat and Diagonal sources whose
// static size covers only some operands.
func TestReduceTo_PartiallySizedSource(t *testing.T) {
	t.Parallel()

	ones := values.Column(1, 2).Intersect(values.Column(1))
	concat := ones.Unite(values.Column(5))
	got := collect(t, concat.ReduceTo(0.5))
	assertRows(t, column(5), got)
	n, err := concat.ReduceTo(0.5).Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all := ints(4).Intersect(ints(4))
	diag := all.PseudoMultiply(values.Column("a", "b"))
	assertRows(t, rows(t2(2, "b"), t2(4, "b")), collect(t, diag.ReduceTo(0.5)))

	// index-by-index agreement with ReduceIndices over the collected source
	src := collect(t, all.Unite(ints(7)))
	for _, r := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		var want []values.Tuple
		for _, i := range values.ReduceIndices(len(src), r) {
			want = append(want, src[i])
		}
		assertRows(t, want, collect(t, all.Unite(ints(7)).ReduceTo(r)))
	}

	hollow := values.Custom(values.Empty(), values.Empty(), newZip)
	empty := values.Column(1, 2).PseudoMultiply(hollow)
	assert.Empty(t, collect(t, empty.ReduceTo(0.5)))
}

// TestReduceTo_SkipsWithoutForcing leaves skipped lazy cells untouched.
func TestReduceTo_SkipsWithoutForcing(t *testing.T) {
	t.Parallel()

	cnt := newCounter()
	items := make([]values.Value, 10)
	for i := range items {
		items[i] = cnt.lazy(fmt.Sprint(i + 1))
	}
	got := collect(t, values.Column(items...).ReduceTo(0.2))
	assertRows(t, rows(t1("3"), t1("8")), got)
	assert.Equal(t, 2, cnt.total())
}
