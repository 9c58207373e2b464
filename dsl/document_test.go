// SPDX-License-Identifier: MIT

package dsl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tuplex/dsl"
	"github.com/katalvlaran/tuplex/seed"
	"github.com/katalvlaran/tuplex/values"
)

func build(t *testing.T, src string) []values.Tuple {
	t.Helper()
	doc, err := dsl.Parse([]byte(src))
	require.NoError(t, err)
	v, err := doc.Build()
	require.NoError(t, err)
	rows, err := v.Collect()
	require.NoError(t, err)

	return rows
}

func TestBuild_Operators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []values.Tuple
	}{
		{
			name: "Column",
			src:  `root: {column: [a, 1, 2.5, true, null]}`,
			want: []values.Tuple{{"a"}, {1}, {2.5}, {true}, {nil}},
		},
		{
			name: "Row",
			src:  `root: {row: [a, 1]}`,
			want: []values.Tuple{{"a", 1}},
		},
		{
			name: "Matrix",
			src:  `root: {matrix: [[a, 1], [b, 2]]}`,
			want: []values.Tuple{{"a", 1}, {"b", 2}},
		},
		{
			name: "Multiply",
			src:  `root: {multiply: [{column: [a, b]}, {column: [1, 2]}]}`,
			want: []values.Tuple{{"a", 1}, {"a", 2}, {"b", 1}, {"b", 2}},
		},
		{
			name: "Diagonal",
			src:  `root: {diagonal: [{column: [a, b]}, {column: [1, 2, 3]}]}`,
			want: []values.Tuple{{"a", 1}, {"b", 2}, {"a", 3}},
		},
		{
			name: "Unite",
			src:  `root: {unite: [{column: [a]}, {column: [b, c]}]}`,
			want: []values.Tuple{{"a"}, {"b"}, {"c"}},
		},
		{
			name: "Intersect",
			src:  `root: {intersect: [{column: [a, b, c, b]}, {column: [b, c]}]}`,
			want: []values.Tuple{{"b"}, {"c"}, {"b"}},
		},
		{
			name: "Reduce",
			src:  `root: {reduce: {ratio: 0.5, of: {range: {from: 1, to: 11}}}}`,
			want: []values.Tuple{{2}, {4}, {6}, {8}, {10}},
		},
		{
			name: "Cache",
			src:  `root: {cache: {column: [x]}}`,
			want: []values.Tuple{{"x"}},
		},
		{
			name: "IDs",
			src:  `root: {ids: {n: 3, scheme: excel}}`,
			want: []values.Tuple{{"A"}, {"B"}, {"C"}},
		},
		{
			name: "IDsPrefix",
			src:  `root: {ids: {n: 2, prefix: u}}`,
			want: []values.Tuple{{"u0"}, {"u1"}},
		},
		{
			name: "RangeDescendingDefaultStep",
			src:  `root: {range: {from: 3, to: 0}}`,
			want: []values.Tuple{{3}, {2}, {1}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, build(t, tc.src))
		})
	}
}

func TestBuild_DefsAndRefs(t *testing.T) {
	t.Parallel()

	src := `
root: grid
defs:
  users: {column: [alice, bob]}
  roles: {column: [admin, guest]}
  grid:  {multiply: [{ref: users}, {ref: roles}]}
`
	assert.Equal(t, []values.Tuple{
		{"alice", "admin"}, {"alice", "guest"},
		{"bob", "admin"}, {"bob", "guest"},
	}, build(t, src))

	doc, err := dsl.Parse([]byte(src))
	require.NoError(t, err)
	v, err := doc.BuildDef("roles")
	require.NoError(t, err)
	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestBuild_SharedCache(t *testing.T) {
	t.Parallel()

	src := `
root: {unite: [{ref: fx}, {ref: fx}]}
defs:
  fx: {cache: {matrix: [[a, 1], [b, 2]]}}
`
	doc, err := dsl.Parse([]byte(src))
	require.NoError(t, err)
	v, err := doc.Build()
	require.NoError(t, err)
	require.Equal(t, values.KindConcat, v.Kind())

	rows, err := v.Collect()
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{"BadYAML", "root: [", dsl.ErrSyntax},
		{"UnknownTopLevel", "rooot: x", dsl.ErrSyntax},
		{"TwoKeys", "root: {column: [a], row: [b]}", dsl.ErrSyntax},
		{"UnknownOp", "root: {zip: []}", dsl.ErrSyntax},
		{"ColumnNotList", "root: {column: a}", dsl.ErrSyntax},
		{"ReduceMissingOf", "root: {reduce: {ratio: 0.5}}", dsl.ErrSyntax},
		{"UnknownScheme", "root: {ids: {n: 2, scheme: roman}}", dsl.ErrSyntax},
		{"NestedError", "root: {multiply: [{column: [a]}, {nope: 1}]}", dsl.ErrSyntax},
		{"ReduceUnknownField", "root: {reduce: {ratio: 0.5, of: {column: [1]}, ratoi: 0.1}}", dsl.ErrSyntax},
		{"ReduceNotMapping", "root: {reduce: [0.5]}", dsl.ErrSyntax},
		{"RangeUnknownField", "root: {range: {from: 0, to: 3, stpe: 2}}", dsl.ErrSyntax},
		{"IDsUnknownField", "root: {ids: {n: 2, prefx: u}}", dsl.ErrSyntax},
		{"IDsNotMapping", "root: {ids: 3}", dsl.ErrSyntax},
		{"MultiplyBadElement", "root: {multiply: [3]}", dsl.ErrSyntax},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := dsl.Load(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want error
	}{
		{"Empty", "", dsl.ErrNoRoot},
		{"DefsOnly", "defs: {a: {column: [1]}}", dsl.ErrNoRoot},
		{"UnknownRef", "root: missing", dsl.ErrUnknownRef},
		{"SelfCycle", "root: a\ndefs:\n  a: {unite: [{ref: a}]}", dsl.ErrRefCycle},
		{"Cycle", "root: a\ndefs:\n  a: {ref: b}\n  b: {cache: {ref: a}}", dsl.ErrRefCycle},
		{"BadRatio", "root: {reduce: {ratio: 1.5, of: {column: [1]}}}", values.ErrInvalidRatio},
		{"WidthMismatch", "root: {unite: [{column: [1]}, {row: [1, 2]}]}", values.ErrWidthMismatch},
		{"BadRange", "root: {range: {from: 0, to: 3, step: 0}}", seed.ErrBadRange},
		{"NegativeIDs", "root: {ids: {n: -1}}", seed.ErrBadSize},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := dsl.Parse([]byte(tc.src))
			require.NoError(t, err)
			_, err = doc.Build()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_CycleMessage(t *testing.T) {
	t.Parallel()

	doc, err := dsl.Parse([]byte("root: a\ndefs:\n  a: {ref: b}\n  b: {ref: a}"))
	require.NoError(t, err)
	_, err = doc.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a -> b -> a")
}

func TestLoad_UnknownFieldNamed(t *testing.T) {
	t.Parallel()

	_, err := dsl.Parse([]byte("root: {range: {from: 0, to: 3, stpe: 2}}"))
	require.ErrorIs(t, err, dsl.ErrSyntax)
	assert.Contains(t, err.Error(), `range: unknown field "stpe"`)
}
