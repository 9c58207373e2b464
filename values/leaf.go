// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// leaf.go — explicit sequences: Column, Row, Matrix, Empty.
//
// Leaves copy their input so later mutation of the caller's slices cannot
// leak into an already-built sequence.

package values

// Column returns N rows of width 1, one item per row, in argument order.
// Column() is a valid zero-row sequence of width 1.
// Complexity: O(N) time and space.
func Column(items ...Value) Values {
	rows := make([]Tuple, len(items))
	for i, it := range items {
		rows[i] = Tuple{it}
	}

	return Values{n: &node{kind: KindLeaf, width: 1, rows: rows}}
}

// Row returns exactly one row of width N holding items in order.
// Row() is a single row of width 0, the identity of Multiply.
// Complexity: O(N) time and space.
func Row(items ...Value) Values {
	t := make(Tuple, len(items))
	copy(t, items)

	return Values{n: &node{kind: KindLeaf, width: len(items), rows: []Tuple{t}}}
}

// Matrix returns one row per input row. All rows must share one width;
// ragged input yields a Values whose Err() matches ErrWidthMismatch.
// A 0×0 matrix is the empty sequence.
// Complexity: O(R·C) time and space.
func Matrix(rows [][]Value) Values {
	if len(rows) == 0 {
		return Empty()
	}
	width := len(rows[0])
	out := make([]Tuple, len(rows))
	for i, r := range rows {
		if len(r) != width {
			return failed(valuesErrorf("Matrix", ErrWidthMismatch, "row %d has width %d, want %d", i, len(r), width))
		}
		t := make(Tuple, width)
		copy(t, r)
		out[i] = t
	}

	return Values{n: &node{kind: KindLeaf, width: width, rows: out}}
}

// Empty returns the zero-row sequence. It is the identity of Unite and the
// absorbing element of Multiply, PseudoMultiply and Intersect.
func Empty() Values {
	return Values{n: emptyNode}
}
