// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// types.go — Value, Tuple, Lazy, Kind and the immutable Values handle.
//
// Design:
//   • A Values is a handle on one node of a composition tree. Nodes are never
//     mutated after construction; operators return new nodes that reference
//     their operands, so one Values may be shared by many parents.
//   • Node kinds form a closed set dispatched with a switch (cursor.go).
//     The only interface-based dispatch is the Custom extension (custom.go).
//   • The zero Values is the empty sequence.

package values

import (
	"fmt"
	"reflect"
	"strings"
)

// Value is an opaque cell value. A cell may hold a *Lazy, which is forced
// when the row is read through a Cursor.
type Value = any

// Tuple is one fixed-width row of values.
type Tuple []Value

// Equal reports whether t and o have the same length and deeply equal
// elements at every position.
// Complexity: O(width) comparisons.
func (t Tuple) Equal(o Tuple) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if !reflect.DeepEqual(t[i], o[i]) {
			return false
		}
	}

	return true
}

// Concat returns a fresh tuple holding t followed by o.
func (t Tuple) Concat(o Tuple) Tuple {
	out := make(Tuple, 0, len(t)+len(o))
	out = append(out, t...)

	return append(out, o...)
}

// String renders the tuple as "(v1, v2, ...)".
func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = fmt.Sprint(v)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// Lazy is a deferred single-value computation. Without a cache ancestor a
// Lazy is forced once per visited row position; under Cache it is forced at
// most once, ever.
type Lazy struct {
	fn func() Value
}

// NewLazy wraps fn as a lazy cell. A nil fn produces nil when forced.
func NewLazy(fn func() Value) *Lazy {
	return &Lazy{fn: fn}
}

// Force runs the factory and returns its value.
func (l *Lazy) Force() Value {
	if l == nil || l.fn == nil {
		return nil
	}

	return l.fn()
}

// Kind tags the variant of a composition node.
type Kind uint8

const (
	// KindLeaf is an explicit list of rows (Column, Row, Matrix, Empty).
	KindLeaf Kind = iota
	// KindProduct is the Cartesian product of two operands.
	KindProduct
	// KindDiagonal pairs operands row by row, cycling the shorter ones.
	KindDiagonal
	// KindConcat appends the right operand after the left.
	KindConcat
	// KindIntersect keeps left rows that occur in the right operand.
	KindIntersect
	// KindCustom delegates advancement to a caller-supplied Extension.
	KindCustom
	// KindReduce deterministically down-samples its source.
	KindReduce
	// KindCache memoizes lazy cells of its source.
	KindCache
)

var kindNames = [...]string{
	KindLeaf:      "leaf",
	KindProduct:   "product",
	KindDiagonal:  "diagonal",
	KindConcat:    "concat",
	KindIntersect: "intersect",
	KindCustom:    "custom",
	KindReduce:    "reduce",
	KindCache:     "cache",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// unknownWidth marks nodes whose row width cannot be derived statically.
const unknownWidth = -1

// node is one immutable vertex of a composition tree.
type node struct {
	kind  Kind
	width int   // row width, unknownWidth if not derivable
	err   error // sticky construction error

	rows     []Tuple  // KindLeaf
	kids     []*node  // operands; Diagonal may hold more than two
	ratio    float64  // KindReduce
	combiner Combiner // KindCustom
	memo     *memo    // KindCache
}

// emptyNode backs the zero Values.
var emptyNode = &node{kind: KindLeaf, width: unknownWidth}

// Values is an immutable, shareable sequence of tuples defined either
// explicitly or as a composition of other sequences.
type Values struct {
	n *node
}

// node returns the backing node, substituting the shared empty leaf for the
// zero Values.
func (v Values) node() *node {
	if v.n == nil {
		return emptyNode
	}

	return v.n
}

// Err returns the sticky construction error, if any.
func (v Values) Err() error {
	return v.node().err
}

// Kind reports the variant of the root node.
func (v Values) Kind() Kind {
	return v.node().kind
}

// Width reports the row width, or -1 when it cannot be derived without
// iterating (empty matrix, custom node).
func (v Values) Width() int {
	return v.node().width
}

// failed builds an erroneous Values carrying err.
func failed(err error) Values {
	return Values{n: &node{kind: KindLeaf, width: unknownWidth, err: err}}
}

// firstErr returns the first sticky error among ns.
func firstErr(ns ...*node) error {
	for _, n := range ns {
		if n.err != nil {
			return n.err
		}
	}

	return nil
}

// size returns the number of rows when it is derivable from the tree shape
// alone. Intersect and Custom nodes need iteration, so ok is false.
func (n *node) size() (count int, ok bool) {
	switch n.kind {
	case KindLeaf:
		return len(n.rows), true
	case KindProduct:
		l, lok := n.kids[0].size()
		r, rok := n.kids[1].size()
		if (lok && l == 0) || (rok && r == 0) {
			return 0, true
		}
		if !lok || !rok {
			return 0, false
		}

		return l * r, true
	case KindDiagonal:
		longest, known := 0, true
		for _, k := range n.kids {
			s, sok := k.size()
			if sok && s == 0 {
				return 0, true
			}
			if !sok {
				known = false

				continue
			}
			if s > longest {
				longest = s
			}
		}

		return longest, known
	case KindConcat:
		l, lok := n.kids[0].size()
		r, rok := n.kids[1].size()

		return l + r, lok && rok
	case KindIntersect:
		l, lok := n.kids[0].size()
		r, rok := n.kids[1].size()
		if (lok && l == 0) || (rok && r == 0) {
			return 0, true
		}

		return 0, false
	case KindReduce:
		s, sok := n.kids[0].size()
		if !sok {
			return 0, false
		}

		return keepCount(s, n.ratio), true
	case KindCache:
		return n.kids[0].size()
	default:
		return 0, false
	}
}

// staticallyEmpty reports whether n is known to produce no rows.
func (n *node) staticallyEmpty() bool {
	s, ok := n.size()

	return ok && s == 0
}
