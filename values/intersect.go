// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// intersect.go — row-membership filter (Intersect).
//
// Output is the subsequence of left rows that equal some right row. Left
// order and multiplicity are preserved: a left row that appears twice and
// matches is emitted twice. The right operand is materialized once per
// cursor into a hash-bucketed index; the left operand is streamed with one
// row of look-ahead so HasNext stays a pure query.

package values

import (
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Intersect keeps the rows of v that also occur in o.
// Complexity: O(|o|) to index o, then O(|v|) expected lookups.
func (v Values) Intersect(o Values) Values {
	return intersect(v, o)
}

// Intersect folds the operands left to right. Zero operands yield the empty
// sequence; one operand is returned as is.
func Intersect(vs ...Values) Values {
	if len(vs) == 0 {
		return Empty()
	}
	acc := vs[0]
	for _, o := range vs[1:] {
		acc = intersect(acc, o)
	}

	return acc
}

func intersect(a, b Values) Values {
	l, r := a.node(), b.node()
	if err := firstErr(l, r); err != nil {
		return failed(err)
	}
	if _, err := sameWidth("Intersect", l, r); err != nil {
		return failed(err)
	}

	return Values{n: &node{kind: KindIntersect, width: l.width, kids: []*node{l, r}}}
}

// initIntersect indexes the right operand and prefetches the first match.
// Only the left cursor is kept as a child; the right one is drained here.
func (c *Cursor) initIntersect() error {
	left, err := newCursor(c.n.kids[0], c.memo)
	if err != nil {
		return err
	}
	right, err := newCursor(c.n.kids[1], c.memo)
	if err != nil {
		return err
	}
	c.index = newRowIndex()
	for right.HasNext() {
		right.Advance()
		c.index.add(right.Current())
	}
	c.kids = []*Cursor{left}
	c.seek()

	return nil
}

// seek moves the left cursor to the next matching row, if any.
func (c *Cursor) seek() {
	c.next, c.ahead = nil, false
	left := c.kids[0]
	for left.HasNext() {
		left.Advance()
		row := left.Current()
		if c.index.has(row) {
			c.next, c.ahead = row, true

			return
		}
	}
}

func (c *Cursor) advanceIntersect() {
	c.cur = c.next
	c.seek()
}

// rowIndex is a membership set of tuples. Rows made only of scalar values
// are bucketed by an xxhash digest; any other row goes to a linear list.
// A scalar-only row can never deep-equal a row holding a non-scalar value,
// so each probe checks exactly one of the two stores.
type rowIndex struct {
	buckets map[uint64][]Tuple
	loose   []Tuple
}

func newRowIndex() *rowIndex {
	return &rowIndex{buckets: make(map[uint64][]Tuple)}
}

func (ix *rowIndex) add(t Tuple) {
	if h, ok := hashTuple(t); ok {
		ix.buckets[h] = append(ix.buckets[h], t)

		return
	}
	ix.loose = append(ix.loose, t)
}

func (ix *rowIndex) has(t Tuple) bool {
	candidates := ix.loose
	if h, ok := hashTuple(t); ok {
		candidates = ix.buckets[h]
	}
	for _, o := range candidates {
		if t.Equal(o) {
			return true
		}
	}

	return false
}

// hashTuple digests the dynamic type and value of each scalar cell.
// ok is false when some cell is not a scalar (slice, map, pointer, ...).
func hashTuple(t Tuple) (sum uint64, ok bool) {
	d := xxhash.New()
	for _, v := range t {
		if v == nil {
			_, _ = d.WriteString("<nil>;")

			continue
		}
		rv := reflect.ValueOf(v)
		var repr string
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			f := rv.Float()
			if f == 0 {
				f = 0 // fold -0 into +0, they compare equal
			}
			repr = strconv.FormatFloat(f, 'g', -1, 64)
		case reflect.Bool:
			repr = strconv.FormatBool(rv.Bool())
		case reflect.String:
			repr = rv.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			repr = strconv.FormatInt(rv.Int(), 10)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			repr = strconv.FormatUint(rv.Uint(), 10)
		default:
			return 0, false
		}
		// named types hash by underlying value, never through String or Error
		_, _ = d.WriteString(rv.Type().String())
		_, _ = d.WriteString(":")
		_, _ = d.WriteString(strconv.Itoa(len(repr)))
		_, _ = d.WriteString(":")
		_, _ = d.WriteString(repr)
		_, _ = d.WriteString(";")
	}

	return d.Sum64(), true
}
