// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// product.go — Cartesian product (Multiply).
//
// For every left row L and every right row R, in nested-loop order, emit
// L ++ R. An empty operand absorbs: the product has zero rows.
// The right operand is replayed by restoring its start checkpoint once per
// left row, never rebuilt.

package values

// Multiply returns the Cartesian product v × o.
// Complexity: |v|·|o| rows; O(1) buffered rows per operand.
func (v Values) Multiply(o Values) Values {
	return product(v, o)
}

// MultiplyBy multiplies v by Column(items...).
func (v Values) MultiplyBy(items ...Value) Values {
	return product(v, Column(items...))
}

// Multiply folds the operands left to right with the Cartesian product.
// Zero operands yield the empty sequence; one operand is returned as is.
func Multiply(vs ...Values) Values {
	if len(vs) == 0 {
		return Empty()
	}
	acc := vs[0]
	for _, o := range vs[1:] {
		acc = product(acc, o)
	}

	return acc
}

// MultiplyAll is the slice form of Multiply.
//
// Quirk, kept for compatibility with existing callers: a nil operand list
// yields one row holding a single nil value instead of the empty sequence.
// A non-nil empty slice yields the empty sequence.
func MultiplyAll(vs []Values) Values {
	if vs == nil {
		return Row(nil)
	}

	return Multiply(vs...)
}

func product(a, b Values) Values {
	l, r := a.node(), b.node()
	if err := firstErr(l, r); err != nil {
		return failed(err)
	}
	width := unknownWidth
	if l.width != unknownWidth && r.width != unknownWidth {
		width = l.width + r.width
	}

	return Values{n: &node{kind: KindProduct, width: width, kids: []*node{l, r}}}
}

func (c *Cursor) initProduct() {
	left, right := c.kids[0], c.kids[1]
	c.empty = !left.HasNext() || !right.HasNext()
	c.starts = []Checkpoint{right.Snapshot()}
}

func (c *Cursor) hasNextProduct() bool {
	if c.empty {
		return false
	}
	if c.started && c.kids[1].HasNext() {
		return true
	}

	return c.kids[0].HasNext()
}

func (c *Cursor) advanceProduct() {
	left, right := c.kids[0], c.kids[1]
	if !c.started || !right.HasNext() {
		left.Advance()
		if c.started {
			// next left row: replay the right operand from its start
			right.Restore(c.starts[0])
		}
	}
	right.Advance()
}
