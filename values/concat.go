// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// concat.go — ordered concatenation (Unite).
//
// All rows of the left operand, then all rows of the right operand.
// Duplicates are kept and nothing is reordered; an empty operand is the
// identity.

package values

// Unite appends o after v.
func (v Values) Unite(o Values) Values {
	return concat(v, o)
}

// UniteWith appends Column(items...) after v.
func (v Values) UniteWith(items ...Value) Values {
	return concat(v, Column(items...))
}

// Unite concatenates the operands in order. Zero operands yield the empty
// sequence; one operand is returned as is.
func Unite(vs ...Values) Values {
	if len(vs) == 0 {
		return Empty()
	}
	acc := vs[0]
	for _, o := range vs[1:] {
		acc = concat(acc, o)
	}

	return acc
}

func concat(a, b Values) Values {
	l, r := a.node(), b.node()
	if err := firstErr(l, r); err != nil {
		return failed(err)
	}
	width, err := sameWidth("Unite", l, r)
	if err != nil {
		return failed(err)
	}

	return Values{n: &node{kind: KindConcat, width: width, kids: []*node{l, r}}}
}

// sameWidth checks the equal-width precondition of Unite and Intersect.
// Statically empty operands and unknown widths are exempt.
func sameWidth(method string, l, r *node) (int, error) {
	switch {
	case l.staticallyEmpty():
		return r.width, nil
	case r.staticallyEmpty(), r.width == unknownWidth:
		return l.width, nil
	case l.width == unknownWidth:
		return r.width, nil
	case l.width != r.width:
		return unknownWidth, valuesErrorf(method, ErrWidthMismatch, "width %d vs %d", l.width, r.width)
	}

	return l.width, nil
}

func (c *Cursor) advanceConcat() {
	if c.kids[0].HasNext() {
		c.kids[0].Advance()
		c.pos = 0

		return
	}
	c.kids[1].Advance()
	c.pos = 1
}
