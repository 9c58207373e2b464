// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// diagonal.go — parallel pairing with cycling (PseudoMultiply).
//
// Row i is the concatenation of operand_k[i mod |operand_k|] for every
// operand k; the result has max(|operand_k|) rows. Shorter operands wrap to
// their own start. An empty operand absorbs.
//
// Chained diagonals are flattened into one n-ary node so that
// a.PseudoMultiply(b).PseudoMultiply(c) cycles a, b and c independently,
// each modulo its own length.

package values

// PseudoMultiply pairs v and o row by row, cycling the shorter one.
// Complexity: max(|v|,|o|) rows; O(1) buffered rows per operand.
func (v Values) PseudoMultiply(o Values) Values {
	return diagonal(v, o)
}

// PseudoMultiplyBy pairs v with Column(items...).
func (v Values) PseudoMultiplyBy(items ...Value) Values {
	return diagonal(v, Column(items...))
}

// PseudoMultiply pairs all operands at once. Zero operands yield the empty
// sequence; one operand is returned as is.
func PseudoMultiply(vs ...Values) Values {
	switch len(vs) {
	case 0:
		return Empty()
	case 1:
		return vs[0]
	}

	return diagonal(vs...)
}

func diagonal(vs ...Values) Values {
	var kids []*node
	width := 0
	for _, v := range vs {
		n := v.node()
		if n.err != nil {
			return failed(n.err)
		}
		if n.kind == KindDiagonal {
			kids = append(kids, n.kids...)
		} else {
			kids = append(kids, n)
		}
		if width != unknownWidth {
			if n.width == unknownWidth {
				width = unknownWidth
			} else {
				width += n.width
			}
		}
	}

	return Values{n: &node{kind: KindDiagonal, width: width, kids: kids}}
}

func (c *Cursor) initDiagonal() {
	c.starts = make([]Checkpoint, len(c.kids))
	c.wrapped = make([]bool, len(c.kids))
	for i, k := range c.kids {
		if !k.HasNext() {
			c.empty = true
		}
		c.starts[i] = k.Snapshot()
	}
}

// hasNextDiagonal is true while some operand has not yet delivered all of
// its rows once.
func (c *Cursor) hasNextDiagonal() bool {
	if c.empty {
		return false
	}
	for i, k := range c.kids {
		if !c.wrapped[i] && k.HasNext() {
			return true
		}
	}

	return false
}

func (c *Cursor) advanceDiagonal() {
	for i, k := range c.kids {
		if !k.HasNext() {
			k.Restore(c.starts[i])
			c.wrapped[i] = true
		}
		k.Advance()
	}
}
