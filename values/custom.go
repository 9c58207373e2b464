// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// custom.go — extension node with caller-supplied pairwise logic.
//
// The engine gives the extension read/write access to both operand cursors
// and applies no combination rule of its own. The extension is responsible
// for honoring the iteration protocol; if it keeps state beyond the operand
// cursors and may be nested under Multiply or PseudoMultiply, it should
// implement Checkpointer.

package values

// Extension implements advancement for a Custom node.
type Extension interface {
	// HasNext reports whether Advance can produce another row. Pure query.
	HasNext() bool
	// Advance moves the operands as needed and returns the new current row.
	Advance() Tuple
}

// Checkpointer lets an Extension save and restore private state alongside
// the operand cursors.
type Checkpointer interface {
	Checkpoint() any
	Rollback(state any)
}

// Pair gives an extension access to its two operand cursors. Extensions
// usually embed it.
type Pair struct {
	left, right *Cursor
}

// Left returns the left operand cursor.
func (p Pair) Left() *Cursor { return p.left }

// Right returns the right operand cursor.
func (p Pair) Right() *Cursor { return p.right }

// Combiner builds a fresh Extension for every cursor of a Custom node.
type Combiner func(p Pair) Extension

// Custom returns a node combining left and right with c.
// A nil c yields a Values whose Err() matches ErrNilCombiner.
func Custom(left, right Values, c Combiner) Values {
	l, r := left.node(), right.node()
	if err := firstErr(l, r); err != nil {
		return failed(err)
	}
	if c == nil {
		return failed(valuesErrorf("Custom", ErrNilCombiner, ""))
	}

	return Values{n: &node{kind: KindCustom, width: unknownWidth, kids: []*node{l, r}, combiner: c}}
}

// Combine is the method form of Custom.
func (v Values) Combine(o Values, c Combiner) Values {
	return Custom(v, o, c)
}

func (c *Cursor) initCustom() error {
	c.ext = c.n.combiner(Pair{left: c.kids[0], right: c.kids[1]})
	if c.ext == nil {
		return valuesErrorf("Custom", ErrNilCombiner, "combiner returned nil extension")
	}

	return nil
}
