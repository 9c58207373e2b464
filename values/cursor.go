// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// cursor.go — the iteration protocol shared by every node kind.
//
// Contract:
//   • HasNext is a pure query; Advance moves by one row and is a no-op once
//     HasNext is false; Current returns the row at the cursor (nil before the
//     first Advance).
//   • Snapshot/Restore capture cursor positions only. Composite cursors use
//     them to replay an operand from its start instead of rebuilding it, so a
//     cache memo shared by the subtree keeps its entries.
//   • Leaf rows are materialized on the first Current call for a position;
//     a Restore counts as a new visit.
//   • Cursors are not safe for concurrent use.

package values

import "slices"

// Cursor walks one composition tree. Obtain one with Values.Iter.
type Cursor struct {
	n    *node
	memo *memo // nearest Cache ancestor's table, nil when uncached
	kids []*Cursor

	started bool
	pos     int   // leaf: rows consumed; concat: active side; reduce: source rows consumed
	step    int   // reduce: selections emitted
	cur     Tuple // leaf: materialized row; intersect/custom: emitted row
	have    bool  // leaf: cur is valid for pos

	empty   bool         // product/diagonal: an operand had no rows
	starts  []Checkpoint // product/diagonal: operand start positions
	wrapped []bool       // diagonal: operand has cycled at least once

	index *rowIndex // intersect: materialized right operand
	next  Tuple     // intersect: prefetched matching row
	ahead bool      // intersect: next is valid

	keep int // reduce: rows to select
	src  int // reduce: source length

	ext Extension // custom
}

// Checkpoint is an opaque copy of a cursor position. It is only meaningful
// for the cursor (or an identically shaped cursor) that produced it.
type Checkpoint struct {
	started bool
	pos     int
	step    int
	cur     Tuple
	next    Tuple
	ahead   bool
	wrapped []bool
	kids    []Checkpoint
	ext     any
}

// Iter builds a fresh cursor over v. It fails with v's sticky error, or
// with ErrNilCombiner when a Custom node's combiner returns nil.
func (v Values) Iter() (*Cursor, error) {
	n := v.node()
	if n.err != nil {
		return nil, n.err
	}

	return newCursor(n, nil)
}

// newCursor builds the cursor tree for n. Cache nodes are transparent: they
// hand their memo table down and return the operand's cursor.
func newCursor(n *node, m *memo) (*Cursor, error) {
	if n.kind == KindCache {
		return newCursor(n.kids[0], n.memo)
	}
	c := &Cursor{n: n, memo: m}
	switch n.kind {
	case KindLeaf:
		return c, nil
	case KindIntersect:
		if err := c.initIntersect(); err != nil {
			return nil, err
		}

		return c, nil
	case KindReduce:
		if err := c.initReduce(); err != nil {
			return nil, err
		}

		return c, nil
	}

	c.kids = make([]*Cursor, len(n.kids))
	for i, k := range n.kids {
		kc, err := newCursor(k, m)
		if err != nil {
			return nil, err
		}
		c.kids[i] = kc
	}
	switch n.kind {
	case KindProduct:
		c.initProduct()
	case KindDiagonal:
		c.initDiagonal()
	case KindCustom:
		if err := c.initCustom(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// HasNext reports whether Advance would produce another row.
func (c *Cursor) HasNext() bool {
	switch c.n.kind {
	case KindLeaf:
		return c.pos < len(c.n.rows)
	case KindProduct:
		return c.hasNextProduct()
	case KindDiagonal:
		return c.hasNextDiagonal()
	case KindConcat:
		return c.kids[0].HasNext() || c.kids[1].HasNext()
	case KindIntersect:
		return c.ahead
	case KindCustom:
		return c.ext.HasNext()
	case KindReduce:
		return c.step < c.keep
	}

	return false
}

// Advance moves the cursor to the next row. It does nothing when HasNext
// is false.
func (c *Cursor) Advance() {
	if !c.HasNext() {
		return
	}
	switch c.n.kind {
	case KindLeaf:
		c.pos++
		c.have = false
	case KindProduct:
		c.advanceProduct()
	case KindDiagonal:
		c.advanceDiagonal()
	case KindConcat:
		c.advanceConcat()
	case KindIntersect:
		c.advanceIntersect()
	case KindCustom:
		c.cur = c.ext.Advance()
	case KindReduce:
		c.advanceReduce()
	}
	c.started = true
}

// Current returns the row at the cursor, or nil before the first Advance.
// The returned tuple must not be modified.
func (c *Cursor) Current() Tuple {
	if !c.started {
		return nil
	}
	switch c.n.kind {
	case KindLeaf:
		if !c.have {
			c.cur = c.materialize(c.pos - 1)
			c.have = true
		}

		return c.cur
	case KindProduct:
		return c.kids[0].Current().Concat(c.kids[1].Current())
	case KindDiagonal:
		var out Tuple
		for _, k := range c.kids {
			out = append(out, k.Current()...)
		}

		return out
	case KindConcat:
		return c.kids[c.pos].Current()
	case KindReduce:
		return c.kids[0].Current()
	}

	return c.cur
}

// Remove is not supported; the protocol is read-only.
func (c *Cursor) Remove() error {
	return valuesErrorf("Remove", ErrUnsupportedOperation, "")
}

// Snapshot captures the cursor position, recursively.
// Complexity: O(nodes in the cursor tree).
func (c *Cursor) Snapshot() Checkpoint {
	cp := Checkpoint{
		started: c.started,
		pos:     c.pos,
		step:    c.step,
		next:    c.next,
		ahead:   c.ahead,
		wrapped: slices.Clone(c.wrapped),
	}
	if c.n.kind == KindIntersect || c.n.kind == KindCustom {
		cp.cur = c.cur
	}
	if len(c.kids) > 0 {
		cp.kids = make([]Checkpoint, len(c.kids))
		for i, k := range c.kids {
			cp.kids[i] = k.Snapshot()
		}
	}
	if ck, ok := c.ext.(Checkpointer); ok {
		cp.ext = ck.Checkpoint()
	}

	return cp
}

// Restore rewinds the cursor to cp. Leaf rows are re-materialized on the
// next Current call.
func (c *Cursor) Restore(cp Checkpoint) {
	c.started = cp.started
	c.pos = cp.pos
	c.step = cp.step
	c.next = cp.next
	c.ahead = cp.ahead
	if c.wrapped != nil {
		copy(c.wrapped, cp.wrapped)
	}
	switch c.n.kind {
	case KindLeaf:
		c.cur, c.have = nil, false
	case KindIntersect, KindCustom:
		c.cur = cp.cur
	}
	for i, k := range c.kids {
		if i < len(cp.kids) {
			k.Restore(cp.kids[i])
		}
	}
	if ck, ok := c.ext.(Checkpointer); ok {
		ck.Rollback(cp.ext)
	}
}

// materialize copies leaf row i, forcing lazy cells through the memo when
// one is attached.
func (c *Cursor) materialize(i int) Tuple {
	row := c.n.rows[i]
	out := make(Tuple, len(row))
	for col, v := range row {
		lz, ok := v.(*Lazy)
		if !ok {
			out[col] = v

			continue
		}
		if c.memo != nil {
			out[col] = c.memo.force(cellKey{leaf: c.n, row: i, col: col}, lz)
		} else {
			out[col] = lz.Force()
		}
	}

	return out
}
