// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// api.go — consumption helpers on top of the iteration protocol.

package values

import "iter"

// All yields every row of v in order. It yields nothing when v carries a
// sticky error; check Err first when that matters.
func (v Values) All() iter.Seq[Tuple] {
	return func(yield func(Tuple) bool) {
		c, err := v.Iter()
		if err != nil {
			return
		}
		for c.HasNext() {
			c.Advance()
			if !yield(c.Current()) {
				return
			}
		}
	}
}

// Collect drives v to exhaustion and returns its rows.
// Complexity: O(rows·width) time and space.
func (v Values) Collect() ([]Tuple, error) {
	c, err := v.Iter()
	if err != nil {
		return nil, err
	}
	var out []Tuple
	for c.HasNext() {
		c.Advance()
		out = append(out, c.Current())
	}

	return out, nil
}

// Len returns the number of rows of v. It is O(tree size) when the count
// follows from the tree shape; otherwise v is iterated without reading rows,
// which still forces cells under Intersect and Custom nodes.
func (v Values) Len() (int, error) {
	n := v.node()
	if n.err != nil {
		return 0, n.err
	}
	if s, ok := n.size(); ok {
		return s, nil
	}
	c, err := v.Iter()
	if err != nil {
		return 0, err
	}
	count := 0
	for c.HasNext() {
		c.Advance()
		count++
	}

	return count, nil
}
