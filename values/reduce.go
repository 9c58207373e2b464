// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// reduce.go — deterministic down-sampling (ReduceTo).
//
// Selection rule for a source of N rows and ratio r in (0,1):
//
//	k   = round(N·r), half away from zero, clamped to [1, N] when N > 0
//	i_j = ceil(((2j+1)·N − k) / 2k),  j = 0..k-1   (0-based source index)
//
// i_j is the midpoint of the j-th of k equal buckets, shifted down by half a
// row and rounded up, so ties resolve to the lower row. Only k uses floating
// point; the indices are integer arithmetic. Reference (N=10, values 1..10):
//
//	0.5 → 2 4 6 8 10   0.3 → 3 6 9   0.2 → 3 8   0.9 → 2..10   ≥0.95 → 1..10

package values

import "math"

// ReduceTo selects an evenly spaced subsequence of about ratio·|v| rows.
// A ratio outside the open interval (0,1) yields a Values whose Err()
// matches ErrInvalidRatio (and ErrInvalidArgument).
// Complexity: O(N) source advances; skipped rows are never materialized.
func (v Values) ReduceTo(ratio float64) Values {
	n := v.node()
	if n.err != nil {
		return v
	}
	if !(ratio > 0 && ratio < 1) {
		return failed(valuesErrorf("ReduceTo", ErrInvalidRatio, "got %g", ratio))
	}

	return Values{n: &node{kind: KindReduce, width: n.width, kids: []*node{n}, ratio: ratio}}
}

// keepCount returns k for a source of total rows.
func keepCount(total int, ratio float64) int {
	if total <= 0 {
		return 0
	}
	k := int(math.Round(float64(total) * ratio))
	if k < 1 {
		k = 1
	}
	if k > total {
		k = total
	}

	return k
}

// pickIndex returns the 0-based source index of selection j.
func pickIndex(j, total, keep int) int {
	num := (2*j+1)*total - keep
	den := 2 * keep

	return (num + den - 1) / den
}

// ReduceIndices returns the source indices ReduceTo keeps for a source of
// total rows. It is exported for callers that want to preview a reduction.
func ReduceIndices(total int, ratio float64) []int {
	if !(ratio > 0 && ratio < 1) {
		return nil
	}
	k := keepCount(total, ratio)
	out := make([]int, k)
	for j := range out {
		out[j] = pickIndex(j, total, k)
	}

	return out
}

// initReduce sizes the source, statically when the tree allows it,
// otherwise by draining a side cursor that shares the memo table.
func (c *Cursor) initReduce() error {
	src := c.n.kids[0]
	total, ok := src.size()
	if !ok {
		probe, err := newCursor(src, c.memo)
		if err != nil {
			return err
		}
		total = 0 // size() may report a partial count when ok is false
		for probe.HasNext() {
			probe.Advance()
			total++
		}
	}
	kc, err := newCursor(src, c.memo)
	if err != nil {
		return err
	}
	c.kids = []*Cursor{kc}
	c.src = total
	c.keep = keepCount(total, c.n.ratio)

	return nil
}

func (c *Cursor) advanceReduce() {
	target := pickIndex(c.step, c.src, c.keep)
	for c.pos <= target && c.kids[0].HasNext() {
		c.kids[0].Advance()
		c.pos++
	}
	c.step++
}
