// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// cache.go — memoizing wrapper (Cache / CreateCache).
//
// The memo table belongs to the cache node, not to a cursor: every cursor
// built from the cached Values, and every replay inside it, reads the same
// table. Cells are keyed by their originating leaf and (row, column), so a
// leaf shared by several operands is still forced once per cell.

package values

import "sync"

// Cache wraps v so that every lazy cell reachable from it is forced at most
// once, across operand replays and across independent iterations. The
// iterated content is identical to v's.
func (v Values) Cache() Values {
	n := v.node()
	if n.err != nil {
		return v
	}

	return Values{n: &node{kind: KindCache, width: n.width, kids: []*node{n}, memo: newMemo()}}
}

// CreateCache is an alias of Cache.
func (v Values) CreateCache() Values {
	return v.Cache()
}

// cellKey identifies one cell of one leaf.
type cellKey struct {
	leaf     *node
	row, col int
}

// memo is the write-once table of forced cells. The mutex keeps the table
// consistent if a cached Values is iterated from several goroutines; the
// factory itself runs outside the lock, so concurrent first visits may force
// a cell more than once.
type memo struct {
	mu    sync.Mutex
	cells map[cellKey]Value
}

func newMemo() *memo {
	return &memo{cells: make(map[cellKey]Value)}
}

// force returns the memoized value for k, forcing lz on first request.
func (m *memo) force(k cellKey, lz *Lazy) Value {
	m.mu.Lock()
	v, ok := m.cells[k]
	m.mu.Unlock()
	if ok {
		return v
	}
	v = lz.Force()
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.cells[k]; ok {
		return prev
	}
	m.cells[k] = v

	return v
}

// len reports the number of memoized cells.
func (m *memo) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.cells)
}

// CachedCells reports how many lazy cells the root cache node of v has
// memoized so far, or 0 when v is not a cache node.
func (v Values) CachedCells() int {
	n := v.node()
	if n.kind != KindCache {
		return 0
	}

	return n.memo.len()
}
