// SPDX-License-Identifier: MIT
// Package values_test holds shared fixtures for the values tests.

package values_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tuplex/values"
)

// rows builds an expected row list from literal tuples.
func rows(ts ...values.Tuple) []values.Tuple {
	return ts
}

// t2 is shorthand for a width-2 tuple.
func t2(a, b values.Value) values.Tuple {
	return values.Tuple{a, b}
}

// t1 is shorthand for a width-1 tuple.
func t1(a values.Value) values.Tuple {
	return values.Tuple{a}
}

// collect drives v to exhaustion and fails the test on a construction error.
func collect(t *testing.T, v values.Values) []values.Tuple {
	t.Helper()
	got, err := v.Collect()
	require.NoError(t, err)

	return got
}

// assertRows compares row lists, printing a go-cmp diff on mismatch.
// nil and empty are treated alike.
func assertRows(t *testing.T, want, got []values.Tuple) {
	t.Helper()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// counter produces lazy cells that record how often they were forced.
type counter struct {
	forced map[string]int
}

func newCounter() *counter {
	return &counter{forced: make(map[string]int)}
}

// lazy returns a cell that yields name and bumps its counter when forced.
func (c *counter) lazy(name string) *values.Lazy {
	return values.NewLazy(func() values.Value {
		c.forced[name]++

		return name
	})
}

// total returns the number of forces across all cells.
func (c *counter) total() int {
	n := 0
	for _, v := range c.forced {
		n += v
	}

	return n
}

// ints returns Column(1..n).
func ints(n int) values.Values {
	items := make([]values.Value, n)
	for i := range items {
		items[i] = i + 1
	}

	return values.Column(items...)
}
