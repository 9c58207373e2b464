// SPDX-License-Identifier: MIT
// Package: tuplex/seed
//
// generators.go — seed columns for the values algebra.
//
// Every generator returns a single-column values.Values. Deterministic
// generators ignore the RNG; stochastic ones require WithSeed or WithRand and
// return ErrNeedRandSource otherwise. Same inputs, options and seed ⇒ same
// column.

package seed

import (
	"sort"

	"github.com/katalvlaran/tuplex/values"
)

// IDs returns a column of n labels rendered by the configured IDFn
// (decimal by default).
// Complexity: O(n) labels.
func IDs(n int, opts ...Option) (values.Values, error) {
	if n < 0 {
		return values.Values{}, seedErrorf(MethodIDs, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	items := make([]values.Value, n)
	for i := range items {
		items[i] = cfg.idFn(i)
	}

	return values.Column(items...), nil
}

// Range returns the integers from, from+step, ... up to but excluding to.
// from == to yields an empty column. A zero step, or a step that moves away
// from to, is ErrBadRange.
func Range(from, to, step int) (values.Values, error) {
	if step == 0 || (from < to && step < 0) || (from > to && step > 0) {
		return values.Values{}, seedErrorf(MethodRange, ErrBadRange, "from=%d to=%d step=%d", from, to, step)
	}
	var items []values.Value
	for i := from; (step > 0 && i < to) || (step < 0 && i > to); i += step {
		items = append(items, i)
	}

	return values.Column(items...), nil
}

// Uniform returns n floats drawn uniformly from [min, max). min == max
// yields a constant column.
func Uniform(n int, min, max float64, opts ...Option) (values.Values, error) {
	if n < 0 {
		return values.Values{}, seedErrorf(MethodUniform, ErrBadSize, "n=%d", n)
	}
	if max < min {
		return values.Values{}, seedErrorf(MethodUniform, ErrBadRange, "min=%g max=%g", min, max)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return values.Values{}, seedErrorf(MethodUniform, ErrNeedRandSource, "n=%d", n)
	}
	span := max - min
	items := make([]values.Value, n)
	for i := range items {
		items[i] = min + cfg.rng.Float64()*span
	}

	return values.Column(items...), nil
}

// Sample picks n of items without replacement and keeps their original
// relative order.
// Complexity: O(len(items)) for the permutation plus O(n log n) sorting.
func Sample(items []values.Value, n int, opts ...Option) (values.Values, error) {
	if n < 0 || n > len(items) {
		return values.Values{}, seedErrorf(MethodSample, ErrBadSize, "n=%d of %d", n, len(items))
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return values.Values{}, seedErrorf(MethodSample, ErrNeedRandSource, "n=%d", n)
	}
	picked := cfg.rng.Perm(len(items))[:n]
	sort.Ints(picked)
	out := make([]values.Value, n)
	for i, idx := range picked {
		out[i] = items[idx]
	}

	return values.Column(out...), nil
}

// Lazies returns a column of n lazy cells; cell i yields fn(i) when forced.
// Pair it with values.Values.Cache to build each fixture once.
func Lazies(n int, fn func(i int) values.Value) (values.Values, error) {
	if n < 0 {
		return values.Values{}, seedErrorf(MethodLazies, ErrBadSize, "n=%d", n)
	}
	items := make([]values.Value, n)
	for i := range items {
		if fn == nil {
			items[i] = values.NewLazy(nil)

			continue
		}
		i := i
		items[i] = values.NewLazy(func() values.Value { return fn(i) })
	}

	return values.Column(items...), nil
}
