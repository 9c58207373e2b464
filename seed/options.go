// SPDX-License-Identifier: MIT
// Package: tuplex/seed
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order,
//     last wins.
//   • Option constructors validate and panic on meaningless input.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package seed

import "math/rand"

// Option customizes a generator by mutating its config before use.
type Option func(*config)

// config aggregates all generator knobs. Passed by value to generators.
type config struct {
	idFn IDFn       // index -> label
	rng  *rand.Rand // nil means "no randomness"
}

// newConfig applies opts over deterministic defaults.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		idFn: DecimalIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the label scheme used by IDs. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("seed: WithIDScheme(nil)")
	}

	return func(c *config) {
		c.idFn = fn
	}
}

// WithPrefix is shorthand for WithIDScheme(PrefixIDFn(prefix)).
func WithPrefix(prefix string) Option {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithRand provides an explicit RNG for stochastic generators. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seed: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
