// SPDX-License-Identifier: MIT
// Package: tuplex/driver
//
// options.go — functional options for Run and Each.

package driver

import "go.uber.org/zap"

// Option customizes a run.
type Option func(*config)

type config struct {
	log      *zap.Logger
	failFast bool
	limit    int // 0 means all rows
}

func newConfig(opts ...Option) config {
	cfg := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger logs one debug entry per row and an info summary. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("driver: WithLogger(nil)")
	}

	return func(c *config) {
		c.log = l
	}
}

// WithFailFast stops at the first failing row and returns its error.
func WithFailFast() Option {
	return func(c *config) {
		c.failFast = true
	}
}

// WithLimit stops after n rows. Panics if n < 1.
func WithLimit(n int) Option {
	if n < 1 {
		panic("driver: WithLimit requires n ≥ 1")
	}

	return func(c *config) {
		c.limit = n
	}
}
