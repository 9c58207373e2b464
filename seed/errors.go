// SPDX-License-Identifier: MIT
// Package: tuplex/seed
//
// errors.go — sentinel errors for the seed package.
//
// Error policy:
//   • Generators return these sentinels wrapped with the method name:
//     seedErrorf(MethodRange, ErrBadRange, "step %d", step).
//   • Option constructors (WithX) panic on programmer error instead.
//   • Callers branch with errors.Is; never on message text.

package seed

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative item count.
var ErrBadSize = errors.New("seed: invalid size")

// ErrBadRange indicates an empty or non-terminating numeric range
// (zero step, step pointing away from the bound, max < min).
var ErrBadRange = errors.New("seed: invalid range")

// ErrNeedRandSource indicates a stochastic generator without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("seed: rng is required")

// Method names used as error prefixes.
const (
	MethodIDs     = "IDs"
	MethodRange   = "Range"
	MethodUniform = "Uniform"
	MethodSample  = "Sample"
	MethodLazies  = "Lazies"
)

// seedErrorf returns "<method>: <detail>: <sentinel>", keeping err for errors.Is.
func seedErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
