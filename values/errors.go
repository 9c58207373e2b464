// SPDX-License-Identifier: MIT
// Package: tuplex/values
//
// errors.go — sentinel errors for the values package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with %w and a method prefix ("ReduceTo: ...").
//   • Operators never panic on user input. Invalid constructions produce a
//     Values whose Err() is non-nil (sticky error), and Iter() refuses it.

package values

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella class for rejected operator arguments.
var ErrInvalidArgument = errors.New("values: invalid argument")

// ErrInvalidRatio indicates a ReduceTo ratio outside the open interval (0,1).
// It wraps ErrInvalidArgument, so both sentinels match with errors.Is.
var ErrInvalidRatio = fmt.Errorf("values: ratio must be in the open interval (0,1): %w", ErrInvalidArgument)

// ErrUnsupportedOperation is returned by Cursor.Remove: the iteration
// protocol is read-only.
var ErrUnsupportedOperation = errors.New("values: unsupported operation")

// ErrWidthMismatch indicates rows of different widths where equal widths are
// required (Concat, Intersect, ragged Matrix input).
var ErrWidthMismatch = fmt.Errorf("values: row width mismatch: %w", ErrInvalidArgument)

// ErrNilCombiner indicates a Custom node built without combination logic, or
// a Combiner that returned a nil Extension.
var ErrNilCombiner = fmt.Errorf("values: nil combiner: %w", ErrInvalidArgument)

// valuesErrorf prefixes a sentinel with the operator name, e.g.
// "Unite: width 1 vs 2: values: row width mismatch: ...".
func valuesErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
