// SPDX-License-Identifier: MIT
// Package: tuplex/driver
//
// errors.go — sentinel errors for the driver.
//
// Setup problems (ErrNotFunc, ErrArity, ErrBadReturn, ErrArgType) are
// returned directly from Run and stop the run. Callback errors and panics are
// collected into Report.Failures unless WithFailFast is set.

package driver

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFunc indicates that the callback passed to Run is not a function.
	ErrNotFunc = errors.New("driver: callback is not a func")

	// ErrArity indicates that the callback's parameter count does not match
	// the row width.
	ErrArity = errors.New("driver: callback arity does not match row width")

	// ErrBadReturn indicates a callback returning anything but nothing or a
	// single error.
	ErrBadReturn = errors.New("driver: callback must return nothing or error")

	// ErrArgType indicates a row value not assignable to its parameter.
	ErrArgType = errors.New("driver: row value not assignable to parameter")

	// ErrCallbackPanic wraps a panic recovered from a callback.
	ErrCallbackPanic = errors.New("driver: callback panicked")
)

// driverErrorf returns "<method>: <detail>: <sentinel>".
func driverErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
