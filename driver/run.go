// SPDX-License-Identifier: MIT
// Package: tuplex/driver
//
// run.go — feed every row of a values.Values into a test callback.
//
// Run binds row positions to callback parameters through reflect: row value i
// becomes argument i. A nil value is passed as the parameter's zero value.
// Variadic callbacks accept any width at least their fixed parameter count.

package driver

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/katalvlaran/tuplex/values"
)

// Method names used as error prefixes.
const (
	MethodRun  = "Run"
	MethodEach = "Each"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Failure records one failing row.
type Failure struct {
	Index int          // zero-based row position
	Row   values.Tuple // the row passed to the callback
	Err   error
}

func (f Failure) Error() string {
	return fmt.Sprintf("row %d %v: %v", f.Index, f.Row, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Report summarizes a run.
type Report struct {
	Rows     int // callback invocations
	Failures []Failure
}

// Err joins all failures, or returns nil when every row passed.
func (r Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}

	return errors.Join(errs...)
}

// Run calls fn once per row of v, spreading the row over fn's parameters.
// fn may return nothing or a single error.
//
//	driver.Run(values.Column("a", "b").MultiplyBy(1, 2), func(s string, n int) error { ... })
//
// Complexity: O(rows·width) reflection calls.
func Run(v values.Values, fn any, opts ...Option) (Report, error) {
	if err := v.Err(); err != nil {
		return Report{}, fmt.Errorf("%s: %w", MethodRun, err)
	}
	call, err := bind(v.Width(), fn)
	if err != nil {
		return Report{}, err
	}

	return drive(MethodRun, v, call, newConfig(opts...))
}

// Each calls fn once per row of v with the whole row.
func Each(v values.Values, fn func(values.Tuple) error, opts ...Option) (Report, error) {
	if fn == nil {
		return Report{}, driverErrorf(MethodEach, ErrNotFunc, "nil")
	}

	return drive(MethodEach, v, fn, newConfig(opts...))
}

// bind validates fn's signature once and returns a row-level caller.
func bind(width int, fn any) (func(values.Tuple) error, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, driverErrorf(MethodRun, ErrNotFunc, "%T", fn)
	}
	ft := fv.Type()
	switch {
	case ft.NumOut() == 0:
	case ft.NumOut() == 1 && ft.Out(0) == errorType:
	default:
		return nil, driverErrorf(MethodRun, ErrBadReturn, "%s", ft)
	}
	if width >= 0 && !arityFits(ft, width) {
		return nil, driverErrorf(MethodRun, ErrArity, "%s for width %d", ft, width)
	}

	return func(row values.Tuple) error {
		if !arityFits(ft, len(row)) {
			return driverErrorf(MethodRun, ErrArity, "%s for width %d", ft, len(row))
		}
		args := make([]reflect.Value, len(row))
		for i, x := range row {
			pt := paramType(ft, i)
			if x == nil {
				args[i] = reflect.Zero(pt)

				continue
			}
			xv := reflect.ValueOf(x)
			if !xv.Type().AssignableTo(pt) {
				return driverErrorf(MethodRun, ErrArgType, "arg %d: %T to %s", i, x, pt)
			}
			args[i] = xv
		}
		out := fv.Call(args)
		if len(out) == 1 && !out[0].IsNil() {
			return out[0].Interface().(error)
		}

		return nil
	}, nil
}

func arityFits(ft reflect.Type, width int) bool {
	if ft.IsVariadic() {
		return width >= ft.NumIn()-1
	}

	return width == ft.NumIn()
}

// paramType returns the type receiving argument i, unrolling a variadic tail.
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}

	return ft.In(i)
}

func drive(method string, v values.Values, call func(values.Tuple) error, cfg config) (Report, error) {
	var rep Report
	c, err := v.Iter()
	if err != nil {
		return rep, fmt.Errorf("%s: %w", method, err)
	}
	for c.HasNext() {
		if cfg.limit > 0 && rep.Rows == cfg.limit {
			break
		}
		c.Advance()
		row := c.Current()
		idx := rep.Rows
		rep.Rows++

		err := protect(call, row)
		if errors.Is(err, ErrArity) || errors.Is(err, ErrArgType) {
			return rep, err
		}
		if err == nil {
			cfg.log.Debug("row passed", zap.Int("row", idx), zap.Stringer("values", row))

			continue
		}
		f := Failure{Index: idx, Row: row, Err: err}
		rep.Failures = append(rep.Failures, f)
		cfg.log.Warn("row failed", zap.Int("row", idx), zap.Stringer("values", row), zap.Error(err))
		if cfg.failFast {
			return rep, f
		}
	}
	cfg.log.Info("run finished", zap.String("method", method), zap.Int("rows", rep.Rows), zap.Int("failures", len(rep.Failures)))

	return rep, nil
}

// protect runs call, turning a panic into an ErrCallbackPanic error.
func protect(call func(values.Tuple) error, row values.Tuple) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanic, r)
		}
	}()

	return call(row)
}
