// SPDX-License-Identifier: MIT
// Package: tuplex/dsl
//
// errors.go — sentinel errors for document loading and building.

package dsl

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates malformed YAML or an expression that is not exactly
	// one known operator.
	ErrSyntax = errors.New("dsl: syntax error")

	// ErrUnknownRef indicates a ref naming no entry of defs.
	ErrUnknownRef = errors.New("dsl: unknown ref")

	// ErrRefCycle indicates defs that reference themselves, directly or not.
	ErrRefCycle = errors.New("dsl: ref cycle")

	// ErrNoRoot indicates a document without a root expression.
	ErrNoRoot = errors.New("dsl: no root")
)

// syntaxErrorf returns "line N: <detail>: dsl: syntax error".
func syntaxErrorf(line int, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrSyntax)
}
