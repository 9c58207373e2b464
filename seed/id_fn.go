// SPDX-License-Identifier: MIT
// Package: tuplex/seed
//
// id_fn.go — label schemes for generated ID columns.
//
// Every scheme is a positional numeral system over its own digit string:
// plain numbering has a zero digit (0, 1, ..., 9, 10), bijective numbering
// does not (A, ..., Z, AA). Negative indices panic.

package seed

import (
	"fmt"
	"strconv"
)

const (
	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
	upperLatin  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// IDFn renders a zero-based index as a label. It must be pure.
type IDFn func(idx int) string

var (
	// DecimalIDFn renders 0, 1, ..., 42.
	DecimalIDFn = positional("decimal", lowerDigits[:10], false)

	// AlphanumericIDFn renders base 36: 10→"a", 36→"10".
	AlphanumericIDFn = positional("alphanumeric", lowerDigits, false)

	// HexIDFn renders lowercase base 16.
	HexIDFn = positional("hex", lowerDigits[:16], false)

	// ExcelColumnIDFn renders spreadsheet column names: 0→"A", 26→"AA".
	ExcelColumnIDFn = positional("excel", upperLatin, true)

	// SymbolIDFn renders one letter A..Z and panics past 25.
	SymbolIDFn = single("symbol", upperLatin)
)

// schemes maps configuration names to IDFn; "" selects decimal.
var schemes = map[string]IDFn{
	"":             DecimalIDFn,
	"decimal":      DecimalIDFn,
	"symbol":       SymbolIDFn,
	"alphanumeric": AlphanumericIDFn,
	"excel":        ExcelColumnIDFn,
	"hex":          HexIDFn,
}

// SchemeByName resolves a scheme name used by configuration files.
func SchemeByName(name string) (fn IDFn, ok bool) {
	fn, ok = schemes[name]

	return fn, ok
}

// PrefixIDFn returns prefix followed by the decimal index, e.g. "user3".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + DecimalIDFn(idx)
	}
}

// positional renders idx in base len(digits).
// Complexity: O(log idx).
func positional(name, digits string, bijective bool) IDFn {
	base := len(digits)

	return func(idx int) string {
		mustIndex(name, idx)
		var buf [64]byte
		i := len(buf)
		for n := idx; ; {
			i--
			buf[i] = digits[n%base]
			n /= base
			if bijective {
				n--
			}
			if n < 0 || (!bijective && n == 0) {
				break
			}
		}

		return string(buf[i:])
	}
}

// single renders idx as one digit and panics when idx has none.
func single(name, digits string) IDFn {
	return func(idx int) string {
		mustIndex(name, idx)
		if idx >= len(digits) {
			panic(name + " ID: idx must be < " + strconv.Itoa(len(digits)) + ", got " + strconv.Itoa(idx))
		}

		return digits[idx : idx+1]
	}
}

func mustIndex(name string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("%s ID: idx must be ≥ 0, got %d", name, idx))
	}
}
