// SPDX-License-Identifier: MIT

package seed_test

import (
	"testing"

	"github.com/katalvlaran/tuplex/seed"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestIDFns checks each label scheme on valid input and panics on invalid input.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          seed.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"Decimal_zero", seed.DecimalIDFn, 0, "0", false},
		{"Decimal_multi", seed.DecimalIDFn, 123, "123", false},
		{"Decimal_neg", seed.DecimalIDFn, -1, "", true},

		{"Symbol_min", seed.SymbolIDFn, 0, "A", false},
		{"Symbol_max", seed.SymbolIDFn, 25, "Z", false},
		{"Symbol_neg", seed.SymbolIDFn, -1, "", true},
		{"Symbol_tooHigh", seed.SymbolIDFn, 26, "", true},

		{"Alphanumeric_low", seed.AlphanumericIDFn, 10, "a", false},
		{"Alphanumeric_wrap", seed.AlphanumericIDFn, 36, "10", false},
		{"Alphanumeric_neg", seed.AlphanumericIDFn, -5, "", true},

		{"Excel_zero", seed.ExcelColumnIDFn, 0, "A", false},
		{"Excel_startDouble", seed.ExcelColumnIDFn, 26, "AA", false},
		{"Excel_ZZ", seed.ExcelColumnIDFn, 701, "ZZ", false},
		{"Excel_AAA", seed.ExcelColumnIDFn, 702, "AAA", false},
		{"Excel_neg", seed.ExcelColumnIDFn, -1, "", true},

		{"Hex_ten", seed.HexIDFn, 10, "a", false},
		{"Hex_wide", seed.HexIDFn, 4096, "1000", false},
		{"Alphanumeric_zero", seed.AlphanumericIDFn, 0, "0", false},
		{"Hex_neg", seed.HexIDFn, -2, "", true},

		{"Prefix_user", seed.PrefixIDFn("user"), 3, "user3", false},
		{"Prefix_neg", seed.PrefixIDFn("user"), -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)

				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
			}
		})
	}
}

func TestSchemeByName(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]string{
		"":             "27",
		"decimal":      "27",
		"symbol":       "",
		"alphanumeric": "r",
		"excel":        "AB",
		"hex":          "1b",
	} {
		fn, ok := seed.SchemeByName(name)
		if !ok {
			t.Fatalf("SchemeByName(%q): not found", name)
		}
		if name == "symbol" {
			if got := fn(1); got != "B" {
				t.Errorf("symbol: expected B, got %q", got)
			}

			continue
		}
		if got := fn(27); got != want {
			t.Errorf("%q: expected %q, got %q", name, want, got)
		}
	}

	if _, ok := seed.SchemeByName("roman"); ok {
		t.Error("SchemeByName(roman): expected ok=false")
	}
}

func TestOptionsPanicOnNil(t *testing.T) {
	t.Parallel()

	assertPanics(t, func() { seed.WithIDScheme(nil) }, "WithIDScheme(nil)")
	assertPanics(t, func() { seed.WithRand(nil) }, "WithRand(nil)")
}
