// Package seed generates the small seed columns that the values algebra
// composes into test matrices.
//
// The package offers:
//
//   - Label schemes (IDFn): DecimalIDFn, SymbolIDFn, ExcelColumnIDFn,
//     AlphanumericIDFn, HexIDFn, PrefixIDFn.
//   - Generators: IDs, Range, Uniform, Sample, Lazies.
//   - Functional options: WithIDScheme, WithPrefix, WithSeed, WithRand.
//
// Guarantees:
//
//   - Determinism: identical inputs, options and seed produce identical
//     columns. Nothing random happens without WithSeed/WithRand.
//   - Option constructors panic on nil arguments (programmer error);
//     generators return sentinel errors (ErrBadSize, ErrBadRange,
//     ErrNeedRandSource) wrapped with the method name.
//
// Example:
//
//	users, _ := seed.IDs(3, seed.WithPrefix("user"))
//	ports, _ := seed.Range(8080, 8083, 1)
//	grid := users.Multiply(ports) // 9 rows: (user0, 8080) ...
package seed
