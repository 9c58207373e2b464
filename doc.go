// Package tuplex builds combinatorial test data: large, structured sets of
// input tuples composed from a handful of small seed sequences.
//
// 🚀 What is tuplex?
//
//	A lazy, pull-based algebra over sequences of rows, plus the tools around it:
//		• values/  — leaves, Multiply, PseudoMultiply, Unite, Intersect,
//		             ReduceTo, Cache and Custom extension nodes
//		• seed/    — ID, range, uniform, sample and lazy seed columns
//		• driver/  — run a test body once per row through reflection
//		• dsl/     — describe compositions in YAML
//		• cmd/tuplex — render and count YAML compositions from the shell
//
// ✨ Why tuplex?
//
//   - Small inputs, big coverage: three columns of five values are 125 cases.
//   - Deterministic: the same tree always yields the same rows in the same order.
//   - Cheap fixtures: Lazy cells under Cache are built at most once.
//
// Quick example:
//
//	browsers := values.Column("firefox", "chrome")
//	locales := values.Column("en", "de", "ja")
//	grid := browsers.Multiply(locales)      // 6 rows
//	smoke := grid.ReduceTo(0.5)             // 3 evenly spaced rows
//
//	go get github.com/katalvlaran/tuplex/values
package tuplex
