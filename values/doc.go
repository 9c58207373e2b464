// Package values is a combinatorial test-data algebra: it builds large,
// structured sets of test-case input tuples by composing small seed
// sequences.
//
// 🚀 What's inside?
//
//   - Leaves: Column (N×1), Row (1×N), Matrix (R×C), Empty.
//   - Operators, each with a method and an N-ary form:
//     Multiply (Cartesian product), PseudoMultiply (row pairing with
//     cycling), Unite (concatenation), Intersect (membership filter).
//   - ReduceTo: deterministic down-sampling to about a ratio of the rows.
//   - Cache: at-most-once evaluation of Lazy cells across replays.
//   - Custom: plug your own pairwise advancement logic into the tree.
//
// ⚙️ Usage:
//
//	users := values.Column("alice", "bob")
//	grid := users.MultiplyBy("admin", "guest").ReduceTo(0.5)
//	for row := range grid.All() {
//		fmt.Println(row)
//	}
//
// Semantics at a glance:
//
//	|a.Multiply(b)|       = |a|·|b|            empty absorbs
//	|a.PseudoMultiply(b)| = max(|a|,|b|)       empty absorbs
//	|a.Unite(b)|          = |a|+|b|            empty is identity
//	a.Intersect(b)        ⊆ a, in a's order    b materialized once per cursor
//
// Sequences are immutable and shareable. Invalid constructions (bad ratio,
// width mismatch, nil combiner) do not panic; they return a Values whose
// Err() reports the problem and whose Iter() refuses to start.
//
// Evaluation is single-threaded and pull-based. A Cursor buffers at most one
// row per operand, except Intersect which indexes its right operand.
package values
