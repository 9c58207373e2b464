// Package driver runs a test body once per row of a values.Values.
//
// Run spreads each row over the callback's parameters:
//
//	grid := values.Column("alice", "bob").MultiplyBy("admin", "guest")
//	rep, err := driver.Run(grid, func(user, role string) error {
//		return checkAccess(user, role)
//	}, driver.WithLogger(log))
//
// Each hands over the whole row instead. Callback errors and panics become
// Report.Failures; WithFailFast stops at the first one. Signature problems
// (ErrNotFunc, ErrArity, ErrBadReturn, ErrArgType) abort the run.
package driver
