// Package dsl describes value compositions in YAML so that test matrices can
// live next to the fixtures they drive.
//
//	doc, err := dsl.Load(f)
//	v, err := doc.Build()
//
// See expr.go for the operator list and document.go for the file layout.
// Errors match ErrSyntax, ErrUnknownRef, ErrRefCycle or ErrNoRoot, or the
// sentinels of the values and seed packages when a composition is invalid.
package dsl
