// SPDX-License-Identifier: MIT
// Package: tuplex/dsl
//
// document.go — loading a document and building its root.
//
// A document has a root expression and optional named defs:
//
//	root: grid            # a def name, or an inline expression
//	defs:
//	  users: {column: [alice, bob]}
//	  grid:  {multiply: [{ref: users}, {column: [1, 2]}]}
//
// Each def is built once per Build call and shared by every ref to it, so a
// cached def keeps a single memo however often it is referenced.

package dsl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tuplex/seed"
	"github.com/katalvlaran/tuplex/values"
)

// Document is a parsed tuplex YAML file.
type Document struct {
	Root *Expr
	Defs map[string]*Expr
}

type rawDocument struct {
	Root yaml.Node        `yaml:"root"`
	Defs map[string]*Expr `yaml:"defs"`
}

// Load decodes one YAML document from r. Unknown top-level keys are
// rejected.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, ErrSyntax) {
			return nil, err
		}

		return nil, fmt.Errorf("%v: %w", err, ErrSyntax)
	}

	doc := &Document{Defs: raw.Defs}
	switch raw.Root.Kind {
	case 0:
	case yaml.ScalarNode:
		doc.Root = &Expr{Op: OpRef, Line: raw.Root.Line, Ref: raw.Root.Value}
	default:
		doc.Root = new(Expr)
		if err := raw.Root.Decode(doc.Root); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Parse is Load over an in-memory buffer.
func Parse(data []byte) (*Document, error) {
	return Load(bytes.NewReader(data))
}

// Build composes the root expression.
func (d *Document) Build() (values.Values, error) {
	if d == nil || d.Root == nil {
		return values.Values{}, ErrNoRoot
	}

	return newBuilder(d.Defs).finish(d.Root)
}

// BuildDef composes the def called name instead of the root.
func (d *Document) BuildDef(name string) (values.Values, error) {
	if d == nil {
		return values.Values{}, ErrNoRoot
	}

	return newBuilder(d.Defs).finish(&Expr{Op: OpRef, Ref: name})
}

type builder struct {
	defs  map[string]*Expr
	built map[string]values.Values
	stack []string // defs being built, outermost first
}

func newBuilder(defs map[string]*Expr) *builder {
	return &builder{defs: defs, built: make(map[string]values.Values, len(defs))}
}

func (b *builder) finish(e *Expr) (values.Values, error) {
	v, err := b.build(e)
	if err != nil {
		return values.Values{}, err
	}
	if err := v.Err(); err != nil {
		return values.Values{}, err
	}

	return v, nil
}

func (b *builder) build(e *Expr) (values.Values, error) {
	if e == nil {
		return values.Values{}, fmt.Errorf("null expression: %w", ErrSyntax)
	}
	switch e.Op {
	case OpColumn:
		return values.Column(e.Items...), nil
	case OpRow:
		return values.Row(e.Items...), nil
	case OpMatrix:
		return values.Matrix(e.Rows), nil
	case OpMultiply, OpDiagonal, OpUnite, OpIntersect:
		vs, err := b.buildAll(e.Args)
		if err != nil {
			return values.Values{}, err
		}
		switch e.Op {
		case OpMultiply:
			return values.Multiply(vs...), nil
		case OpDiagonal:
			return values.PseudoMultiply(vs...), nil
		case OpUnite:
			return values.Unite(vs...), nil
		default:
			return values.Intersect(vs...), nil
		}
	case OpReduce, OpCache:
		if len(e.Args) != 1 {
			return values.Values{}, syntaxErrorf(e.Line, "%s wants one operand", e.Op)
		}
		v, err := b.build(e.Args[0])
		if err != nil {
			return values.Values{}, err
		}
		if e.Op == OpCache {
			return v.Cache(), nil
		}

		return v.ReduceTo(e.Ratio), nil
	case OpRef:
		return b.resolve(e)
	case OpIDs:
		fn, ok := seed.SchemeByName(e.Scheme)
		if !ok {
			return values.Values{}, syntaxErrorf(e.Line, "ids: unknown scheme %q", e.Scheme)
		}
		opt := seed.WithIDScheme(fn)
		if e.Prefix != "" {
			opt = seed.WithPrefix(e.Prefix)
		}
		v, err := seed.IDs(e.N, opt)
		if err != nil {
			return values.Values{}, fmt.Errorf("line %d: %w", e.Line, err)
		}

		return v, nil
	case OpRange:
		v, err := seed.Range(e.From, e.To, e.Step)
		if err != nil {
			return values.Values{}, fmt.Errorf("line %d: %w", e.Line, err)
		}

		return v, nil
	}

	return values.Values{}, syntaxErrorf(e.Line, "unknown operator %q", e.Op)
}

func (b *builder) buildAll(es []*Expr) ([]values.Values, error) {
	vs := make([]values.Values, len(es))
	for i, e := range es {
		v, err := b.build(e)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}

	return vs, nil
}

// resolve builds a def once and hands the same Values to every later ref.
func (b *builder) resolve(e *Expr) (values.Values, error) {
	if v, ok := b.built[e.Ref]; ok {
		return v, nil
	}
	for i, name := range b.stack {
		if name == e.Ref {
			chain := append(append([]string{}, b.stack[i:]...), e.Ref)

			return values.Values{}, fmt.Errorf("%s: %w", strings.Join(chain, " -> "), ErrRefCycle)
		}
	}
	def, ok := b.defs[e.Ref]
	if !ok {
		return values.Values{}, fmt.Errorf("line %d: %q: %w", e.Line, e.Ref, ErrUnknownRef)
	}

	b.stack = append(b.stack, e.Ref)
	v, err := b.build(def)
	b.stack = b.stack[:len(b.stack)-1]
	if err != nil {
		return values.Values{}, err
	}
	b.built[e.Ref] = v

	return v, nil
}
