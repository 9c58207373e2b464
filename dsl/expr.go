// SPDX-License-Identifier: MIT
// Package: tuplex/dsl
//
// expr.go — expression tree decoded from YAML.
//
// Every expression is a mapping with exactly one key naming its operator:
//
//	{column: [a, b]}                       {row: [a, 1]}
//	{matrix: [[a, 1], [b, 2]]}             {ref: users}
//	{multiply: [e1, e2, ...]}              {diagonal: [e1, e2, ...]}
//	{unite: [e1, e2, ...]}                 {intersect: [e1, e2, ...]}
//	{reduce: {ratio: 0.5, of: e}}          {cache: e}
//	{ids: {n: 3, scheme: excel, prefix: u}}
//	{range: {from: 0, to: 10, step: 2}}

package dsl

import (
	"errors"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tuplex/seed"
	"github.com/katalvlaran/tuplex/values"
)

// Op names an expression operator; it equals the YAML key.
type Op string

// Operators.
const (
	OpColumn    Op = "column"
	OpRow       Op = "row"
	OpMatrix    Op = "matrix"
	OpMultiply  Op = "multiply"
	OpDiagonal  Op = "diagonal"
	OpUnite     Op = "unite"
	OpIntersect Op = "intersect"
	OpReduce    Op = "reduce"
	OpCache     Op = "cache"
	OpRef       Op = "ref"
	OpIDs       Op = "ids"
	OpRange     Op = "range"
)

// Expr is one decoded expression. Only the fields of its Op are set.
type Expr struct {
	Op   Op
	Line int

	Items []values.Value   // column, row
	Rows  [][]values.Value // matrix
	Args  []*Expr          // multiply, diagonal, unite, intersect; reduce and cache use Args[0]
	Ratio float64          // reduce
	Ref   string           // ref

	N      int    // ids
	Scheme string // ids
	Prefix string // ids

	From, To, Step int // range
}

type reduceBody struct {
	Ratio *float64 `yaml:"ratio"`
	Of    *Expr    `yaml:"of"`
}

type idsBody struct {
	N      int    `yaml:"n"`
	Scheme string `yaml:"scheme"`
	Prefix string `yaml:"prefix"`
}

type rangeBody struct {
	From int  `yaml:"from"`
	To   int  `yaml:"to"`
	Step *int `yaml:"step"`
}

// UnmarshalYAML decodes a single-key mapping into e.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return syntaxErrorf(node.Line, "expression must be a mapping with exactly one operator key")
	}
	key, body := node.Content[0], node.Content[1]
	*e = Expr{Op: Op(key.Value), Line: key.Line}

	switch e.Op {
	case OpColumn, OpRow:
		if body.Kind != yaml.SequenceNode {
			return syntaxErrorf(body.Line, "%s wants a list of values", e.Op)
		}
		if err := body.Decode(&e.Items); err != nil {
			return syntaxErrorf(body.Line, "%s: %v", e.Op, err)
		}
		if e.Items == nil {
			e.Items = []values.Value{}
		}

	case OpMatrix:
		if body.Kind != yaml.SequenceNode {
			return syntaxErrorf(body.Line, "matrix wants a list of rows")
		}
		if err := body.Decode(&e.Rows); err != nil {
			return syntaxErrorf(body.Line, "matrix: %v", err)
		}

	case OpMultiply, OpDiagonal, OpUnite, OpIntersect:
		if body.Kind != yaml.SequenceNode {
			return syntaxErrorf(body.Line, "%s wants a list of expressions", e.Op)
		}
		if err := body.Decode(&e.Args); err != nil {
			return asSyntax(body.Line, err)
		}

	case OpReduce:
		if err := onlyFields(body, e.Op, "ratio", "of"); err != nil {
			return err
		}
		var rb reduceBody
		if err := body.Decode(&rb); err != nil {
			return asSyntax(body.Line, err)
		}
		if rb.Ratio == nil || rb.Of == nil {
			return syntaxErrorf(body.Line, "reduce wants ratio and of")
		}
		e.Ratio, e.Args = *rb.Ratio, []*Expr{rb.Of}

	case OpCache:
		inner := new(Expr)
		if err := body.Decode(inner); err != nil {
			return asSyntax(body.Line, err)
		}
		e.Args = []*Expr{inner}

	case OpRef:
		if body.Kind != yaml.ScalarNode || body.Value == "" {
			return syntaxErrorf(body.Line, "ref wants a def name")
		}
		e.Ref = body.Value

	case OpIDs:
		if err := onlyFields(body, e.Op, "n", "scheme", "prefix"); err != nil {
			return err
		}
		var ib idsBody
		if err := body.Decode(&ib); err != nil {
			return syntaxErrorf(body.Line, "ids: %v", err)
		}
		if _, ok := seed.SchemeByName(ib.Scheme); !ok {
			return syntaxErrorf(body.Line, "ids: unknown scheme %q", ib.Scheme)
		}
		e.N, e.Scheme, e.Prefix = ib.N, ib.Scheme, ib.Prefix

	case OpRange:
		if err := onlyFields(body, e.Op, "from", "to", "step"); err != nil {
			return err
		}
		var rb rangeBody
		if err := body.Decode(&rb); err != nil {
			return syntaxErrorf(body.Line, "range: %v", err)
		}
		e.From, e.To, e.Step = rb.From, rb.To, 1
		switch {
		case rb.Step != nil:
			e.Step = *rb.Step
		case rb.From > rb.To:
			e.Step = -1
		}

	default:
		return syntaxErrorf(key.Line, "unknown operator %q", key.Value)
	}

	return nil
}

// onlyFields rejects keys of a mapping body outside fields. Nested Decode
// calls do not inherit the document decoder's KnownFields setting.
func onlyFields(body *yaml.Node, op Op, fields ...string) error {
	if body.Kind != yaml.MappingNode {
		return syntaxErrorf(body.Line, "%s wants a mapping", op)
	}
	for i := 0; i+1 < len(body.Content); i += 2 {
		key := body.Content[i]
		if !slices.Contains(fields, key.Value) {
			return syntaxErrorf(key.Line, "%s: unknown field %q", op, key.Value)
		}
	}

	return nil
}

// asSyntax wraps decoder errors that do not already match ErrSyntax.
func asSyntax(line int, err error) error {
	if errors.Is(err, ErrSyntax) {
		return err
	}

	return syntaxErrorf(line, "%v", err)
}
