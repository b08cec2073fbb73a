package rift

import "reflect"

// Expr is a query expression node: an ordered mapping from operator name to
// operand. Operands may be typed values, literals, slices, or nested Exprs.
// Composite operators are built by package query, never by hand; fields
// serialize in insertion order because the wire format is order-sensitive.
type Expr struct {
	fields []exprField
	err    error
}

type exprField struct {
	key   string
	value any
}

// NewExpr returns an empty expression node.
func NewExpr() Expr { return Expr{} }

// With returns a copy of e with an additional field appended. The receiver is
// never mutated, so partially built nodes can be shared freely.
func (e Expr) With(key string, value any) Expr {
	fields := make([]exprField, len(e.fields), len(e.fields)+1)
	copy(fields, e.fields)
	return Expr{fields: append(fields, exprField{key: key, value: value}), err: e.err}
}

// InvalidExpr returns a poisoned node carrying a construction-time error.
// Builders stay single-valued for fluency; Encode reports err verbatim when it
// reaches such a node.
func InvalidExpr(err error) Expr { return Expr{err: err} }

// Err reports the construction error, if any.
func (e Expr) Err() error { return e.err }

// Equal reports structural equality of two expression trees.
func (e Expr) Equal(other Expr) bool { return reflect.DeepEqual(e, other) }
