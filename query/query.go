// Package query builds RiftDB query expressions as data-only trees.
//
// Every constructor returns a rift.Expr ready for rift.Encode; no I/O ever
// happens here. Operands may be literals, typed values, other expressions, or
// Go maps/slices of the same. Go functions passed where a lambda is expected
// (Map, Filter, ...) are invoked exactly once, synchronously, with placeholder
// variable expressions to capture the body tree; they must build expressions
// only and perform no real work.
package query

import (
	"fmt"
	"sync/atomic"

	rift "github.com/riftdb/rift-go"
)

// wrap normalizes an operand into its expression form. Maps become "object"
// nodes so their keys are data rather than operators; functions become
// lambdas; everything else is left for the codec.
func wrap(v any) any {
	switch x := v.(type) {
	case rift.Expr:
		return x
	case rift.Obj:
		return objectExpr(x)
	case map[string]any:
		return objectExpr(x)
	case rift.Arr:
		return wrapSlice(x)
	case []any:
		return wrapSlice(x)
	case func(rift.Expr) rift.Expr:
		return Lambda(x)
	case func(rift.Expr, rift.Expr) rift.Expr:
		return Lambda2(x)
	case func(rift.Expr, rift.Expr, rift.Expr) rift.Expr:
		return Lambda3(x)
	default:
		return v
	}
}

func objectExpr(m map[string]any) rift.Expr {
	return rift.NewExpr().With("object", wrapMap(m))
}

func wrapMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = wrap(v)
	}
	return out
}

func wrapSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = wrap(v)
	}
	return out
}

// varargs collapses a single operand to the bare value, so Add(1, 2) and
// Add([]any{1, 2}) both work and Add(x) does not wrap x in an array.
func varargs(vals []any) any {
	if len(vals) == 1 {
		return wrap(vals[0])
	}
	return wrapSlice(vals)
}

// nary builds a variadic operator node. Operators built this way are
// meaningless without operands; the zero-operand violation is reported
// through the returned node at encode time.
func nary(op string, vals []any) rift.Expr {
	if len(vals) == 0 {
		return rift.InvalidExpr(&rift.InvalidQueryError{Op: op, Message: "requires at least one operand"})
	}
	return rift.NewExpr().With(op, varargs(vals))
}

// Optional is an optional query parameter, e.g. TS or Size, applied after the
// operator's required fields.
type Optional func(rift.Expr) rift.Expr

func applyOptions(e rift.Expr, opts []Optional) rift.Expr {
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

func optional(key string, value any) Optional {
	return func(e rift.Expr) rift.Expr { return e.With(key, wrap(value)) }
}

// TS pins a read to a snapshot timestamp.
func TS(ts any) Optional { return optional("ts", ts) }

// Size limits a page's element count.
func Size(n any) Optional { return optional("size", n) }

// After resumes a page after a cursor.
func After(cursor any) Optional { return optional("after", cursor) }

// Before resumes a page before a cursor.
func Before(cursor any) Optional { return optional("before", cursor) }

// Events switches pagination to the event stream of the set.
func Events(on bool) Optional { return optional("events", on) }

// Sources includes set provenance in page results.
func Sources(on bool) Optional { return optional("sources", on) }

// Separator sets the join string for Concat.
func Separator(s any) Optional { return optional("separator", s) }

// ---- lambda placeholder naming ----

// autoVarDepth tracks how many placeholder names are live while caller
// functions execute, so nested lambdas get distinct names within one tree.
// Concurrent builds may observe a shifted base; names are local to a single
// query, so that is harmless.
var autoVarDepth atomic.Int64

func autoVarNames(n int) ([]string, func()) {
	base := autoVarDepth.Add(int64(n)) - int64(n)
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("auto%d", base+int64(i))
	}
	return names, func() { autoVarDepth.Add(int64(-n)) }
}
