package query

import rift "github.com/riftdb/rift-go"

// ---- string functions ----

// Concat joins strings, with an optional Separator.
func Concat(strings any, opts ...Optional) rift.Expr {
	return applyOptions(rift.NewExpr().With("concat", wrap(strings)), opts)
}

// Casefold normalizes a string for case-insensitive comparison.
func Casefold(s any) rift.Expr {
	return rift.NewExpr().With("casefold", wrap(s))
}

// ---- time and date functions ----

// Time converts an ISO-8601 string into a server-side timestamp. The string
// "now" reads the current transaction time.
func Time(s any) rift.Expr {
	return rift.NewExpr().With("time", wrap(s))
}

// Epoch builds a timestamp from an offset since 1970-01-01 in the given unit
// ("second", "millisecond", "microsecond" or "nanosecond").
func Epoch(num any, unit any) rift.Expr {
	return rift.NewExpr().With("epoch", wrap(num)).With("unit", wrap(unit))
}

// Date converts a "YYYY-MM-DD" string into a server-side date.
func Date(s any) rift.Expr {
	return rift.NewExpr().With("date", wrap(s))
}

// ---- miscellaneous functions ----

// Equals reports whether all values are equal.
func Equals(values ...any) rift.Expr {
	return nary("equals", values)
}

// Contains reports whether the value at path exists within in.
func Contains(path, in any) rift.Expr {
	return rift.NewExpr().With("contains", wrap(path)).With("in", wrap(in))
}

// Select reads the value at path out of from; it is an error when the path
// is absent.
func Select(path, from any) rift.Expr {
	return rift.NewExpr().With("select", wrap(path)).With("from", wrap(from))
}

// SelectWithDefault is Select returning def when the path is absent.
func SelectWithDefault(path, from, def any) rift.Expr {
	return rift.NewExpr().
		With("select", wrap(path)).
		With("from", wrap(from)).
		With("default", wrap(def))
}

// Add sums numbers.
func Add(numbers ...any) rift.Expr { return nary("add", numbers) }

// Multiply multiplies numbers.
func Multiply(numbers ...any) rift.Expr { return nary("multiply", numbers) }

// Subtract subtracts numbers left to right.
func Subtract(numbers ...any) rift.Expr { return nary("subtract", numbers) }

// Divide divides numbers left to right.
func Divide(numbers ...any) rift.Expr { return nary("divide", numbers) }

// Modulo takes the remainder left to right.
func Modulo(numbers ...any) rift.Expr { return nary("modulo", numbers) }

// Lt reports whether values are strictly increasing.
func Lt(values ...any) rift.Expr { return nary("lt", values) }

// Lte reports whether values are non-decreasing.
func Lte(values ...any) rift.Expr { return nary("lte", values) }

// Gt reports whether values are strictly decreasing.
func Gt(values ...any) rift.Expr { return nary("gt", values) }

// Gte reports whether values are non-increasing.
func Gte(values ...any) rift.Expr { return nary("gte", values) }

// And is logical conjunction.
func And(booleans ...any) rift.Expr { return nary("and", booleans) }

// Or is logical disjunction.
func Or(booleans ...any) rift.Expr { return nary("or", booleans) }

// Not negates a boolean.
func Not(boolean any) rift.Expr {
	return rift.NewExpr().With("not", wrap(boolean))
}
