package query

import rift "github.com/riftdb/rift-go"

// Match selects the set of entries in an index, optionally narrowed by
// terms.
func Match(index any, terms ...any) rift.Expr {
	e := rift.NewExpr().With("match", wrap(index))
	if len(terms) > 0 {
		e = e.With("terms", varargs(terms))
	}
	return e
}

// Union is the set of elements in any of the given sets.
func Union(sets ...any) rift.Expr {
	return rift.NewExpr().With("union", varargs(sets))
}

// Intersection is the set of elements in all of the given sets.
func Intersection(sets ...any) rift.Expr {
	return rift.NewExpr().With("intersection", varargs(sets))
}

// Difference is the set of elements in the first set and none of the rest.
func Difference(sets ...any) rift.Expr {
	return rift.NewExpr().With("difference", varargs(sets))
}

// Join feeds each element of source into target, a lambda or index ref
// producing a set, and unions the results.
func Join(source, target any) rift.Expr {
	return rift.NewExpr().With("join", wrap(source)).With("with", wrap(target))
}
