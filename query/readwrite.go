package query

import rift "github.com/riftdb/rift-go"

// Get retrieves the document at ref, optionally at a snapshot TS.
func Get(ref any, opts ...Optional) rift.Expr {
	return applyOptions(rift.NewExpr().With("get", wrap(ref)), opts)
}

// Paginate pages through a set. Accepts Size, TS, After, Before, Events and
// Sources options.
func Paginate(set any, opts ...Optional) rift.Expr {
	return applyOptions(rift.NewExpr().With("paginate", wrap(set)), opts)
}

// Exists reports whether the document at ref exists, optionally at a
// snapshot TS.
func Exists(ref any, opts ...Optional) rift.Expr {
	return applyOptions(rift.NewExpr().With("exists", wrap(ref)), opts)
}

// Count counts a set's elements; with Events(true) it counts events instead.
func Count(set any, opts ...Optional) rift.Expr {
	return applyOptions(rift.NewExpr().With("count", wrap(set)), opts)
}

// Create makes a new document in the given class.
func Create(classRef, params any) rift.Expr {
	return rift.NewExpr().With("create", wrap(classRef)).With("params", wrap(params))
}

// Update merges params into the document at ref.
func Update(ref, params any) rift.Expr {
	return rift.NewExpr().With("update", wrap(ref)).With("params", wrap(params))
}

// Replace swaps the document at ref for params wholesale.
func Replace(ref, params any) rift.Expr {
	return rift.NewExpr().With("replace", wrap(ref)).With("params", wrap(params))
}

// Delete removes the document at ref.
func Delete(ref any) rift.Expr {
	return rift.NewExpr().With("delete", wrap(ref))
}

// Insert adds an event to a document's history at timestamp ts. action is
// "create" or "delete".
func Insert(ref any, ts any, action string, params any) rift.Expr {
	return rift.NewExpr().
		With("insert", wrap(ref)).
		With("ts", wrap(ts)).
		With("action", action).
		With("params", wrap(params))
}

// Remove deletes an event from a document's history.
func Remove(ref any, ts any, action string) rift.Expr {
	return rift.NewExpr().
		With("remove", wrap(ref)).
		With("ts", wrap(ts)).
		With("action", action)
}
