package query

import rift "github.com/riftdb/rift-go"

// Map applies a lambda to every element of a collection. lambda may be a
// lambda expression or a Go function converted via Lambda.
func Map(lambda, collection any) rift.Expr {
	return rift.NewExpr().With("map", wrap(lambda)).With("collection", wrap(collection))
}

// Foreach runs a lambda over every element for its effects, returning the
// original collection.
func Foreach(lambda, collection any) rift.Expr {
	return rift.NewExpr().With("foreach", wrap(lambda)).With("collection", wrap(collection))
}

// Filter keeps the elements for which the lambda returns true.
func Filter(lambda, collection any) rift.Expr {
	return rift.NewExpr().With("filter", wrap(lambda)).With("collection", wrap(collection))
}

// Take keeps the first number elements.
func Take(number, collection any) rift.Expr {
	return rift.NewExpr().With("take", wrap(number)).With("collection", wrap(collection))
}

// Drop discards the first number elements.
func Drop(number, collection any) rift.Expr {
	return rift.NewExpr().With("drop", wrap(number)).With("collection", wrap(collection))
}

// Prepend concatenates elements before the collection.
func Prepend(elements, collection any) rift.Expr {
	return rift.NewExpr().With("prepend", wrap(elements)).With("collection", wrap(collection))
}

// Append concatenates elements after the collection.
func Append(elements, collection any) rift.Expr {
	return rift.NewExpr().With("append", wrap(elements)).With("collection", wrap(collection))
}
