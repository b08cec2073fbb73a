package query

import rift "github.com/riftdb/rift-go"

// Let binds variables for use in the in expression via Var. Bindings are
// data, not an object literal, so they are emitted as a plain mapping.
func Let(bindings map[string]any, in any) rift.Expr {
	return rift.NewExpr().With("let", wrapMap(bindings)).With("in", wrap(in))
}

// Var references a variable bound by Let or a lambda.
func Var(name string) rift.Expr {
	return rift.NewExpr().With("var", name)
}

// If evaluates then or else depending on condition. All three branches are
// data; nothing is evaluated client-side.
func If(condition, then, otherwise any) rift.Expr {
	return rift.NewExpr().
		With("if", wrap(condition)).
		With("then", wrap(then)).
		With("else", wrap(otherwise))
}

// Do evaluates expressions in sequence, returning the last result.
func Do(exprs ...any) rift.Expr {
	return nary("do", exprs)
}

// Lambda captures fn's body as a one-parameter lambda expression. fn is
// invoked exactly once with a placeholder variable reference; it must build
// an expression and nothing else.
func Lambda(fn func(rift.Expr) rift.Expr) rift.Expr {
	names, release := autoVarNames(1)
	defer release()
	return LambdaExpr(names[0], fn(Var(names[0])))
}

// Lambda2 is Lambda for two-parameter lambdas; the parameter names are
// recorded in declaration order.
func Lambda2(fn func(a, b rift.Expr) rift.Expr) rift.Expr {
	names, release := autoVarNames(2)
	defer release()
	return LambdaExpr(rift.Arr{names[0], names[1]}, fn(Var(names[0]), Var(names[1])))
}

// Lambda3 is Lambda for three-parameter lambdas.
func Lambda3(fn func(a, b, c rift.Expr) rift.Expr) rift.Expr {
	names, release := autoVarNames(3)
	defer release()
	return LambdaExpr(rift.Arr{names[0], names[1], names[2]},
		fn(Var(names[0]), Var(names[1]), Var(names[2])))
}

// LambdaExpr is the raw lambda form: binding is a parameter name or an array
// of names, body the expression to evaluate.
func LambdaExpr(binding any, body any) rift.Expr {
	return rift.NewExpr().With("lambda", wrap(binding)).With("expr", wrap(body))
}
