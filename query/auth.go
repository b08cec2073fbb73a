package query

import rift "github.com/riftdb/rift-go"

// Login obtains an auth token for the document at ref. params carries the
// credentials, e.g. rift.Obj{"password": ...}.
func Login(ref, params any) rift.Expr {
	return rift.NewExpr().With("login", wrap(ref)).With("params", wrap(params))
}

// Logout invalidates the current token, or every token for the identity when
// deleteTokens is true.
func Logout(deleteTokens any) rift.Expr {
	return rift.NewExpr().With("logout", wrap(deleteTokens))
}

// Identify checks a password against the document at ref without logging in.
func Identify(ref, password any) rift.Expr {
	return rift.NewExpr().With("identify", wrap(ref)).With("password", wrap(password))
}
