// Package expr implements a small deterministic symbolic kernel: exact
// rational constants, named variables, sums, products, powers and the
// trigonometric pair sin/cos, with rule-based simplification, substitution,
// differentiation, LaTeX rendering and arbitrary-precision numeric
// evaluation through a bigfloat.Context.
//
// Expressions are immutable; constructors simplify eagerly and produce
// deterministic, stably ordered output. Numeric function arguments are kept
// exact and unevaluated: sin(1/3) stays sin(1/3) until Eval is called with
// a context, so symbolic results remain human-checkable closed forms.
//
// Limitations:
//   - Differentiation requires constant exponents
//   - Numeric evaluation of powers covers integer and half-integer exponents
//   - Simplification is rule-based, not canonical
package expr

import (
	"math/big"

	"github.com/averch/qhobound/bigfloat"
)

// Expr is an immutable symbolic expression.
type Expr interface {
	// Simplify returns an equivalent, possibly smaller expression.
	// Constructors simplify eagerly, so this is idempotent.
	Simplify() Expr

	String() string
	LaTeX() string

	// Sub substitutes value for every occurrence of the named variable.
	Sub(name string, value Expr) Expr

	// Diff differentiates with respect to the named variable.
	// Panics for powers with non-constant exponents.
	Diff(name string) Expr

	// Rational reports the exact rational value of the expression,
	// when it has one.
	Rational() (*big.Rat, bool)

	// Eval evaluates the expression numerically at the context precision.
	// It reports false when the expression still contains variables or a
	// form the numeric tower does not cover.
	Eval(ctx *bigfloat.Context) (*big.Float, bool)
}

// FreeSymbols returns the set of variable names occurring in e.
func FreeSymbols(e Expr) map[string]struct{} {
	out := make(map[string]struct{})
	collectSymbols(e, out)
	return out
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *symbol:
		out[v.name] = struct{}{}
	case *sum:
		for _, t := range v.terms {
			collectSymbols(t, out)
		}
	case *prod:
		for _, f := range v.factors {
			collectSymbols(f, out)
		}
	case *power:
		collectSymbols(v.base, out)
		collectSymbols(v.exp, out)
	case *call:
		collectSymbols(v.arg, out)
	}
}
