package expr

import (
	"math/big"

	"github.com/averch/qhobound/bigfloat"
)

// power is base^exp.
type power struct{ base, exp Expr }

// Pow returns the simplified power base^exp.
func Pow(base, exp Expr) Expr { return (&power{base: base, exp: exp}).Simplify() }

// Square returns e².
func Square(e Expr) Expr { return Pow(e, Int(2)) }

// Sqrt returns e^(1/2).
func Sqrt(e Expr) Expr { return Pow(e, Frac(1, 2)) }

// foldExpMax bounds the integer exponents folded into exact rationals
// during simplification; larger powers stay symbolic.
const foldExpMax = 64

func (p *power) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*num); ok {
		if en.isZero() {
			return Int(1)
		}
		if en.isOne() {
			return base
		}
	}
	if bn, ok := base.(*num); ok {
		if bn.isZero() {
			// 0^0 and 0^negative stay unevaluated.
			if en, ok := exp.(*num); ok && en.val.Sign() > 0 {
				return Int(0)
			}
			return &power{base: base, exp: exp}
		}
		if bn.isOne() {
			return Int(1)
		}
		if en, ok := exp.(*num); ok && en.val.IsInt() && en.val.Num().IsInt64() {
			if e := en.val.Num().Int64(); e >= -foldExpMax && e <= foldExpMax {
				return FromRat(ratPow(bn.val, e))
			}
		}
	}
	if inner, ok := base.(*power); ok {
		return Pow(inner.base, Mul(inner.exp, exp))
	}
	return &power{base: base, exp: exp}
}

func (p *power) String() string {
	baseStr := p.base.String()
	switch p.base.(type) {
	case *sum, *prod:
		baseStr = "(" + baseStr + ")"
	}
	return baseStr + "^" + p.exp.String()
}

func (p *power) LaTeX() string {
	baseStr := p.base.LaTeX()
	switch p.base.(type) {
	case *sum, *prod:
		baseStr = `\left(` + baseStr + `\right)`
	}
	return baseStr + "^{" + p.exp.LaTeX() + "}"
}

func (p *power) Sub(name string, value Expr) Expr {
	return Pow(p.base.Sub(name, value), p.exp.Sub(name, value))
}

// Diff applies the power rule. The exponent must be constant.
func (p *power) Diff(name string) Expr {
	en, ok := p.exp.(*num)
	if !ok {
		panic("expr: Diff: non-constant exponent")
	}
	return Mul(en, Pow(p.base, Add(en, Int(-1))), p.base.Diff(name))
}

func (p *power) Rational() (*big.Rat, bool) {
	en, ok := p.exp.(*num)
	if !ok || !en.val.IsInt() || !en.val.Num().IsInt64() {
		return nil, false
	}
	b, ok := p.base.Rational()
	if !ok {
		return nil, false
	}
	e := en.val.Num().Int64()
	if b.Sign() == 0 && e < 0 {
		return nil, false
	}
	return ratPow(b, e), true
}

// Eval covers integer and half-integer exponents: b^(n/2) is computed as
// sqrt(b)^n, b^(-n) as 1/b^n.
func (p *power) Eval(ctx *bigfloat.Context) (*big.Float, bool) {
	en, ok := p.exp.(*num)
	if !ok {
		return nil, false
	}
	b, ok := p.base.Eval(ctx)
	if !ok {
		return nil, false
	}
	if !en.val.Num().IsInt64() || !en.val.Denom().IsInt64() {
		return nil, false
	}
	n := en.val.Num().Int64()
	switch en.val.Denom().Int64() {
	case 1:
	case 2:
		if b.Sign() < 0 {
			return nil, false
		}
		b = ctx.Sqrt(b)
	default:
		return nil, false
	}

	neg := n < 0
	if neg {
		n = -n
	}
	out := ctx.FromInt64(1)
	for ; n > 0; n-- {
		out = ctx.Mul(out, b)
	}
	if neg {
		if out.Sign() == 0 {
			return nil, false
		}
		out = ctx.Quo(ctx.FromInt64(1), out)
	}
	return out, true
}
