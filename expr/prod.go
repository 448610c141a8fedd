package expr

import (
	"math/big"
	"strings"

	"github.com/averch/qhobound/bigfloat"
)

// prod is a flattened n-ary product with its rational coefficient folded
// into the leading factor.
type prod struct{ factors []Expr }

// Mul returns the simplified product of the given factors.
func Mul(factors ...Expr) Expr { return (&prod{factors: factors}).Simplify() }

// Neg returns -e.
func Neg(e Expr) Expr { return Mul(Int(-1), e) }

func (p *prod) Simplify() Expr {
	flat := make([]Expr, 0, len(p.factors))
	for _, f := range p.factors {
		switch v := f.Simplify().(type) {
		case *prod:
			flat = append(flat, v.factors...)
		default:
			flat = append(flat, v)
		}
	}

	coeff := new(big.Rat).SetInt64(1)
	others := make([]Expr, 0, len(flat))
	for _, f := range flat {
		if v, ok := f.(*num); ok {
			coeff.Mul(coeff, v.val)
			continue
		}
		others = append(others, f)
	}

	if coeff.Sign() == 0 {
		return Int(0)
	}
	if len(others) == 0 {
		return FromRat(coeff)
	}
	sortByString(others)

	if coeff.Cmp(ratOne) == 0 {
		if len(others) == 1 {
			return others[0]
		}
		return &prod{factors: others}
	}
	return &prod{factors: append([]Expr{FromRat(coeff)}, others...)}
}

func (p *prod) String() string {
	parts := make([]string, len(p.factors))
	for i, f := range p.factors {
		if _, isSum := f.(*sum); isSum {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (p *prod) LaTeX() string {
	parts := make([]string, len(p.factors))
	for i, f := range p.factors {
		if _, isSum := f.(*sum); isSum {
			parts[i] = `\left(` + f.LaTeX() + `\right)`
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

func (p *prod) Sub(name string, value Expr) Expr {
	factors := make([]Expr, len(p.factors))
	for i, f := range p.factors {
		factors[i] = f.Sub(name, value)
	}
	return Mul(factors...)
}

// Diff applies the product rule.
func (p *prod) Diff(name string) Expr {
	terms := make([]Expr, len(p.factors))
	for i := range p.factors {
		factors := make([]Expr, len(p.factors))
		copy(factors, p.factors)
		factors[i] = p.factors[i].Diff(name)
		terms[i] = Mul(factors...)
	}
	return Add(terms...)
}

func (p *prod) Rational() (*big.Rat, bool) {
	acc := new(big.Rat).SetInt64(1)
	for _, f := range p.factors {
		r, ok := f.Rational()
		if !ok {
			return nil, false
		}
		acc.Mul(acc, r)
	}
	return acc, true
}

func (p *prod) Eval(ctx *bigfloat.Context) (*big.Float, bool) {
	acc := ctx.FromInt64(1)
	for _, f := range p.factors {
		v, ok := f.Eval(ctx)
		if !ok {
			return nil, false
		}
		acc = ctx.Mul(acc, v)
	}
	return acc, true
}
