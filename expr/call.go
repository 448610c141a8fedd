package expr

import (
	"math/big"

	"github.com/averch/qhobound/bigfloat"
)

// call is a named function application. Only sin and cos are defined; that
// is the whole transcendental surface the oscillator algebra needs.
type call struct {
	fn  string
	arg Expr
}

// Sin returns sin(arg). sin(0) simplifies to 0; other arguments, numeric or
// not, stay symbolic until Eval.
func Sin(arg Expr) Expr { return (&call{fn: "sin", arg: arg}).Simplify() }

// Cos returns cos(arg). cos(0) simplifies to 1.
func Cos(arg Expr) Expr { return (&call{fn: "cos", arg: arg}).Simplify() }

func (c *call) Simplify() Expr {
	arg := c.arg.Simplify()
	if n, ok := arg.(*num); ok && n.isZero() {
		switch c.fn {
		case "sin":
			return Int(0)
		case "cos":
			return Int(1)
		}
	}
	return &call{fn: c.fn, arg: arg}
}

func (c *call) String() string { return c.fn + "(" + c.arg.String() + ")" }

func (c *call) LaTeX() string {
	return `\` + c.fn + `\left(` + c.arg.LaTeX() + `\right)`
}

func (c *call) Sub(name string, value Expr) Expr {
	return (&call{fn: c.fn, arg: c.arg.Sub(name, value)}).Simplify()
}

func (c *call) Diff(name string) Expr {
	var outer Expr
	switch c.fn {
	case "sin":
		outer = Cos(c.arg)
	case "cos":
		outer = Neg(Sin(c.arg))
	default:
		panic("expr: Diff: unknown function " + c.fn)
	}
	return Mul(outer, c.arg.Diff(name))
}

func (c *call) Rational() (*big.Rat, bool) { return nil, false }

func (c *call) Eval(ctx *bigfloat.Context) (*big.Float, bool) {
	v, ok := c.arg.Eval(ctx)
	if !ok {
		return nil, false
	}
	switch c.fn {
	case "sin":
		return ctx.Sin(v), true
	case "cos":
		return ctx.Cos(v), true
	}
	return nil, false
}
