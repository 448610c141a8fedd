package expr

import (
	"fmt"
	"math/big"

	"github.com/averch/qhobound/bigfloat"
)

// num is an exact rational constant.
type num struct{ val *big.Rat }

// Int returns the integer constant n.
func Int(n int64) Expr { return &num{val: new(big.Rat).SetInt64(n)} }

// Frac returns the exact rational p/q. A zero denominator panics.
func Frac(p, q int64) Expr {
	if q == 0 {
		panic("expr: zero denominator")
	}
	return &num{val: big.NewRat(p, q)}
}

// FromRat returns the exact rational constant r. The value is copied.
func FromRat(r *big.Rat) Expr { return &num{val: new(big.Rat).Set(r)} }

func (n *num) Simplify() Expr        { return n }
func (n *num) Sub(string, Expr) Expr { return n }
func (n *num) Diff(string) Expr      { return Int(0) }

func (n *num) Rational() (*big.Rat, bool) { return new(big.Rat).Set(n.val), true }

func (n *num) Eval(ctx *bigfloat.Context) (*big.Float, bool) {
	return ctx.FromRat(n.val), true
}

func (n *num) isZero() bool   { return n.val.Sign() == 0 }
func (n *num) isOne() bool    { return n.val.Cmp(ratOne) == 0 }
func (n *num) isNegOne() bool { return n.val.Cmp(ratNegOne) == 0 }

var (
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
)

func (n *num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf(`%s\frac{%s}{%s}`, sign, v.Num().String(), v.Denom().String())
}

// ratPow raises r to an integer power, exactly.
func ratPow(r *big.Rat, e int64) *big.Rat {
	neg := e < 0
	if neg {
		e = -e
	}
	out := new(big.Rat).SetInt64(1)
	base := new(big.Rat).Set(r)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			out.Mul(out, base)
		}
		base.Mul(base, base)
	}
	if neg {
		if out.Sign() == 0 {
			panic("expr: zero raised to a negative power")
		}
		out.Inv(out)
	}
	return out
}
