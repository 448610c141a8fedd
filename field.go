package qhobound

import (
	"math/big"

	"github.com/averch/qhobound/bigfloat"
	"github.com/averch/qhobound/expr"
)

// field abstracts the scalar arithmetic the boundary phase formula needs, so
// the symbolic and numeric modes share one implementation instead of two
// parallel derivations that could drift apart.
type field[T any] interface {
	fromRat(r *big.Rat) T
	fromInt(n int64) T
	add(a, b T) T
	mul(a, b T) T
	sin(a T) T
	square(a T) T
}

// symField builds symbolic expressions.
type symField struct{}

func (symField) fromRat(r *big.Rat) expr.Expr { return expr.FromRat(r) }
func (symField) fromInt(n int64) expr.Expr    { return expr.Int(n) }
func (symField) add(a, b expr.Expr) expr.Expr { return expr.Add(a, b) }
func (symField) mul(a, b expr.Expr) expr.Expr { return expr.Mul(a, b) }
func (symField) sin(a expr.Expr) expr.Expr    { return expr.Sin(a) }
func (symField) square(a expr.Expr) expr.Expr { return expr.Square(a) }

// floatField computes at the precision of its context.
type floatField struct{ ctx *bigfloat.Context }

func (f floatField) fromRat(r *big.Rat) *big.Float  { return f.ctx.FromRat(r) }
func (f floatField) fromInt(n int64) *big.Float     { return f.ctx.FromInt64(n) }
func (f floatField) add(a, b *big.Float) *big.Float { return f.ctx.Add(a, b) }
func (f floatField) mul(a, b *big.Float) *big.Float { return f.ctx.Mul(a, b) }
func (f floatField) sin(a *big.Float) *big.Float    { return f.ctx.Sin(a) }
func (f floatField) square(a *big.Float) *big.Float { return f.ctx.Mul(a, a) }

// phaseSequence evaluates the squared phase sums b[1..2p] over the
// 0-indexed stencil c[0..2p] (c[0] is the leftmost coefficient, c[p] the
// center). Entry i-1 of the result holds
//
//	b[i] = ( Σ_{j=i-1..2p} (c[j] + τ²·[j==p]) · sin((i-j-1)·τ) )²
//
// where [j==p] marks the center sample, whose coefficient picks up the τ²
// restoring-force term from the oscillator's free evolution.
func phaseSequence[T any](f field[T], c []*big.Rat, tau T) []T {
	n := len(c) - 1 // 2p
	p := n / 2
	tauSq := f.mul(tau, tau)

	out := make([]T, 0, n)
	for i := 1; i <= n; i++ {
		total := f.fromInt(0)
		for j := i - 1; j <= n; j++ {
			coef := f.fromRat(c[j])
			if j == p {
				coef = f.add(coef, tauSq)
			}
			phase := f.sin(f.mul(f.fromInt(int64(i-j-1)), tau))
			total = f.add(total, f.mul(coef, phase))
		}
		out = append(out, f.square(total))
	}
	return out
}
