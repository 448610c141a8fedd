package qhobound

import (
	"math/big"

	"github.com/averch/qhobound/bigfloat"
	"github.com/averch/qhobound/expr"
)

// BoundaryCoefficients builds the two per-position boundary sequences in
// symbolic form: the exact weight sequence a[i] = c[i]²/4 for i = 0..2p-1
// over the 0-indexed stencil, and the phase sequence b[1..2p] as
// unevaluated expressions in tau. Both sequences have length 2p and are
// paired positionally (weights[i] with phases[i]).
//
// tau is usually a free symbol, expr.Symbol("tau"), yielding the
// human-checkable closed form; any expression, including an exact rational,
// works. The algebra is well-defined for every real tau, so no sign
// constraint is enforced here.
func BoundaryCoefficients(p int, tau expr.Expr) ([]*big.Rat, []expr.Expr, error) {
	c, err := Coefficients(p)
	if err != nil {
		return nil, nil, err
	}
	return boundaryWeights(c), phaseSequence[expr.Expr](symField{}, c, tau), nil
}

// NumericBoundaryCoefficients is the numeric mode of BoundaryCoefficients:
// the identical formula evaluated with arbitrary-precision floats at the
// given decimal precision (digits == 0 selects DefaultDigits). The sampling
// interval must be strictly positive.
func NumericBoundaryCoefficients(p int, tau *big.Float, digits uint) ([]*big.Float, []*big.Float, error) {
	if tau == nil || tau.Sign() <= 0 {
		return nil, nil, ErrNonPositiveTau
	}
	c, err := Coefficients(p)
	if err != nil {
		return nil, nil, err
	}

	ctx := newContext(digits)
	weights := make([]*big.Float, 0, len(c)-1)
	for _, w := range boundaryWeights(c) {
		weights = append(weights, ctx.FromRat(w))
	}
	phases := phaseSequence[*big.Float](floatField{ctx: ctx}, c, ctx.FromFloat(tau))
	return weights, phases, nil
}

// boundaryWeights squares and quarters the stencil coefficients, dropping
// the rightmost: the weight at boundary position i comes from the stencil
// coefficient that multiplies the boundary sample itself.
func boundaryWeights(c []*big.Rat) []*big.Rat {
	four := big.NewRat(4, 1)
	out := make([]*big.Rat, len(c)-1)
	for i := range out {
		sq := new(big.Rat).Mul(c[i], c[i])
		out[i] = sq.Quo(sq, four)
	}
	return out
}

func newContext(digits uint) *bigfloat.Context {
	if digits == 0 {
		digits = DefaultDigits
	}
	return bigfloat.NewContext(digits)
}
