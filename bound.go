package qhobound

import "math/big"

// DefaultDigits is the decimal working precision used when a caller passes
// digits == 0.
const DefaultDigits = 50

// LowerBound computes the boundary-term variance lower bound
//
//	L(p, τ) = (1/τ) · Σ_{i=1..2p} 2·sqrt(a[i]·b[i])
//
// for a stencil of half-width p and sampling interval tau, at the given
// decimal precision (digits == 0 selects DefaultDigits).
//
// Each paired term is the closed-form minimum of a[i]/σ² + b[i]·σ² over the
// per-sample noise σ > 0, attained at σ² = sqrt(a[i]/b[i]) by the AM-GM
// inequality, so L is a provable lower bound on the boundary variance, not
// a numerical artifact.
func LowerBound(p int, tau *big.Float, digits uint) (*big.Float, error) {
	weights, phases, err := NumericBoundaryCoefficients(p, tau, digits)
	if err != nil {
		return nil, err
	}
	return BoundFromCoefficients(weights, phases, tau, digits)
}

// BoundFromCoefficients combines an already-built weight/phase pair into the
// scalar bound. The sequences are paired by index and must have equal
// length; every entry must be non-negative for the geometric mean to exist.
func BoundFromCoefficients(weights, phases []*big.Float, tau *big.Float, digits uint) (*big.Float, error) {
	if len(weights) != len(phases) {
		return nil, ErrLengthMismatch
	}
	if tau == nil || tau.Sign() <= 0 {
		return nil, ErrNonPositiveTau
	}

	ctx := newContext(digits)
	sum := ctx.New()
	for i := range weights {
		if weights[i].Sign() < 0 || phases[i].Sign() < 0 {
			return nil, ErrNegativeCoefficient
		}
		root := ctx.Sqrt(ctx.Mul(weights[i], phases[i]))
		sum = ctx.Add(sum, ctx.Add(root, root))
	}
	return ctx.Quo(sum, ctx.FromFloat(tau)), nil
}
