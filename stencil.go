package qhobound

import "math/big"

// Coefficients returns the central finite-difference coefficients for the
// second derivative on a symmetric stencil of 2p+1 points, ordered from
// offset -p to +p, as exact rationals:
//
//	c[k] = -2·(-1)^k·(p!)² / (k²·(p-k)!·(p+k)!)   for k = 1..p
//
// mirrored to the left side, with the center coefficient fixed by
// c[0] = -2·Σ_{k=1..p} c[k] so the stencil annihilates constants exactly.
// Half-widths below 1 return ErrHalfWidth.
func Coefficients(p int) ([]*big.Rat, error) {
	if p < 1 {
		return nil, ErrHalfWidth
	}

	pFact := factorial(p)
	pFactSq := new(big.Int).Mul(pFact, pFact)

	right := make([]*big.Rat, p+1) // right[k] = c[k], k = 1..p
	center := new(big.Rat)
	for k := 1; k <= p; k++ {
		num := new(big.Int).Mul(big.NewInt(-2), pFactSq)
		if k%2 == 1 {
			num.Neg(num) // -2·(-1)^k
		}
		den := new(big.Int).SetInt64(int64(k) * int64(k))
		den.Mul(den, factorial(p-k))
		den.Mul(den, factorial(p+k))
		right[k] = new(big.Rat).SetFrac(num, den)
		center.Add(center, right[k])
	}
	center.Mul(center, big.NewRat(-2, 1))

	out := make([]*big.Rat, 0, 2*p+1)
	for k := p; k >= 1; k-- {
		out = append(out, new(big.Rat).Set(right[k]))
	}
	out = append(out, center)
	out = append(out, right[1:]...)
	return out, nil
}

func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}
