package qhobound_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averch/qhobound"
)

func ratSlice(fracs ...[2]int64) []*big.Rat {
	out := make([]*big.Rat, len(fracs))
	for i, f := range fracs {
		out[i] = big.NewRat(f[0], f[1])
	}
	return out
}

func TestCoefficients_HalfWidthOne(t *testing.T) {
	c, err := qhobound.Coefficients(1)
	require.NoError(t, err)

	want := ratSlice([2]int64{1, 1}, [2]int64{-2, 1}, [2]int64{1, 1})
	require.Len(t, c, 3)
	for i := range want {
		assert.Zero(t, c[i].Cmp(want[i]), "c[%d]: want %s, got %s", i, want[i], c[i])
	}
}

func TestCoefficients_HalfWidthTwo(t *testing.T) {
	c, err := qhobound.Coefficients(2)
	require.NoError(t, err)

	want := ratSlice(
		[2]int64{-1, 12}, [2]int64{4, 3}, [2]int64{-5, 2}, [2]int64{4, 3}, [2]int64{-1, 12},
	)
	require.Len(t, c, 5)
	for i := range want {
		assert.Zero(t, c[i].Cmp(want[i]), "c[%d]: want %s, got %s", i, want[i], c[i])
	}
}

func TestCoefficients_Symmetry(t *testing.T) {
	for p := 1; p <= 12; p++ {
		c, err := qhobound.Coefficients(p)
		require.NoError(t, err)
		require.Len(t, c, 2*p+1)
		for k := 1; k <= p; k++ {
			assert.Zero(t, c[p-k].Cmp(c[p+k]), "p=%d: c[-%d] != c[+%d]", p, k, k)
		}
	}
}

func TestCoefficients_ConsistencyIdentity(t *testing.T) {
	// The center coefficient is fixed by c[0] = -2·Σ_{k=1..p} c[k],
	// as exact rational equality.
	for p := 1; p <= 12; p++ {
		c, err := qhobound.Coefficients(p)
		require.NoError(t, err)

		sum := new(big.Rat)
		for k := 1; k <= p; k++ {
			sum.Add(sum, c[p+k])
		}
		sum.Mul(sum, big.NewRat(-2, 1))
		assert.Zero(t, c[p].Cmp(sum), "p=%d: center coefficient identity violated", p)
	}
}

// TestCoefficients_MonomialExactness checks the stencil against monomials:
// a second-derivative stencil of order 2p must annihilate x^0, x^1 and x^3
// and reproduce (x²)'' = 2 exactly, all in exact rational arithmetic.
func TestCoefficients_MonomialExactness(t *testing.T) {
	two := big.NewRat(2, 1)
	for p := 1; p <= 10; p++ {
		c, err := qhobound.Coefficients(p)
		require.NoError(t, err)

		apply := func(degree int64) *big.Rat {
			acc := new(big.Rat)
			for i, coeff := range c {
				k := big.NewRat(int64(i-p), 1)
				mono := big.NewRat(1, 1)
				for d := int64(0); d < degree; d++ {
					mono.Mul(mono, k)
				}
				acc.Add(acc, new(big.Rat).Mul(coeff, mono))
			}
			return acc
		}

		assert.Zero(t, apply(0).Sign(), "p=%d: constants not annihilated", p)
		assert.Zero(t, apply(1).Sign(), "p=%d: linear terms not annihilated", p)
		assert.Zero(t, apply(2).Cmp(two), "p=%d: (x²)'' != 2", p)
		assert.Zero(t, apply(3).Sign(), "p=%d: cubic terms not annihilated", p)
		if p >= 2 {
			assert.Zero(t, apply(4).Sign(), "p=%d: quartic terms not annihilated", p)
		}
	}
}

func TestCoefficients_InvalidHalfWidth(t *testing.T) {
	for _, p := range []int{0, -1, -10} {
		_, err := qhobound.Coefficients(p)
		assert.ErrorIs(t, err, qhobound.ErrHalfWidth, "p=%d", p)
	}
}
