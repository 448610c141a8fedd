// Package bigfloat provides an arbitrary-precision numeric context over
// math/big.Float with a configurable decimal precision.
//
// A Context supplies the handful of operations the force-estimator pipeline
// needs beyond plain big.Float arithmetic: π, sine with full argument
// reduction, and square roots, all computed with internal guard bits and
// rounded back to the context precision. Contexts are cheap; π is cached
// after the first use.
package bigfloat

import (
	"fmt"
	"math"
	"math/big"
)

// guardBits is the extra mantissa precision carried by internal series
// evaluation so results rounded to the context precision are correct.
const guardBits = 32

// Context computes big.Float arithmetic at a fixed decimal precision.
// The zero value is not usable; construct with NewContext.
type Context struct {
	digits uint
	prec   uint // mantissa bits for results

	pi     *big.Float // cached π, valid to piPrec bits
	piPrec uint
}

// NewContext returns a context computing with the given number of
// significant decimal digits. digits == 0 is treated as 1.
func NewContext(digits uint) *Context {
	if digits == 0 {
		digits = 1
	}
	bits := uint(math.Ceil(float64(digits)*math.Log2(10))) + guardBits
	return &Context{digits: digits, prec: bits}
}

// Digits returns the decimal precision the context was created with.
func (c *Context) Digits() uint { return c.digits }

// Prec returns the mantissa precision, in bits, of results.
func (c *Context) Prec() uint { return c.prec }

func (c *Context) new() *big.Float { return new(big.Float).SetPrec(c.prec) }

// New returns a zero big.Float at the context precision.
func (c *Context) New() *big.Float { return c.new() }

// FromRat converts an exact rational to the context precision.
func (c *Context) FromRat(r *big.Rat) *big.Float { return c.new().SetRat(r) }

// FromInt64 converts an integer to the context precision.
func (c *Context) FromInt64(n int64) *big.Float { return c.new().SetInt64(n) }

// FromFloat rounds x to the context precision.
func (c *Context) FromFloat(x *big.Float) *big.Float { return c.new().Set(x) }

// Parse reads a decimal floating-point literal at the context precision.
func (c *Context) Parse(s string) (*big.Float, error) {
	f, _, err := big.ParseFloat(s, 10, c.prec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("bigfloat: parsing %q: %w", s, err)
	}
	return f, nil
}

// Add returns a+b at the context precision.
func (c *Context) Add(a, b *big.Float) *big.Float { return c.new().Add(a, b) }

// Sub returns a-b at the context precision.
func (c *Context) Sub(a, b *big.Float) *big.Float { return c.new().Sub(a, b) }

// Mul returns a*b at the context precision.
func (c *Context) Mul(a, b *big.Float) *big.Float { return c.new().Mul(a, b) }

// Quo returns a/b at the context precision. Division by zero panics, as it
// does for big.Float.
func (c *Context) Quo(a, b *big.Float) *big.Float { return c.new().Quo(a, b) }

// Neg returns -a at the context precision.
func (c *Context) Neg(a *big.Float) *big.Float { return c.new().Neg(a) }

// Sqrt returns the square root of x at the context precision.
// Negative x panics, as it does for big.Float.
func (c *Context) Sqrt(x *big.Float) *big.Float { return c.new().Sqrt(x) }

// Pi returns π at the context precision.
func (c *Context) Pi() *big.Float {
	return c.new().Set(c.piAt(c.prec + guardBits))
}

// piAt returns π valid to at least bits of precision, caching the widest
// value computed so far.
func (c *Context) piAt(bits uint) *big.Float {
	if c.pi == nil || c.piPrec < bits {
		c.pi = machinPi(bits + guardBits)
		c.piPrec = bits + guardBits
	}
	return c.pi
}

// machinPi computes π = 16·atan(1/5) − 4·atan(1/239) at prec bits.
func machinPi(prec uint) *big.Float {
	a := atanRecip(5, prec)
	a.Mul(a, new(big.Float).SetPrec(prec).SetInt64(16))
	b := atanRecip(239, prec)
	b.Mul(b, new(big.Float).SetPrec(prec).SetInt64(4))
	return a.Sub(a, b)
}

// atanRecip evaluates atan(1/n) by its Taylor series at prec bits.
// The series in 1/n² converges geometrically, so the cutoff below is exact
// enough: each dropped tail is smaller than the first dropped term.
func atanRecip(n int64, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	x := new(big.Float).SetPrec(prec).Quo(one, new(big.Float).SetPrec(prec).SetInt64(n))
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)

	sum := new(big.Float).SetPrec(prec)
	pow := new(big.Float).SetPrec(prec).Set(x) // x^(2k+1)
	term := new(big.Float).SetPrec(prec)
	eps := new(big.Float).SetMantExp(new(big.Float).SetInt64(1), -int(prec))

	for k := int64(0); ; k++ {
		term.Quo(pow, new(big.Float).SetPrec(prec).SetInt64(2*k+1))
		if k%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
		pow.Mul(pow, x2)
		if pow.Cmp(eps) < 0 {
			break
		}
	}
	return sum
}

// Sin returns sin(x) at the context precision. The argument is reduced
// modulo 2π before the Taylor series is summed; reduction carries enough
// extra precision to absorb the magnitude of x.
func (c *Context) Sin(x *big.Float) *big.Float {
	if x.Sign() == 0 {
		return c.new()
	}

	// Extra bits to survive cancellation in the range reduction.
	extra := x.MantExp(nil)
	if extra < 0 {
		extra = 0
	}
	wp := c.prec + guardBits + uint(extra)

	pi := c.piAt(wp)
	twoPi := new(big.Float).SetPrec(wp).Add(pi, pi)

	// r = x - floor(x/2π)·2π, in [0, 2π)
	r := new(big.Float).SetPrec(wp).Set(x)
	q := new(big.Float).SetPrec(wp).Quo(r, twoPi)
	qi, _ := q.Int(nil)
	qf := new(big.Float).SetPrec(wp).SetInt(qi)
	r.Sub(r, new(big.Float).SetPrec(wp).Mul(qf, twoPi))
	if r.Sign() < 0 {
		r.Add(r, twoPi)
	}
	// Shift to (-π, π] where the series converges quickly.
	if r.Cmp(pi) > 0 {
		r.Sub(r, twoPi)
	}

	return c.new().Set(taylorSin(r, wp))
}

// Cos returns cos(x) at the context precision, as sin(x + π/2).
func (c *Context) Cos(x *big.Float) *big.Float {
	wp := c.prec + guardBits
	halfPi := new(big.Float).SetPrec(wp).Quo(c.piAt(wp), new(big.Float).SetPrec(wp).SetInt64(2))
	return c.Sin(new(big.Float).SetPrec(wp).Add(x, halfPi))
}

// taylorSin sums the sine series for |x| ≤ π at prec bits.
func taylorSin(x *big.Float, prec uint) *big.Float {
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	term := new(big.Float).SetPrec(prec).Set(x)
	sum := new(big.Float).SetPrec(prec).Set(x)
	eps := new(big.Float).SetMantExp(new(big.Float).SetInt64(1), -int(prec))
	abs := new(big.Float).SetPrec(prec)

	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		term.Quo(term, new(big.Float).SetPrec(prec).SetInt64(2*k*(2*k+1)))
		term.Neg(term)
		sum.Add(sum, term)
		if abs.Abs(term); abs.Cmp(eps) < 0 {
			break
		}
	}
	return sum
}
