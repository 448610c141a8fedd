package expr_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/averch/qhobound/bigfloat"
	"github.com/averch/qhobound/expr"
)

// ============================================================
// Constants
// ============================================================

func TestInt_String(t *testing.T) {
	if got := expr.Int(42).String(); got != "42" {
		t.Errorf("want 42, got %s", got)
	}
}

func TestFrac_String(t *testing.T) {
	if got := expr.Frac(1, 3).String(); got != "1/3" {
		t.Errorf("want 1/3, got %s", got)
	}
}

func TestFrac_LaTeX(t *testing.T) {
	if got := expr.Frac(2, 5).LaTeX(); got != `\frac{2}{5}` {
		t.Errorf("want \\frac{2}{5}, got %s", got)
	}
}

func TestFrac_Negative_LaTeX(t *testing.T) {
	if got := expr.Frac(-2, 5).LaTeX(); got != `-\frac{2}{5}` {
		t.Errorf("want -\\frac{2}{5}, got %s", got)
	}
}

func TestFrac_ZeroDenominator_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Frac with zero denominator should panic")
		}
	}()
	expr.Frac(1, 0)
}

func TestFromRat_Copies(t *testing.T) {
	r := big.NewRat(1, 3)
	e := expr.FromRat(r)
	r.SetInt64(7)
	if e.String() != "1/3" {
		t.Errorf("FromRat should copy its argument, got %s", e.String())
	}
}

// ============================================================
// Symbols
// ============================================================

func TestSymbol_String(t *testing.T) {
	if got := expr.Symbol("tau").String(); got != "tau" {
		t.Errorf("want tau, got %s", got)
	}
}

func TestSymbol_Sub_Match(t *testing.T) {
	got := expr.Symbol("x").Sub("x", expr.Int(3))
	if got.String() != "3" {
		t.Errorf("want 3, got %s", got.String())
	}
}

func TestSymbol_Sub_NoMatch(t *testing.T) {
	got := expr.Symbol("x").Sub("y", expr.Int(3))
	if got.String() != "x" {
		t.Errorf("want x, got %s", got.String())
	}
}

func TestSymbol_Diff(t *testing.T) {
	if got := expr.Symbol("x").Diff("x").String(); got != "1" {
		t.Errorf("d/dx(x) should be 1, got %s", got)
	}
	if got := expr.Symbol("y").Diff("x").String(); got != "0" {
		t.Errorf("d/dx(y) should be 0, got %s", got)
	}
}

// ============================================================
// Sums
// ============================================================

func TestAdd_Simple(t *testing.T) {
	got := expr.Add(expr.Symbol("x"), expr.Int(3))
	if got.String() != "x + 3" {
		t.Errorf("want 'x + 3', got %s", got.String())
	}
}

func TestAdd_CollapseToZero(t *testing.T) {
	got := expr.Add(expr.Int(1), expr.Int(-1))
	if got.String() != "0" {
		t.Errorf("want 0, got %s", got.String())
	}
}

func TestAdd_LikeTerms(t *testing.T) {
	x := expr.Symbol("x")
	got := expr.Add(x, x)
	if got.String() != "2*x" {
		t.Errorf("want '2*x', got %s", got.String())
	}
}

func TestAdd_SingleTerm(t *testing.T) {
	got := expr.Add(expr.Int(5))
	if got.String() != "5" {
		t.Errorf("single-term sum should unwrap, got %s", got.String())
	}
}

func TestAdd_ExactRationalFold(t *testing.T) {
	got := expr.Add(expr.Frac(1, 3), expr.Frac(1, 6))
	if got.String() != "1/2" {
		t.Errorf("1/3 + 1/6 should fold to 1/2, got %s", got.String())
	}
}

// ============================================================
// Products
// ============================================================

func TestMul_Simple(t *testing.T) {
	got := expr.Mul(expr.Int(3), expr.Symbol("x"))
	if got.String() != "3*x" {
		t.Errorf("want '3*x', got %s", got.String())
	}
}

func TestMul_ZeroCollapse(t *testing.T) {
	got := expr.Mul(expr.Int(0), expr.Symbol("x"))
	if got.String() != "0" {
		t.Errorf("0*x should be 0, got %s", got.String())
	}
}

func TestMul_OneElide(t *testing.T) {
	got := expr.Mul(expr.Int(1), expr.Symbol("x"))
	if got.String() != "x" {
		t.Errorf("1*x should be x, got %s", got.String())
	}
}

func TestMul_DeterministicOrder(t *testing.T) {
	got := expr.Mul(expr.Symbol("y"), expr.Symbol("x"))
	if got.String() != "x*y" {
		t.Errorf("factors should sort deterministically, got %s", got.String())
	}
}

func TestMul_ProductRule(t *testing.T) {
	x := expr.Symbol("x")
	got := expr.Mul(x, x).Diff("x")
	if got.String() != "2*x" {
		t.Errorf("d/dx(x*x) should be 2*x, got %s", got.String())
	}
}

// ============================================================
// Powers
// ============================================================

func TestPow_ZeroExp(t *testing.T) {
	got := expr.Pow(expr.Symbol("x"), expr.Int(0))
	if got.String() != "1" {
		t.Errorf("x^0 should be 1, got %s", got.String())
	}
}

func TestPow_OneExp(t *testing.T) {
	got := expr.Pow(expr.Symbol("x"), expr.Int(1))
	if got.String() != "x" {
		t.Errorf("x^1 should be x, got %s", got.String())
	}
}

func TestPow_NumericFold(t *testing.T) {
	got := expr.Pow(expr.Int(2), expr.Int(3))
	if got.String() != "8" {
		t.Errorf("2^3 should fold to 8, got %s", got.String())
	}
}

func TestPow_NegativeExpFold(t *testing.T) {
	got := expr.Pow(expr.Frac(2, 3), expr.Int(-2))
	if got.String() != "9/4" {
		t.Errorf("(2/3)^-2 should fold to 9/4, got %s", got.String())
	}
}

func TestPow_SumBaseParens(t *testing.T) {
	got := expr.Square(expr.Add(expr.Symbol("x"), expr.Int(1)))
	if got.String() != "(x + 1)^2" {
		t.Errorf("want '(x + 1)^2', got %s", got.String())
	}
}

func TestPow_LaTeX(t *testing.T) {
	got := expr.Pow(expr.Symbol("x"), expr.Int(2))
	if got.LaTeX() != "x^{2}" {
		t.Errorf("want x^{2}, got %s", got.LaTeX())
	}
}

func TestPow_PowerRule(t *testing.T) {
	got := expr.Pow(expr.Symbol("x"), expr.Int(3)).Diff("x")
	if got.String() != "3*x^2" {
		t.Errorf("d/dx(x^3) should be 3*x^2, got %s", got.String())
	}
}

func TestPow_Diff_SymbolicExponent_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Diff with a symbolic exponent should panic")
		}
	}()
	expr.Pow(expr.Symbol("x"), expr.Symbol("y")).Diff("x")
}

// ============================================================
// Trigonometric functions
// ============================================================

func TestSin_String(t *testing.T) {
	got := expr.Sin(expr.Symbol("x"))
	if got.String() != "sin(x)" {
		t.Errorf("want sin(x), got %s", got.String())
	}
}

func TestSin_ZeroArg(t *testing.T) {
	if got := expr.Sin(expr.Int(0)).String(); got != "0" {
		t.Errorf("sin(0) should be 0, got %s", got)
	}
}

func TestCos_ZeroArg(t *testing.T) {
	if got := expr.Cos(expr.Int(0)).String(); got != "1" {
		t.Errorf("cos(0) should be 1, got %s", got)
	}
}

func TestSin_NumericArgStaysExact(t *testing.T) {
	// Unlike float-folding kernels, numeric arguments stay symbolic so the
	// closed form survives until an evaluation precision is chosen.
	got := expr.Sin(expr.Frac(1, 2))
	if got.String() != "sin(1/2)" {
		t.Errorf("sin(1/2) should stay symbolic, got %s", got.String())
	}
}

func TestSin_Diff(t *testing.T) {
	got := expr.Sin(expr.Symbol("x")).Diff("x")
	if got.String() != "cos(x)" {
		t.Errorf("d/dx(sin(x)) should be cos(x), got %s", got.String())
	}
}

func TestCos_Diff(t *testing.T) {
	got := expr.Cos(expr.Symbol("x")).Diff("x")
	if got.String() != "-1*sin(x)" {
		t.Errorf("d/dx(cos(x)) should be -1*sin(x), got %s", got.String())
	}
}

func TestSin_ChainRule(t *testing.T) {
	x := expr.Symbol("x")
	got := expr.Sin(expr.Square(x)).Diff("x")
	if got.String() != "2*cos(x^2)*x" && got.String() != "2*x*cos(x^2)" {
		t.Errorf("d/dx(sin(x^2)) unexpected: %s", got.String())
	}
}

func TestSin_LaTeX(t *testing.T) {
	got := expr.Sin(expr.Symbol("x")).LaTeX()
	if got != `\sin\left(x\right)` {
		t.Errorf("want \\sin\\left(x\\right), got %s", got)
	}
}

// ============================================================
// Rational and numeric evaluation
// ============================================================

func TestRational_Exact(t *testing.T) {
	e := expr.Mul(expr.Frac(1, 3), expr.Add(expr.Int(1), expr.Frac(1, 2)))
	r, ok := e.Rational()
	if !ok {
		t.Fatal("expected an exact rational value")
	}
	if r.Cmp(big.NewRat(1, 2)) != 0 {
		t.Errorf("want 1/2, got %s", r.RatString())
	}
}

func TestRational_Trig_NotRational(t *testing.T) {
	if _, ok := expr.Sin(expr.Frac(1, 2)).Rational(); ok {
		t.Error("sin(1/2) must not report a rational value")
	}
}

func TestEval_Rational(t *testing.T) {
	ctx := bigfloat.NewContext(30)
	v, ok := expr.Frac(1, 2).Eval(ctx)
	if !ok {
		t.Fatal("Eval of a constant should succeed")
	}
	if f, _ := v.Float64(); f != 0.5 {
		t.Errorf("want 0.5, got %v", f)
	}
}

func TestEval_Sin(t *testing.T) {
	ctx := bigfloat.NewContext(30)
	v, ok := expr.Sin(expr.Frac(1, 2)).Eval(ctx)
	if !ok {
		t.Fatal("Eval of sin(1/2) should succeed")
	}
	f, _ := v.Float64()
	if math.Abs(f-math.Sin(0.5)) > 1e-14 {
		t.Errorf("sin(1/2): want %v, got %v", math.Sin(0.5), f)
	}
}

func TestEval_HalfIntegerExponent(t *testing.T) {
	ctx := bigfloat.NewContext(30)
	v, ok := expr.Sqrt(expr.Int(2)).Eval(ctx)
	if !ok {
		t.Fatal("Eval of sqrt(2) should succeed")
	}
	f, _ := v.Float64()
	if math.Abs(f-math.Sqrt2) > 1e-14 {
		t.Errorf("sqrt(2): want %v, got %v", math.Sqrt2, f)
	}
}

func TestEval_FreeVariableFails(t *testing.T) {
	ctx := bigfloat.NewContext(30)
	if _, ok := expr.Add(expr.Symbol("x"), expr.Int(1)).Eval(ctx); ok {
		t.Error("Eval with a free variable should report false")
	}
}

func TestSub_ThenEval(t *testing.T) {
	ctx := bigfloat.NewContext(30)
	e := expr.Square(expr.Add(expr.Symbol("x"), expr.Int(1)))
	v, ok := e.Sub("x", expr.Int(2)).Eval(ctx)
	if !ok {
		t.Fatal("Eval after substitution should succeed")
	}
	if f, _ := v.Float64(); f != 9 {
		t.Errorf("(x+1)^2 at x=2: want 9, got %v", f)
	}
}

// ============================================================
// Free symbols and determinism
// ============================================================

func TestFreeSymbols(t *testing.T) {
	e := expr.Add(expr.Symbol("x"), expr.Mul(expr.Symbol("y"), expr.Int(2)))
	syms := expr.FreeSymbols(e)
	if _, ok := syms["x"]; !ok {
		t.Error("expected x in free symbols")
	}
	if _, ok := syms["y"]; !ok {
		t.Error("expected y in free symbols")
	}
	if len(syms) != 2 {
		t.Errorf("expected 2 free symbols, got %d", len(syms))
	}
}

func TestFreeSymbols_Constant(t *testing.T) {
	if n := len(expr.FreeSymbols(expr.Int(5))); n != 0 {
		t.Errorf("constant should have no free symbols, got %d", n)
	}
}

func TestDeterminism(t *testing.T) {
	build := func() string {
		return expr.Add(
			expr.Symbol("z"), expr.Symbol("a"), expr.Symbol("m"),
			expr.Sin(expr.Symbol("q")), expr.Int(1),
		).String()
	}
	want := build()
	for i := 0; i < 10; i++ {
		if got := build(); got != want {
			t.Fatalf("non-deterministic output on iteration %d: %s != %s", i, got, want)
		}
	}
}
