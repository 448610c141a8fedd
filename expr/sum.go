package expr

import (
	"math/big"
	"sort"
	"strings"

	"github.com/averch/qhobound/bigfloat"
)

// sum is a flattened n-ary sum.
type sum struct{ terms []Expr }

// Add returns the simplified sum of the given terms.
func Add(terms ...Expr) Expr { return (&sum{terms: terms}).Simplify() }

func (s *sum) Simplify() Expr {
	flat := make([]Expr, 0, len(s.terms))
	for _, t := range s.terms {
		switch v := t.Simplify().(type) {
		case *sum:
			flat = append(flat, v.terms...)
		default:
			flat = append(flat, v)
		}
	}

	total := new(big.Rat)
	coeffs := map[string]*big.Rat{} // bare-variable like terms
	names := []string{}
	others := []Expr{}
	for _, t := range flat {
		switch v := t.(type) {
		case *num:
			total.Add(total, v.val)
		case *symbol:
			c, seen := coeffs[v.name]
			if !seen {
				c = new(big.Rat)
				coeffs[v.name] = c
				names = append(names, v.name)
			}
			c.Add(c, ratOne)
		default:
			others = append(others, t)
		}
	}

	sort.Strings(names)
	sortByString(others)

	result := make([]Expr, 0, len(names)+len(others)+1)
	for _, name := range names {
		c := coeffs[name]
		switch {
		case c.Sign() == 0:
		case c.Cmp(ratOne) == 0:
			result = append(result, Symbol(name))
		default:
			result = append(result, Mul(FromRat(c), Symbol(name)))
		}
	}
	result = append(result, others...)
	if total.Sign() != 0 {
		result = append(result, FromRat(total))
	}

	switch len(result) {
	case 0:
		return Int(0)
	case 1:
		return result[0]
	}
	return &sum{terms: result}
}

// sortByString orders expressions by their rendered form, precomputing the
// keys so String is called once per element.
func sortByString(es []Expr) {
	type keyed struct {
		e   Expr
		key string
	}
	ks := make([]keyed, len(es))
	for i, e := range es {
		ks[i] = keyed{e: e, key: e.String()}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	for i := range ks {
		es[i] = ks[i].e
	}
}

func (s *sum) String() string {
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (s *sum) LaTeX() string {
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}

func (s *sum) Sub(name string, value Expr) Expr {
	terms := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		terms[i] = t.Sub(name, value)
	}
	return Add(terms...)
}

func (s *sum) Diff(name string) Expr {
	terms := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		terms[i] = t.Diff(name)
	}
	return Add(terms...)
}

func (s *sum) Rational() (*big.Rat, bool) {
	acc := new(big.Rat)
	for _, t := range s.terms {
		r, ok := t.Rational()
		if !ok {
			return nil, false
		}
		acc.Add(acc, r)
	}
	return acc, true
}

func (s *sum) Eval(ctx *bigfloat.Context) (*big.Float, bool) {
	acc := ctx.New()
	for _, t := range s.terms {
		v, ok := t.Eval(ctx)
		if !ok {
			return nil, false
		}
		acc = ctx.Add(acc, v)
	}
	return acc, true
}
