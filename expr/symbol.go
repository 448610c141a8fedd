package expr

import (
	"math/big"

	"github.com/averch/qhobound/bigfloat"
)

// symbol is a free variable, identified by name.
type symbol struct{ name string }

// Symbol returns the variable with the given name.
func Symbol(name string) Expr { return &symbol{name: name} }

func (s *symbol) Simplify() Expr { return s }
func (s *symbol) String() string { return s.name }
func (s *symbol) LaTeX() string  { return s.name }

func (s *symbol) Sub(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

func (s *symbol) Diff(name string) Expr {
	if s.name == name {
		return Int(1)
	}
	return Int(0)
}

func (s *symbol) Rational() (*big.Rat, bool) { return nil, false }

func (s *symbol) Eval(*bigfloat.Context) (*big.Float, bool) { return nil, false }
