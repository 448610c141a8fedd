// Package qhobound derives lower bounds on the boundary-term variance of
// finite-difference force estimators for a continuously monitored quantum
// harmonic oscillator.
//
// The derivation is a linear pipeline of three pure functions:
//
//  1. Coefficients: exact central finite-difference coefficients for the
//     second derivative on a stencil of 2p+1 points.
//  2. BoundaryCoefficients / NumericBoundaryCoefficients: per-position
//     squared weights and squared phase sums describing how measurement
//     noise near a record boundary propagates into the force estimate,
//     available symbolically (exact rationals, τ a free symbol) and
//     numerically (arbitrary-precision floats).
//  3. LowerBound: the closed-form AM-GM minimum of the boundary variance
//     over all per-sample noise allocations, L(p, τ) = (1/τ)·Σ 2√(aᵢ·bᵢ).
//
// Both evaluation modes share one formula, parameterized over a small
// arithmetic capability, so the printed closed form and the computed scalar
// can never drift apart. Exact rational arithmetic (math/big) carries the
// combinatorially growing stencil coefficients; the numeric side runs at a
// configurable decimal precision (see package bigfloat).
package qhobound
