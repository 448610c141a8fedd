package qhobound

import "errors"

var (
	// ErrHalfWidth reports a stencil half-width below 1.
	ErrHalfWidth = errors.New("qhobound: half-width p must be at least 1")

	// ErrNonPositiveTau reports a sampling interval with no physical
	// interpretation.
	ErrNonPositiveTau = errors.New("qhobound: sampling interval tau must be positive")

	// ErrLengthMismatch reports weight and phase sequences of different
	// lengths; pairing them positionally would be meaningless.
	ErrLengthMismatch = errors.New("qhobound: weight and phase sequences differ in length")

	// ErrNegativeCoefficient reports a negative entry where a squared
	// quantity is expected; the geometric mean of such a pair is undefined.
	ErrNegativeCoefficient = errors.New("qhobound: boundary coefficients must be non-negative")
)
