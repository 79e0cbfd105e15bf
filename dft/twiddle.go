// SPDX-License-Identifier: MIT

package dft

import (
	"github.com/shopspring/decimal"

	"github.com/K1T3K1/rsmath/cplx"
	"github.com/K1T3K1/rsmath/numeric"
)

// tau is 2π to 40 significant digits.
var tau = decimal.RequireFromString("6.283185307179586476925286766559005768394")

// Twiddles returns the n rotation factors w[r] = exp(-i·2π·r/n), r = 0..n-1,
// converted to T. The factor for the (n, k) term of a transform of length n
// is w[(n·k) mod n].
//
// Implementation:
//   - Stage 1: theta = (-τ·r) / n in decimal, rounded to the configured precision.
//   - Stage 2: sin(theta), cos(theta) in decimal, rounded to the same precision.
//   - Stage 3: convert to T with numeric.FromDecimal.
//
// The angle is exact to the configured precision, but decimal.Decimal's Sin
// and Cos are accurate to roughly 1e-16, about float64 level. A
// decimal.Decimal T therefore keeps factors with about 16 correct digits.
//
// For integer T the conversion truncates toward zero, so only the exact
// factors ±1 and 0 survive.
//
// Complexity: O(n) decimal trigonometric evaluations.
func Twiddles[T numeric.Scalar](n int, opts ...Option) []cplx.Complex[T] {
	o := gatherOptions(opts...)
	w := make([]cplx.Complex[T], n)
	if n == 0 {
		return w
	}

	length := decimal.NewFromInt(int64(n))
	negTau := tau.Neg()
	for r := 0; r < n; r++ {
		theta := negTau.Mul(decimal.NewFromInt(int64(r))).DivRound(length, o.precision)
		w[r] = cplx.Complex[T]{
			Re: numeric.FromDecimal[T](theta.Cos().Round(o.precision)),
			Im: numeric.FromDecimal[T](theta.Sin().Round(o.precision)),
		}
	}

	return w
}
