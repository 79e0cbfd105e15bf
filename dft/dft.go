// SPDX-License-Identifier: MIT

package dft

import (
	"github.com/K1T3K1/rsmath/cplx"
	"github.com/K1T3K1/rsmath/numeric"
)

// Transform returns the forward DFT of x:
// X[k] = Σ_{n=0}^{N-1} x[n]·exp(-i·2π·k·n/N).
//
// The input is not modified and the result is freshly allocated. An empty
// input yields an empty, non-nil result.
//
// Determinism:
//   - Every X[k] accumulates its terms in ascending n.
//
// Complexity:
//   - Time O(N²) complex multiply-adds plus O(N) decimal twiddles; Space O(N).
func Transform[T numeric.Scalar](x []cplx.Complex[T], opts ...Option) []cplx.Complex[T] {
	return sum(x, Twiddles[T](len(x), opts...), false)
}

// Inverse returns the inverse DFT of X:
// x[n] = (1/N)·Σ_{k=0}^{N-1} X[k]·exp(+i·2π·k·n/N),
// so Inverse(Transform(x)) reproduces x up to rounding.
//
// For integer T the final division by N truncates; decimal.Decimal rounds
// to numeric.DecimalPrecision digits.
//
// Complexity:
//   - Time O(N²), Space O(N).
func Inverse[T numeric.Scalar](x []cplx.Complex[T], opts ...Option) []cplx.Complex[T] {
	out := sum(x, Twiddles[T](len(x), opts...), true)
	if len(out) == 0 {
		return out
	}

	f := numeric.FieldOf[T]()
	n := f.FromInt(len(out))
	for i, v := range out {
		out[i] = cplx.Complex[T]{Re: f.Div(v.Re, n), Im: f.Div(v.Im, n)}
	}

	return out
}

// sum evaluates out[k] = Σ_n x[n]·w[(n·k) mod N], with conj(w) when conj is set.
func sum[T numeric.Scalar](x, w []cplx.Complex[T], conj bool) []cplx.Complex[T] {
	n := len(x)
	out := make([]cplx.Complex[T], n)

	var (
		k, j int
		acc  cplx.Complex[T]
		tw   cplx.Complex[T]
	)
	for k = 0; k < n; k++ {
		acc = cplx.Complex[T]{}
		for j = 0; j < n; j++ {
			tw = w[(j*k)%n]
			if conj {
				tw = tw.Conj()
			}
			acc = acc.Add(x[j].Mul(tw))
		}
		out[k] = acc
	}

	return out
}
