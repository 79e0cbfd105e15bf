// Package dft computes the discrete Fourier transform of a sequence of
// cplx.Complex values by direct summation,
//
//	X[k] = Σ_{n=0}^{N-1} x[n] · exp(-i·2π·k·n/N),
//
// in O(N²) operations. No radix recursion is used, so every length N
// (including primes and zero) is handled the same way.
//
// Twiddle factors are computed through decimal.Decimal: the phase angle
// -2π·r/N is formed and divided in decimal arithmetic, which is where the
// extra precision comes from. Its sine and cosine are then evaluated by
// decimal.Decimal, whose series are only about float64-accurate, and the
// results are converted to the working scalar type (int, float or
// decimal.Decimal). The product n·k is reduced modulo N first, which is exact and
// keeps every angle inside (-2π, 0], so the N² terms share only N distinct
// rotations.
package dft
