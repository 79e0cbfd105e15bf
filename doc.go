// Package rsmath is a small generic numeric-algebra core: complex numbers,
// dense matrices and a discrete Fourier transform, all parameterised over
// the scalar type.
//
// 🚀 What is rsmath?
//
//	A pure-Go library that brings together:
//		• Scalars: a Field abstraction over Go integers, floats and decimal.Decimal
//		• Complex numbers: Complex[T] with Add, Sub, Mul, Div, Pow, Conj
//		• Matrices: validated construction, Mul, Add, Sub, Transpose, LU, Det
//		• Spectra: direct O(N²) DFT and its inverse, twiddles in decimal precision
//
// ✨ Why choose rsmath?
//
//   - Generic – one implementation for float64, int, decimal.Decimal, Complex[T]
//   - Explicit – every shape or arithmetic failure is a sentinel error
//   - Immutable – operations return fresh values, operands are never mutated
//   - Pure Go – no cgo
//
// Everything is organized under four subpackages:
//
//	numeric/ — Real constraint, Field[T] interface, built-in and decimal fields
//	cplx/    — Complex[T] value type and its Field
//	matrix/  — Matrix[T]: New, Diag, Identity, Mul, Add, Sub, LU, Det
//	dft/     — Transform, Inverse, Twiddles
//
// Quick ASCII example:
//
//	    ┌ 4 3 ┐   ┌ 1   0 ┐ ┌ 4  3   ┐
//	    └ 6 3 ┘ = └ 1.5 1 ┘ └ 0 -1.5 ┘    det = 4·(-1.5) = -6
//
// Runnable demos live under examples/.
//
//	go get github.com/K1T3K1/rsmath
package rsmath
