// SPDX-License-Identifier: MIT

package cplx

import (
	"fmt"

	"github.com/K1T3K1/rsmath/numeric"
)

// Operation tags for error wrapping.
const (
	opDiv = "Div"
	opPow = "Pow"
)

// Complex is a complex number with real part Re and imaginary part Im.
//
// The arithmetic of T comes from numeric.FieldOf: native operators for the
// Go kinds, decimal.Decimal's own methods for decimals.
type Complex[T numeric.Scalar] struct {
	Re T
	Im T
}

// New returns re + im·i.
func New[T numeric.Scalar](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Add returns a + b.
func (a Complex[T]) Add(b Complex[T]) Complex[T] {
	f := numeric.FieldOf[T]()

	return Complex[T]{Re: f.Add(a.Re, b.Re), Im: f.Add(a.Im, b.Im)}
}

// Sub returns a - b.
func (a Complex[T]) Sub(b Complex[T]) Complex[T] {
	f := numeric.FieldOf[T]()

	return Complex[T]{Re: f.Sub(a.Re, b.Re), Im: f.Sub(a.Im, b.Im)}
}

// Mul returns the complex product a·b.
func (a Complex[T]) Mul(b Complex[T]) Complex[T] {
	return mul(numeric.FieldOf[T](), a, b)
}

func mul[T numeric.Scalar](f numeric.Field[T], a, b Complex[T]) Complex[T] {
	return Complex[T]{
		Re: f.Sub(f.Mul(a.Re, b.Re), f.Mul(a.Im, b.Im)),
		Im: f.Add(f.Mul(a.Im, b.Re), f.Mul(a.Re, b.Im)),
	}
}

// Div returns a / b computed as a·conj(b) / |b|².
//
// For integer T every step truncates, exactly as the native operators do;
// decimal.Decimal rounds to numeric.DecimalPrecision digits.
//
// Errors:
//   - ErrDivisionByZero when |b|² == 0.
func (a Complex[T]) Div(b Complex[T]) (Complex[T], error) {
	f := numeric.FieldOf[T]()
	d := b.Abs2()
	if f.IsZero(d) {
		return Complex[T]{}, fmt.Errorf("%s: %w", opDiv, ErrDivisionByZero)
	}

	return Complex[T]{
		Re: f.Div(f.Add(f.Mul(a.Re, b.Re), f.Mul(a.Im, b.Im)), d),
		Im: f.Div(f.Sub(f.Mul(a.Im, b.Re), f.Mul(a.Re, b.Im)), d),
	}, nil
}

// Pow returns aⁿ by repeated multiplication: a for n == 1, a·aⁿ⁻¹ otherwise.
// The product is accumulated left to right, so the rounding of floating-point
// results matches a.Mul(a.Mul(...)).
//
// Errors:
//   - ErrNonPositiveExponent for n < 1.
//
// Complexity: O(n) multiplications.
func (a Complex[T]) Pow(n int) (Complex[T], error) {
	if n < 1 {
		return Complex[T]{}, fmt.Errorf("%s(%d): %w", opPow, n, ErrNonPositiveExponent)
	}
	f := numeric.FieldOf[T]()
	res := a
	for i := 1; i < n; i++ {
		res = mul(f, a, res)
	}

	return res, nil
}

// Conj returns the complex conjugate re - im·i.
func (a Complex[T]) Conj() Complex[T] {
	f := numeric.FieldOf[T]()

	return Complex[T]{Re: a.Re, Im: f.Sub(f.Zero(), a.Im)}
}

// Scale multiplies both components by s.
func (a Complex[T]) Scale(s T) Complex[T] {
	f := numeric.FieldOf[T]()

	return Complex[T]{Re: f.Mul(a.Re, s), Im: f.Mul(a.Im, s)}
}

// Abs2 returns the squared magnitude re² + im².
func (a Complex[T]) Abs2() T {
	f := numeric.FieldOf[T]()

	return f.Add(f.Mul(a.Re, a.Re), f.Mul(a.Im, a.Im))
}

// IsZero reports whether both components are zero.
func (a Complex[T]) IsZero() bool {
	f := numeric.FieldOf[T]()

	return f.IsZero(a.Re) && f.IsZero(a.Im)
}

// Equal reports whether both components are equal under T's own equality.
// Decimals compare by value, so 1.0 equals 1.
func (a Complex[T]) Equal(b Complex[T]) bool {
	f := numeric.FieldOf[T]()

	return f.Equal(a.Re, b.Re) && f.Equal(a.Im, b.Im)
}

// String formats the value as "(re,im)".
func (a Complex[T]) String() string {
	return fmt.Sprintf("(%v,%v)", a.Re, a.Im)
}
