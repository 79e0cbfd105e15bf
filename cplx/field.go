// SPDX-License-Identifier: MIT

package cplx

import "github.com/K1T3K1/rsmath/numeric"

// Field adapts Complex[T] to numeric.Field.
//
// Div panics with ErrDivisionByZero on a zero divisor: the Field contract has
// no error return, and generic callers such as matrix.LU test IsZero before
// dividing.
type Field[T numeric.Scalar] struct{}

var _ numeric.Field[Complex[float64]] = Field[float64]{}

func (Field[T]) Zero() Complex[T] {
	f := numeric.FieldOf[T]()

	return Complex[T]{Re: f.Zero(), Im: f.Zero()}
}

func (Field[T]) One() Complex[T] {
	f := numeric.FieldOf[T]()

	return Complex[T]{Re: f.One(), Im: f.Zero()}
}

func (Field[T]) FromInt(v int) Complex[T] {
	f := numeric.FieldOf[T]()

	return Complex[T]{Re: f.FromInt(v), Im: f.Zero()}
}

func (Field[T]) Add(a, b Complex[T]) Complex[T] { return a.Add(b) }
func (Field[T]) Sub(a, b Complex[T]) Complex[T] { return a.Sub(b) }
func (Field[T]) Mul(a, b Complex[T]) Complex[T] { return a.Mul(b) }

func (Field[T]) Div(a, b Complex[T]) Complex[T] {
	q, err := a.Div(b)
	if err != nil {
		panic(err)
	}

	return q
}

func (Field[T]) IsZero(v Complex[T]) bool   { return v.IsZero() }
func (Field[T]) Equal(a, b Complex[T]) bool { return a.Equal(b) }
