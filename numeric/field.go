// SPDX-License-Identifier: MIT

// Package numeric: scalar constraint and arithmetic field.
//
// Purpose:
//   - Keep generic kernels independent of any single floating-point type.
//   - Give operator-less scalars (decimal, complex) the same arithmetic surface.
//
// Determinism:
//   - Every Field method is pure; none keeps state between calls.

package numeric

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Real is satisfied by every Go integer and floating-point kind.
type Real interface {
	constraints.Integer | constraints.Float
}

// Scalar is the closed set of types with a built-in Field that also admit
// negative values: the signed integers, the floats and decimal.Decimal.
// Named types are excluded so that Lookup always succeeds for a Scalar.
type Scalar interface {
	int | int8 | int16 | int32 | int64 | float32 | float64 | decimal.Decimal
}

// Field is the arithmetic capability set a generic algorithm needs from its
// scalar type T.
//
// Div follows the semantics of T; callers that must not divide by zero check
// IsZero first.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt converts a small integer into T.
	FromInt(v int) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	// IsZero reports whether v equals the additive identity.
	IsZero(v T) bool
	// Equal reports exact equality under T's own notion of equality.
	Equal(a, b T) bool
}

// Builtin is the Field of a Go numeric kind, implemented with the native
// operators. The zero value is ready to use.
type Builtin[T Real] struct{}

// Compile-time conformance checks.
var (
	_ Field[float64]         = Builtin[float64]{}
	_ Field[int]             = Builtin[int]{}
	_ Field[decimal.Decimal] = Decimal{}
)

func (Builtin[T]) Zero() T           { return 0 }
func (Builtin[T]) One() T            { return 1 }
func (Builtin[T]) FromInt(v int) T   { return T(v) }
func (Builtin[T]) Add(a, b T) T      { return a + b }
func (Builtin[T]) Sub(a, b T) T      { return a - b }
func (Builtin[T]) Mul(a, b T) T      { return a * b }
func (Builtin[T]) Div(a, b T) T      { return a / b }
func (Builtin[T]) IsZero(v T) bool   { return v == 0 }
func (Builtin[T]) Equal(a, b T) bool { return a == b }

// DecimalPrecision is the number of fractional digits kept by Decimal.Div.
const DecimalPrecision = 28

// Decimal is the Field of decimal.Decimal. Division rounds half-up to
// DecimalPrecision fractional digits; all other operations are exact.
type Decimal struct{}

func (Decimal) Zero() decimal.Decimal         { return decimal.Zero }
func (Decimal) One() decimal.Decimal          { return decimal.NewFromInt(1) }
func (Decimal) FromInt(v int) decimal.Decimal { return decimal.NewFromInt(int64(v)) }

func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// Div returns a/b rounded to DecimalPrecision digits.
// decimal.Decimal panics on a zero divisor.
func (Decimal) Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, DecimalPrecision)
}

func (Decimal) IsZero(v decimal.Decimal) bool   { return v.IsZero() }
func (Decimal) Equal(a, b decimal.Decimal) bool { return a.Equal(b) }

// Lookup returns the built-in Field for T.
//
// Every Go integer and float kind and decimal.Decimal are recognised. Named
// types whose underlying type is numeric are not: the type switch matches the
// exact type only, so such scalars pass their own Builtin explicitly.
//
// Errors:
//   - ErrUnsupportedScalar (wrapped with the type name) for any other T.
func Lookup[T any]() (Field[T], error) {
	var zero T
	var f any
	switch any(zero).(type) {
	case int:
		f = Builtin[int]{}
	case int8:
		f = Builtin[int8]{}
	case int16:
		f = Builtin[int16]{}
	case int32:
		f = Builtin[int32]{}
	case int64:
		f = Builtin[int64]{}
	case uint:
		f = Builtin[uint]{}
	case uint8:
		f = Builtin[uint8]{}
	case uint16:
		f = Builtin[uint16]{}
	case uint32:
		f = Builtin[uint32]{}
	case uint64:
		f = Builtin[uint64]{}
	case uintptr:
		f = Builtin[uintptr]{}
	case float32:
		f = Builtin[float32]{}
	case float64:
		f = Builtin[float64]{}
	case decimal.Decimal:
		f = Decimal{}
	default:
		return nil, fmt.Errorf("Lookup(%T): %w", zero, ErrUnsupportedScalar)
	}

	return f.(Field[T]), nil
}

// FieldOf returns the built-in Field of a Scalar type.
// Lookup recognises every member of Scalar, so this never fails.
func FieldOf[T Scalar]() Field[T] {
	f, err := Lookup[T]()
	if err != nil {
		panic(err)
	}

	return f
}

// FromDecimal converts d to T.
//
// decimal.Decimal is returned unchanged. Every other Scalar is narrowed to
// float64 first and then converted, so integer kinds truncate toward zero.
func FromDecimal[T Scalar](d decimal.Decimal) T {
	var zero T
	if _, ok := any(zero).(decimal.Decimal); ok {
		return any(d).(T)
	}

	return fromFloat64[T](d.InexactFloat64())
}

// fromFloat64 converts v to a non-decimal Scalar.
func fromFloat64[T Scalar](v float64) T {
	var zero T
	var out any
	switch any(zero).(type) {
	case int:
		out = int(v)
	case int8:
		out = int8(v)
	case int16:
		out = int16(v)
	case int32:
		out = int32(v)
	case int64:
		out = int64(v)
	case float32:
		out = float32(v)
	default:
		out = v
	}

	return out.(T)
}
