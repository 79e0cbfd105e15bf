// Package cplx implements a generic complex number over the signed Go
// integers, the floats and decimal.Decimal (numeric.Scalar). Arithmetic on the
// components goes through numeric.FieldOf, so the same code serves native
// operators and arbitrary-precision decimals.
//
// Complex[T] is an immutable value type: every method has a value receiver
// and returns a fresh value. Division by a zero-magnitude divisor and Pow with
// a non-positive exponent are reported as errors instead of leaking the
// scalar type's own division semantics (NaN/Inf for floats, a runtime panic
// for integers).
//
// Field[T] adapts Complex[T] to numeric.Field so complex numbers can be used
// as matrix scalars.
package cplx
