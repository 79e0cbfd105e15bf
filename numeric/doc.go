// Package numeric defines the scalar capability set shared by cplx, matrix
// and dft.
//
// Two mechanisms are provided:
//
//   - Real, a compile-time constraint over every Go integer and float kind.
//     Types satisfying it use the native operators directly (Builtin).
//   - Scalar, the closed set of signed integers, floats and decimal.Decimal
//     that cplx and dft accept. FieldOf returns its Field without an error
//     path, and FromDecimal converts a decimal into any member.
//   - Field[T], a small arithmetic interface (zero, one, integer conversion,
//     add/sub/mul/div, zero test). It lets generic algorithms run over types
//     without operators, such as decimal.Decimal or cplx.Complex[T].
//
// Lookup[T] resolves a Field at runtime for the built-in kinds and for
// decimal.Decimal; any other scalar must supply its own Field.
package numeric
