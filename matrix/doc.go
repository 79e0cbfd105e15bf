// Package matrix provides a generic dense 2-D matrix with validated
// construction and basic linear algebra.
//
// The matrix package provides:
//
//   - New / Diag / Identity constructors that enforce a non-empty, rectangular
//     shape (ErrEmptyMatrix, ErrEmptyRow, ErrInconsistentRowLength).
//   - Mul, Add, Sub, Transpose and Scale, each returning a freshly allocated
//     result and never touching its operands.
//   - LU (Doolittle, unit-diagonal L, no pivoting) and Det (product of U's
//     diagonal).
//
// Matrix[T] works for any scalar T that has a numeric.Field: every Go integer
// and float kind and decimal.Decimal are resolved automatically, other types
// (e.g. cplx.Complex[float64]) are passed in with WithField.
//
// Matrices are logically immutable: there is no public Set, and At/Row/
// ToSlices hand out copies. Independent calls may therefore run concurrently.
//
// See the examples in this package for usage patterns.
package matrix
