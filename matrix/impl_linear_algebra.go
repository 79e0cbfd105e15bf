// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels over Matrix[T]:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, Doolittle LU decomposition and the determinant. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Results inherit the arithmetic field of the left (or only) operand.
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opLU        = "LU"
	opDet       = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = op(a, b) for op ∈ {field.Add, field.Sub}.
// Inputs must have identical shapes. A fresh matrix is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation and allocation.
//
// Errors:
//   - ErrNilMatrix, ErrNotAdditive (from ValidateAdditive), wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T any](a, b *Matrix[T], op func(x, y T) T, opTag string) (*Matrix[T], error) {
	if err := ValidateAdditive(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows := make([][]T, len(a.rows))
	var i, j int
	for i = 0; i < len(a.rows); i++ {
		rows[i] = make([]T, a.width)
		for j = 0; j < a.width; j++ {
			rows[i][j] = op(a.rows[i][j], b.rows[i][j])
		}
	}

	return &Matrix[T]{rows: rows, width: a.width, field: a.field}, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotAdditive (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T any](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return addSub(a, b, a.field.Add, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotAdditive (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T any](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return addSub(a, b, a.field.Sub, opSub)
}

// Mul performs standard matrix multiplication C = A × B,
// C[i,j] = Σ_k A[i,k]·B[k,j].
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop, accumulating from the field's zero.
//
// Returns:
//   - *Matrix: new C with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrNotMultiplicable (inner mismatch).
//
// Determinism:
//   - Fixed i→j→k order; every cell sums its products in ascending k.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T any](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMultiplicable(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	f := a.field
	res := zeros(len(a.rows), b.width, f)
	var (
		i, j, k int
		acc     T
	)
	for i = 0; i < len(a.rows); i++ {
		for j = 0; j < b.width; j++ {
			acc = f.Zero()
			for k = 0; k < a.width; k++ {
				acc = f.Add(acc, f.Mul(a.rows[i][k], b.rows[k][j]))
			}
			res.rows[i][j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows := make([][]T, m.width)
	var i, j int
	for j = 0; j < m.width; j++ {
		rows[j] = make([]T, len(m.rows))
		for i = 0; i < len(m.rows); i++ {
			rows[j][i] = m.rows[i][j]
		}
	}

	return &Matrix[T]{rows: rows, width: len(m.rows), field: m.field}, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T any](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	f := m.field
	rows := make([][]T, len(m.rows))
	for i, r := range m.rows {
		rows[i] = make([]T, m.width)
		for j, v := range r {
			rows[i][j] = f.Mul(alpha, v)
		}
	}

	return &Matrix[T]{rows: rows, width: m.width, field: f}, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); L = diag(n, 1), U = diag(n, 0).
//   - Stage 2: Sweep every cell (i,j) in row-major order:
//     i ≤ j: U[i,j] = A[i,j] − Σ_{k<i} L[i,k]·U[k,j]
//     i > j: L[i,j] = (A[i,j] − Σ_{k<j} L[i,k]·U[k,j]) / U[j,j]
//   - Stage 3: re-assert L[i,i] = 1.
//
// Behavior highlights:
//   - Row-major order guarantees U[j,j] (row j) is final before any L[i,j], i > j, reads it.
//   - No pivot selection: valid only when every leading principal minor is non-zero.
//
// Returns:
//   - *Matrix: L (unit lower triangular).
//   - *Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//   - ErrZeroPivot when a divisor U[j,j] is zero (wrapped with its index).
//
// Determinism:
//   - Fixed i→j sweep and ascending-k sums; identical inputs give identical outputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - A zero in the last pivot U[n-1,n-1] is never used as a divisor and is not
//     an error: Det then returns zero.
func LU[T any](m *Matrix[T]) (*Matrix[T], *Matrix[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	f := m.field
	n := len(m.rows)
	L := diag(n, f.One(), f)
	U := diag(n, f.Zero(), f)

	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i <= j {
				sum = f.Zero()
				for k = 0; k < i; k++ {
					sum = f.Add(sum, f.Mul(L.rows[i][k], U.rows[k][j]))
				}
				U.rows[i][j] = f.Sub(m.rows[i][j], sum)
				continue
			}

			sum = f.Zero()
			for k = 0; k < j; k++ {
				sum = f.Add(sum, f.Mul(L.rows[i][k], U.rows[k][j]))
			}
			if f.IsZero(U.rows[j][j]) {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("U[%d,%d]: %w", j, j, ErrZeroPivot))
			}
			L.rows[i][j] = f.Div(f.Sub(m.rows[i][j], sum), U.rows[j][j])
		}
	}

	// The sweep never writes the diagonal of L; keep it unit regardless.
	for i = 0; i < n; i++ {
		L.rows[i][i] = f.One()
	}

	return L, U, nil
}

// Det returns the determinant of a square matrix.
//
// Implementation:
//   - 1×1: the sole element.
//   - n×n: LU, then Π U[i,i] (L is unit lower triangular, so det(L) = 1).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare.
//   - ErrZeroPivot propagated from LU.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det[T any](m *Matrix[T]) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	if m.width == 1 {
		return m.rows[0][0], nil
	}

	_, U, err := LU(m)
	if err != nil {
		return zero, matrixErrorf(opDet, err)
	}

	f := m.field
	det := f.One()
	for i := 0; i < m.width; i++ {
		det = f.Mul(det, U.rows[i][i])
	}

	return det, nil
}

// Equal reports whether a and b have the same shape and every pair of cells
// is equal under a's field. Two nil matrices are equal.
//
// Complexity: O(r*c).
func Equal[T any](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.rows) != len(b.rows) || a.width != b.width {
		return false
	}
	for i := range a.rows {
		for j := range a.rows[i] {
			if !a.field.Equal(a.rows[i][j], b.rows[i][j]) {
				return false
			}
		}
	}

	return true
}
