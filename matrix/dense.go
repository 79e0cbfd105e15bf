// SPDX-License-Identifier: MIT

// Package matrix - row storage & safe accessors.
//
// Purpose:
//   - Hold a rectangular grid of scalars as a slice of rows plus a cached width.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed i→j loop orders).
//
// Complexity quicksheet:
//   - New: O(r*c) copy; Diag: O(n^2); At: O(1); Row: O(c); ToSlices: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/K1T3K1/rsmath/numeric"
)

// ---------- error context tags ----------

const (
	ctxNew  = "New"
	ctxDiag = "Diag"
	ctxAt   = "At"
	ctxRow  = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense rectangular grid of scalars of type T.
//   - rows holds the cells row by row; every row has exactly width entries.
//   - width caches len(rows[0]); each constructor and kernel sets it.
//   - field supplies the arithmetic for T.
type Matrix[T any] struct {
	rows  [][]T
	width int
	field numeric.Field[T]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New builds a matrix from rows after validating its shape.
//
// Implementation:
//   - Stage 1: resolve options (field).
//   - Stage 2: validate rows: non-empty, first row non-empty, all rows equal length.
//   - Stage 3: deep-copy rows so the caller's slices never alias the matrix.
//
// Errors:
//   - ErrEmptyMatrix, ErrEmptyRow, ErrInconsistentRowLength (shape contract).
//   - ErrUnsupportedScalar (no field for T and none supplied).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows [][]T, opts ...Option[T]) (*Matrix[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if err = validateRows(rows); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	width := len(rows[0])
	cp := make([][]T, len(rows))
	for i, r := range rows {
		cp[i] = make([]T, width)
		copy(cp[i], r)
	}

	return &Matrix[T]{rows: cp, width: width, field: o.field}, nil
}

// Diag returns a size×size matrix of zeros with value on the main diagonal.
//
// Errors:
//   - ErrInvalidSize for size < 1.
//   - ErrUnsupportedScalar (no field for T and none supplied).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Diag[T any](size int, value T, opts ...Option[T]) (*Matrix[T], error) {
	if size < 1 {
		return nil, matrixErrorf(ctxDiag, ErrInvalidSize)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(ctxDiag, err)
	}

	return diag(size, value, o.field), nil
}

// Identity returns the n×n identity matrix (Diag(n, 1)).
func Identity[T any](n int, opts ...Option[T]) (*Matrix[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(ctxDiag, err)
	}

	return Diag(n, o.field.One(), WithField(o.field))
}

// diag is the unchecked constructor behind Diag; size must be ≥ 1.
func diag[T any](size int, value T, f numeric.Field[T]) *Matrix[T] {
	return &Matrix[T]{rows: fill(size, size, f.Zero(), value), width: size, field: f}
}

// zeros allocates an r×c matrix filled with the field's zero.
func zeros[T any](r, c int, f numeric.Field[T]) *Matrix[T] {
	z := f.Zero()
	rows := make([][]T, r)
	for i := range rows {
		rows[i] = make([]T, c)
		for j := range rows[i] {
			rows[i][j] = z
		}
	}

	return &Matrix[T]{rows: rows, width: c, field: f}
}

// fill returns r×c cells set to z, with d on the diagonal i==j.
// z is written explicitly: the Go zero value of T need not be the field's zero.
func fill[T any](r, c int, z, d T) [][]T {
	rows := make([][]T, r)
	for i := range rows {
		rows[i] = make([]T, c)
		for j := range rows[i] {
			rows[i][j] = z
		}
		if i < c {
			rows[i][i] = d
		}
	}

	return rows
}

// Rows returns the number of rows in the matrix (0 for nil).
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return len(m.rows)
}

// Cols returns the number of columns in the matrix (0 for nil).
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.width
}

// Field returns the arithmetic used for the matrix's scalars.
func (m *Matrix[T]) Field() numeric.Field[T] {
	if m == nil {
		return nil
	}

	return m.field
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, matrixErrorf(ctxAt, ErrNilMatrix)
	}
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.width {
		return zero, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return m.rows[row][col], nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(ctxRow, ErrNilMatrix)
	}
	if i < 0 || i >= len(m.rows) {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]T, m.width)
	copy(out, m.rows[i])

	return out, nil
}

// ToSlices returns a deep copy of the cells as [][]T (nil for nil).
// Complexity: O(r*c).
func (m *Matrix[T]) ToSlices() [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, len(m.rows))
	for i, r := range m.rows {
		out[i] = make([]T, m.width)
		copy(out[i], r)
	}

	return out
}

// Clone returns a deep copy sharing only the (stateless) field.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}

	return &Matrix[T]{rows: m.ToSlices(), width: m.width, field: m.field}
}

// String implements fmt.Stringer: one bracketed, comma-separated line per row.
func (m *Matrix[T]) String() string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	for _, r := range m.rows {
		sb.WriteString(_fmtRowOpen)
		for j, v := range r {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", v)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
