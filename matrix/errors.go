// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/K1T3K1/rsmath/numeric"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Facades wrap with matrixErrorf("Op", ErrX);
// callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape of rows (empty / ragged) -> operand compatibility
// (additive / multiplicable / square) -> numeric (zero pivot).

var (
	// ErrEmptyMatrix is returned by New when no rows are supplied.
	ErrEmptyMatrix = errors.New("matrix: no rows")

	// ErrEmptyRow is returned by New when the first row has no columns.
	ErrEmptyRow = errors.New("matrix: first row is empty")

	// ErrInconsistentRowLength is returned by New when a row's length differs
	// from the first row's length.
	ErrInconsistentRowLength = errors.New("matrix: inconsistent row length")

	// ErrNotMultiplicable indicates a.Cols() != b.Rows() in Mul.
	ErrNotMultiplicable = errors.New("matrix: matrices are not multiplicable")

	// ErrNotAdditive indicates operands of Add/Sub have different shapes.
	ErrNotAdditive = errors.New("matrix: matrices are not additive")

	// ErrNotSquare signals that Det or LU was requested on a non-square matrix.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrZeroPivot is returned when the non-pivoting Doolittle scheme meets a
	// zero U[j,j] that it would have to divide by. The input has a singular
	// leading principal minor; the matrix itself may still be invertible.
	ErrZeroPivot = errors.New("matrix: zero pivot in LU decomposition")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) or a
	// zero-value Matrix that no constructor produced was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidSize is returned by Diag/Identity for size < 1.
	ErrInvalidSize = errors.New("matrix: size must be > 0")
)

// ErrUnsupportedScalar is returned by constructors when no arithmetic field is
// known for T and none was supplied with WithField.
var ErrUnsupportedScalar = numeric.ErrUnsupportedScalar
