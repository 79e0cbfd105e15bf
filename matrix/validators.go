// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/compatibility checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap once more with the operation tag.
//
// Determinism & Performance:
//  - All checks are pure and deterministic. Only validateRows is O(rows);
//    the rest are O(1) and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateRows checks the construction invariants of New:
// at least one row, a non-empty first row, and every row as long as the first.
// The checks run in that order, so a ragged input whose first row is empty
// reports ErrEmptyRow.
//
// Complexity: O(len(rows)).
func validateRows[T any](rows [][]T) error {
	if len(rows) == 0 {
		return validatorErrorf("validateRows", ErrEmptyMatrix)
	}
	width := len(rows[0])
	if width == 0 {
		return validatorErrorf("validateRows", ErrEmptyRow)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return validatorErrorf("validateRows",
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), width, ErrInconsistentRowLength))
		}
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil and was built by a
// constructor. A zero-value Matrix has no field and no rows.
// Returns ErrNilMatrix in both cases.
// Complexity: O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil || m.field == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAdditive – Composite: NotNil(a) → NotNil(b) → same rows and width.
//
// Errors: ErrNilMatrix, ErrNotAdditive.
// Complexity: O(1).
func ValidateAdditive[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateAdditive", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateAdditive", err)
	}
	if a.width != b.width || len(a.rows) != len(b.rows) {
		return validatorErrorf("ValidateAdditive", ErrNotAdditive)
	}

	return nil
}

// ValidateMultiplicable – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrNotMultiplicable.
// Complexity: O(1).
func ValidateMultiplicable[T any](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMultiplicable", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMultiplicable", err)
	}
	if a.width != len(b.rows) {
		return validatorErrorf("ValidateMultiplicable", ErrNotMultiplicable)
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols.
//
// Errors: ErrNilMatrix, ErrNotSquare.
// Complexity: O(1).
// Use before factorization methods.
func ValidateSquare[T any](m *Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if len(m.rows) != m.width {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}
