// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/K1T3K1/rsmath/numeric"
)

// Default tolerances for AllClose.
const (
	DefaultAbsTol = 1e-9
	DefaultRelTol = 1e-9
)

// AllClose reports whether a and b have the same shape and every pair of
// cells agrees within the absolute tolerance atol or the relative tolerance
// rtol (scalar.EqualWithinAbsOrRel on the float64 images of the cells).
//
// Errors:
//   - ErrNilMatrix, ErrNotAdditive (shape mismatch).
//
// Complexity: O(r*c).
func AllClose[T numeric.Real](a, b *Matrix[T], atol, rtol float64) (bool, error) {
	if err := ValidateAdditive(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	for i := range a.rows {
		for j := range a.rows[i] {
			if !scalar.EqualWithinAbsOrRel(float64(a.rows[i][j]), float64(b.rows[i][j]), atol, rtol) {
				return false, nil
			}
		}
	}

	return true, nil
}
