// SPDX-License-Identifier: MIT

package cplx

import "errors"

var (
	// ErrDivisionByZero is returned by Div when the divisor has zero magnitude.
	ErrDivisionByZero = errors.New("cplx: division by zero")

	// ErrNonPositiveExponent is returned by Pow for n < 1.
	ErrNonPositiveExponent = errors.New("cplx: exponent must be >= 1")
)
