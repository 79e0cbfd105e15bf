// SPDX-License-Identifier: MIT
// Package matrix — method facades.
//
// Purpose:
//   - Offer the kernels as methods so expressions read left to right
//     (a.Mul(b), m.Det()).
//   - Avoid any logic duplication — each method delegates to the canonical function.

package matrix

// Mul is the method form of Mul(m, b).
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) { return Mul(m, b) }

// Add is the method form of Add(m, b).
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) { return Add(m, b) }

// Sub is the method form of Sub(m, b).
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) { return Sub(m, b) }

// Det is the method form of Det(m).
func (m *Matrix[T]) Det() (T, error) { return Det(m) }

// LU is the method form of LU(m).
func (m *Matrix[T]) LU() (*Matrix[T], *Matrix[T], error) { return LU(m) }

// Transpose is the method form of Transpose(m).
func (m *Matrix[T]) Transpose() (*Matrix[T], error) { return Transpose(m) }

// Scale is the method form of Scale(m, alpha).
func (m *Matrix[T]) Scale(alpha T) (*Matrix[T], error) { return Scale(m, alpha) }

// Equal is the method form of Equal(m, b).
func (m *Matrix[T]) Equal(b *Matrix[T]) bool { return Equal(m, b) }
