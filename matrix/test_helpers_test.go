// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/K1T3K1/rsmath/matrix"
)

// MustNew builds a matrix from rows or fails the test (fatal on error).
func MustNew[T any](t *testing.T, rows [][]T, opts ...matrix.Option[T]) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(rows, opts...)
	require.NoError(t, err, "New(%v)", rows)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T any](t *testing.T, n int, opts ...matrix.Option[T]) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.Identity(n, opts...)
	require.NoError(t, err, "Identity(%d)", n)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt[T any](t *testing.T, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandDominant builds an n×n float64 matrix with entries in U(-1,1) and a
// strictly dominant diagonal, so every leading principal minor is non-zero
// and unpivoted LU succeeds. Deterministic for a fixed seed.
//
// Complexity: O(n^2).
func RandDominant(t *testing.T, n int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n) + 1
	}

	return MustNew(t, rows)
}

// RandRect builds an r×c float64 matrix with entries in U(-1,1).
func RandRect(t *testing.T, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustNew(t, rows)
}

// ToGonum copies m into a gonum *mat.Dense for reference computations.
func ToGonum(m *matrix.Matrix[float64]) *mat.Dense {
	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i, r := range m.ToSlices() {
		d.SetRow(i, r)
	}

	return d
}

// CompareClose fails the test unless a and b agree within atol/rtol.
func CompareClose(t *testing.T, want, got *matrix.Matrix[float64], atol, rtol float64) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, atol, rtol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// IsUnitLower reports whether m is lower triangular with ones on the diagonal.
func IsUnitLower(m *matrix.Matrix[float64]) bool {
	for i, r := range m.ToSlices() {
		for j, v := range r {
			switch {
			case i == j && v != 1:
				return false
			case j > i && v != 0:
				return false
			}
		}
	}

	return true
}

// IsUpper reports whether every entry below the main diagonal is zero.
func IsUpper(m *matrix.Matrix[float64]) bool {
	for i, r := range m.ToSlices() {
		for j := 0; j < i; j++ {
			if r[j] != 0 {
				return false
			}
		}
	}

	return true
}
