// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option[T].
//
// Notes:
//   - The arithmetic field travels with the Matrix value: results of Mul/Add/
//     Sub/LU inherit the field of their left operand.
package matrix

import (
	"fmt"

	"github.com/K1T3K1/rsmath/numeric"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFieldNil = "matrix: WithField: field must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option[T any] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
type Options[T any] struct {
	field numeric.Field[T] // nil ⇒ resolved by numeric.Lookup[T]
}

// WithField supplies the arithmetic used for scalars of type T.
// Required for scalars numeric.Lookup does not know, such as
// cplx.Complex[float64] or named numeric types.
//
// Panics when f is nil.
func WithField[T any](f numeric.Field[T]) Option[T] {
	if f == nil {
		panic(panicFieldNil)
	}

	return func(o *Options[T]) {
		o.field = f
	}
}

// gatherOptions applies user setters in order and resolves the default field.
//
// Errors:
//   - ErrUnsupportedScalar when no field was given and Lookup[T] fails.
func gatherOptions[T any](user ...Option[T]) (Options[T], error) {
	var o Options[T]
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.field == nil {
		f, err := numeric.Lookup[T]()
		if err != nil {
			return o, fmt.Errorf("options: %w", err)
		}
		o.field = f
	}

	return o, nil
}
