// SPDX-License-Identifier: MIT

// Package dft: functional configuration for the transforms.
package dft

// ---------- Defaults (single source of truth) ----------

// DefaultPrecision is the number of fractional decimal digits kept when the
// phase angle is divided by N.
const DefaultPrecision int32 = 28

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "dft: WithPrecision: digits must be >= 1"
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	precision int32 // digits kept by DivRound; DefaultPrecision
}

// WithPrecision sets the number of fractional digits kept when the phase
// angle is divided by the transform length.
//
// Panics when digits < 1.
func WithPrecision(digits int32) Option {
	if digits < 1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) {
		o.precision = digits
	}
}

// gatherOptions applies user setters on top of the defaults (last writer wins).
func gatherOptions(user ...Option) options {
	o := options{precision: DefaultPrecision}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
