// SPDX-License-Identifier: MIT

// Package matfmt: functional configuration for the pretty-printers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes output and is covered by tests.
//   - Options only affect the Fractional mode; Uniform and PerColumn ignore them.

package matfmt

import "unicode"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision disables fraction truncation.
	DefaultPrecision = -1

	// DefaultDelimiter separates integer and fraction parts of a float.
	DefaultDelimiter = '.'
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matfmt: WithPrecision: precision must be >= 0"
	panicDelimiterInvalid = "matfmt: WithDelimiter: delimiter must be a printable, non-digit, non-space rune"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	precision int  // < 0 ⇒ unlimited; DefaultPrecision
	delimiter rune // DefaultDelimiter
}

// WithPrecision caps the printed fraction at n digits (the field is n+1
// wide, delimiter included). Extra digits are truncated, not rounded.
// n == 0 drops the fraction and its delimiter entirely.
// Panics when n < 0.
//
// Complexity: O(1).
func WithPrecision(n int) Option {
	if n < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = n }
}

// WithDelimiter sets the rune that splits integer from fraction part.
// Panics on digits, spaces and non-printable runes, which would make the
// split ambiguous.
func WithDelimiter(d rune) Option {
	if unicode.IsDigit(d) || unicode.IsSpace(d) || !unicode.IsPrint(d) {
		panic(panicDelimiterInvalid)
	}

	return func(o *Options) { o.delimiter = d }
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		precision: DefaultPrecision,
		delimiter: DefaultDelimiter,
	}
}

// gatherOptions applies user options over the defaults; nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
