// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf makes Insert reject NaN and ±Inf values.
	// With the policy off, NaN may be stored; note that Remove can never
	// match it because NaN != NaN.
	DefaultValidateNaNInf = true

	// DefaultCapacity is the number of arena slots preallocated by New.
	DefaultCapacity = 0
)

const panicCapacityNegative = "sparse: WithCapacity: capacity must be >= 0"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	capacity       int  // arena slots reserved up front
	validateNaNInf bool // reject NaN/±Inf in Insert
}

// defaultOptions returns Options populated with the package defaults.
func defaultOptions() Options {
	return Options{
		capacity:       DefaultCapacity,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithCapacity reserves room for n cells in the arena so that the first n
// inserts do not reallocate. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityNegative)
	}

	return func(o *Options) { o.capacity = n }
}

// WithValidateNaNInf toggles the finite-only numeric policy of Insert.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}
