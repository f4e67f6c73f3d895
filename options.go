// SPDX-License-Identifier: MIT

// Package matcache: functional configuration for the cache.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - options fields are unexported; public entry points consume ...Option.

package matcache

import "github.com/katalvlaran/matcache/dense"

// ---------- Internal panic messages (no magic strings) ----------

const panicInverterNil = "matcache: WithInverter: fn must be non-nil"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation.
type options struct {
	invert Inverter // inversion backend; default dense.Inverse
}

// defaultOptions is the single source of truth for zero-configuration behavior.
func defaultOptions() options {
	return options{invert: dense.Inverse}
}

// gatherOptions resolves the effective configuration from defaults plus the
// supplied setters, applied in order. Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ---------- Constructors (WithX) ----------

// WithInverter replaces the inversion backend used on a cache miss.
//
// Behavior highlights:
//   - Strict validation in the constructor; panics on a nil fn with a stable
//     message (misconfiguration is a programmer error, not a runtime state).
//   - The backend is consulted only on a miss; hits never invoke it, which is
//     what makes a counting or faking backend useful in tests.
//
// Inputs:
//   - fn: non-nil Inverter.
//
// Returns:
//   - Option: functional setter.
func WithInverter(fn Inverter) Option {
	if fn == nil {
		panic(panicInverterNil)
	}

	return func(o *options) { o.invert = fn }
}
