// SPDX-License-Identifier: MIT

// Package matcache - the cacheable holder: one matrix value, one optional
// cached inverse, and the four state operations.
//
// Purpose:
//   - Keep the value and its derived inverse as a single unit of state, so
//     that replacing the value can never leave a stale inverse behind.
//   - Represent "no cached inverse" as an explicit absent case
//     (CachedInverse returns ok=false), never as a sentinel matrix value.

package matcache

import "github.com/katalvlaran/matcache/dense"

// CacheableMatrix owns one dense matrix and memoizes its inverse.
//
// Contract:
//   - Ownership: intended for exclusive use by one goroutine; no locking is
//     performed. Wrap it yourself if you must share an instance.
//   - Invalidation: Set is the only invalidation mechanism; it drops the
//     cached inverse unconditionally.
//   - Trust: SetInverse stores its argument verbatim, with no check that it
//     actually inverts the current value. This is deliberate (see SetInverse).
//
// The zero value is a usable degenerate cache: it holds no matrix and uses
// the default inversion backend; Inverse fails with ErrNoMatrix until a
// matrix is supplied via Set.
type CacheableMatrix struct {
	value   *dense.Dense // current matrix; nil in the degenerate state
	inverse *dense.Dense // cached inverse; nil means absent
	invert  Inverter     // inversion backend; nil means dense.Inverse
}

// New constructs a CacheableMatrix holding m, with an empty inverse cache.
// A nil m is legal and produces the degenerate state: no validation or
// inversion happens until Inverse is called (failures are deferred, never
// raised at construction). Shape is likewise not checked here; a non-square
// m surfaces as dense.ErrNonSquare at inversion time.
// Complexity: O(len(opts)).
func New(m *dense.Dense, opts ...Option) *CacheableMatrix {
	o := gatherOptions(opts...)

	return &CacheableMatrix{value: m, invert: o.invert}
}

// Set replaces the held matrix with m and unconditionally clears the cached
// inverse. No shape validation happens here; failure is deferred to
// inversion time. No side effects beyond this instance.
// Complexity: O(1).
func (c *CacheableMatrix) Set(m *dense.Dense) {
	c.value = m
	c.inverse = nil // derived data is stale the moment the value changes
}

// Value returns the currently held matrix (nil in the degenerate state).
// Pure accessor, no side effects. Complexity: O(1).
func (c *CacheableMatrix) Value() *dense.Dense { return c.value }

// SetInverse overwrites the cached inverse with inv, verbatim.
//
// No validation is performed: inv is trusted to be the inverse of the
// current value, and a caller may just as well inject an arbitrary sentinel
// to observe that Inverse consults the cache instead of recomputing. That
// permissiveness is an intentional part of the contract, not an oversight.
// Complexity: O(1).
func (c *CacheableMatrix) SetInverse(inv *dense.Dense) { c.inverse = inv }

// CachedInverse returns the cached inverse and whether one is present.
// Absent (never computed, or invalidated by Set) reports (nil, false).
// Pure accessor, no side effects. Complexity: O(1).
func (c *CacheableMatrix) CachedInverse() (*dense.Dense, bool) {
	if c.inverse == nil {
		return nil, false
	}

	return c.inverse, true
}
