// SPDX-License-Identifier: MIT

// Package matcache - the retrieve-or-compute facade over CacheableMatrix.

package matcache

import "github.com/katalvlaran/matcache/dense"

// Inverter computes the inverse of a square matrix, or fails with an error
// describing why no inverse exists (non-square or singular input). It is
// consumed as an opaque collaborator: Inverse neither inspects nor wraps
// what it returns. dense.Inverse is the default implementation.
type Inverter func(*dense.Dense) (*dense.Dense, error)

// Inverse returns the inverse of c's current matrix, computing it only when
// no cached copy exists.
//
// Implementation:
//   - Stage 1: reject a nil cache (ErrNilCache).
//   - Stage 2: cache hit - return the stored matrix verbatim, no side
//     effects, no re-validation against the current value.
//   - Stage 3: cache miss - reject the degenerate no-matrix state
//     (ErrNoMatrix), run the configured Inverter once, store the result via
//     SetInverse, and return it.
//
// Behavior highlights:
//   - Idempotent for a fixed, unmutated cache: consecutive calls return the
//     same value and only the first performs O(n³)-class inversion work.
//   - A failed computation leaves the cache untouched; the next call retries.
//   - Inversion errors propagate unchanged (no wrapping, no translation), so
//     errors.Is(err, dense.ErrNonSquare) and errors.Is(err, dense.ErrSingular)
//     work against the default backend.
//
// Inputs:
//   - c: the cache to read or populate.
//
// Returns:
//   - *dense.Dense: the cached or freshly computed inverse.
//   - error : ErrNilCache, ErrNoMatrix, or whatever the Inverter returned.
//
// Complexity:
//   - Hit: O(1). Miss: the Inverter's cost (O(n³) for dense.Inverse).
func Inverse(c *CacheableMatrix) (*dense.Dense, error) {
	if c == nil {
		return nil, ErrNilCache
	}

	// Hit: trust the stored value, whatever it is.
	if inv, ok := c.CachedInverse(); ok {
		return inv, nil
	}

	// Miss: compute against the current value.
	if c.value == nil {
		return nil, ErrNoMatrix
	}
	invert := c.invert
	if invert == nil { // zero-value CacheableMatrix, built without New
		invert = dense.Inverse
	}
	inv, err := invert(c.value)
	if err != nil {
		return nil, err // propagate unchanged; the cache stays empty
	}
	c.SetInverse(inv)

	return inv, nil
}
