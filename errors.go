// SPDX-License-Identifier: MIT
// Package matcache: sentinel error set.
// Only degenerate-state failures are defined here. Inversion failures are
// NOT translated: dense.ErrNonSquare and dense.ErrSingular (or whatever the
// configured Inverter returns) propagate through Inverse unchanged, so
// callers match them with errors.Is against the producing package.

package matcache

import "errors"

var (
	// ErrNilCache indicates that a nil *CacheableMatrix was passed to Inverse.
	ErrNilCache = errors.New("matcache: cache is nil")

	// ErrNoMatrix indicates that inversion was attempted while the cache holds
	// no matrix (constructed with nil and never given one via Set).
	ErrNoMatrix = errors.New("matcache: no matrix set")
)
