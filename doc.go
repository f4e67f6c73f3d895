// Package matcache memoizes the inverse of a single dense square matrix.
//
// The matcache package provides:
//
//   - CacheableMatrix, a single-owner holder that pairs one matrix value
//     with an optional cached inverse, and invalidates the cached inverse
//     the moment the value is replaced.
//   - Inverse, the retrieve-or-compute entry point: a cache hit returns the
//     stored inverse verbatim; a cache miss runs the configured inversion
//     routine once, stores the result, and returns it.
//   - An injectable Inverter so callers can swap the inversion backend
//     (the default is dense.Inverse from this module's dense subpackage).
//
// Caching pays off when the same inverse is requested repeatedly between
// updates: inversion is O(n³)-class work, while a hit is a pointer read.
//
// Typical usage:
//
//	m, _ := dense.FromRows([][]float64{{4, 7}, {2, 6}})
//	c := matcache.New(m)
//	inv, err := matcache.Inverse(c) // computes and stores
//	inv, err = matcache.Inverse(c)  // returns the stored copy, no work
//	c.Set(m2)                       // replaces the value, drops the cache
//
// A CacheableMatrix is intended for exclusive ownership by one goroutine;
// it performs no locking. See the type documentation for the full contract.
package matcache
