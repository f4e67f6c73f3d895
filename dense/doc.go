// Package dense implements a small dense-matrix kernel set over row-major
// float64 storage.
//
// The dense package provides:
//
//   - Dense, a concrete row-major matrix with safe, error-returning
//     accessors (At/Set never panic on user input).
//   - Constructors New, FromRows and Identity with strict shape validation
//     and a strict finite-value policy (NaN/±Inf rejected on ingestion).
//   - Deterministic kernels: Mul and Inverse (LU factorization with partial
//     pivoting). All failures surface as package sentinels via errors.Is.
//
// The package is self-contained and consumed by the matcache root package as
// its default inversion backend, but it is usable on its own for small
// dense linear-algebra tasks where O(n²) memory and O(n³) kernels are
// acceptable.
package dense
