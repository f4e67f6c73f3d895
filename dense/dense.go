// SPDX-License-Identifier: MIT

// Package dense - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - New/FromRows/Identity: O(r*c); At/Set: O(1); Clone: O(r*c); Equal: O(r*c).

package dense

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// ---------- numeric policy defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by approximate
	// comparisons when the caller has no better domain-specific choice.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// ingestion. Insert only finite values unless you explicitly disable it
	// via a package-internal constructor.
	DefaultValidateNaNInf = true
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// coordinates, preserving the sentinel via %w for errors.Is matching.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0 for any constructed value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default above).
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer and apply the default numeric policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Returns:
//   - *Dense: newly allocated matrix, or ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the flat buffer deterministically.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// FromRows builds a Dense from a rectangular slice-of-rows, copying the data.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions) and ragged rows
//     (ErrDimensionMismatch).
//   - Stage 2: copy row by row in fixed i→j order, enforcing the finite-value
//     policy (ErrNaNInf).
//
// Behavior highlights:
//   - The input slice is never retained; later mutation of `rows` does not
//     affect the returned matrix.
//
// Returns:
//   - *Dense with an independent copy of the data, or a sentinel error.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, ErrDimensionMismatch
		}
		for j = 0; j < m.c; j++ {
			v := rows[i][j]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Kept unexported so the public surface (At/Set) owns the error context.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at position (i, j).
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	off, err := m.indexOf(i, j)
	if err != nil {
		return 0, denseErrorf(ctxAt, i, j, err)
	}

	return m.data[off], nil
}

// Set assigns the value v at position (i, j).
// Returns ErrOutOfRange on invalid indices and ErrNaNInf when the numeric
// policy rejects v. Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	off, err := m.indexOf(i, j)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy of the matrix; the copy is fully independent of
// the original (separate backing buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := &Dense{
		r:              m.r,
		c:              m.c,
		data:           make([]float64, len(m.data)),
		validateNaNInf: m.validateNaNInf,
	}
	copy(cp.data, m.data)

	return cp
}

// Equal reports whether m and o have identical shape and bitwise-equal
// elements. A nil operand is never equal to a non-nil one.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data { // deterministic 0..n-1
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// EqualApprox reports whether m and o have identical shape and elementwise
// |m[i,j]-o[i,j]| <= eps. Use DefaultEpsilon when in doubt.
// Complexity: O(r*c).
func (m *Dense) EqualApprox(o *Dense, eps float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if math.Abs(m.data[idx]-o.data[idx]) > eps {
			return false
		}
	}

	return true
}

// String renders the matrix one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// Intended for debugging and examples, not for machine parsing.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
