// SPDX-License-Identifier: MIT

// Package dense - linear-algebra kernels (Mul, Inverse).
//
// Purpose:
//   - Declare the canonical kernels used by consumers of this package.
//   - Keep kernels deterministic: fixed loop orders, first-wins pivot ties.
//   - All kernels use the central validators and return plain sentinels,
//     wrapped with an operation tag at this boundary.

package dense

import (
	"fmt"
	"math"
)

// zeroSum is the initial accumulator value for dot products and substitutions.
const zeroSum = 0.0

// zeroPivot is the sentinel for detecting an unusable pivot during LU.
const zeroPivot = 0.0

// Operation name constants for unified error wrapping (no magic strings).
const (
	opMul     = "Mul"
	opInverse = "Inverse"
)

// kernelErrorf wraps err with an operation tag, preserving the original
// sentinel via %w so callers keep errors.Is/As matching. Call only with a
// non-nil err. Complexity: O(1).
func kernelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product C = A·B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: validate both operands non-nil and a.Cols == b.Rows.
//   - Stage 2: accumulate in i→k→j order over the flat buffers (row-major
//     friendly: the inner loop walks contiguous memory in both B and C).
//
// Behavior highlights:
//   - Deterministic loop order; operands are never mutated.
//   - Single result allocation; no inner-loop temps beyond scalars.
//
// Inputs:
//   - a: left operand (r×n).
//   - b: right operand (n×c).
//
// Returns:
//   - *Dense: newly allocated r×c product.
//   - error : ErrNilMatrix or ErrDimensionMismatch, wrapped with opMul.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	// Validate operands.
	if err := validateNotNil(a); err != nil {
		return nil, kernelErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}
	if err := validateMulShapes(a, b); err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	// Allocate the result.
	res, err := New(a.r, b.c)
	if err != nil {
		return nil, kernelErrorf(opMul, err)
	}

	// i→k→j accumulation over flat row-major buffers.
	var i, k, j int // loop iterators (deterministic order)
	var av float64
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av == 0 {
				continue // structural zero: the inner pass contributes nothing
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// Inverse computes A⁻¹ via LU factorization with partial pivoting.
// The input must be non-nil and square. Returns ErrSingular when no usable
// pivot exists. Produces a new Dense; the input is never mutated.
//
// Implementation:
//   - Stage 1: validateNotNil(m), validateSquare(m); factorize a working copy
//     in place into L (unit lower, below the diagonal) and U (on and above),
//     recording the row permutation. Pivot selection is argmax |column entry|
//     with a first-wins tie-break, so results are fully reproducible.
//   - Stage 2: for each canonical basis column e_col: forward solve
//     L·y = P·e_col (top-down), backward solve U·x = y (bottom-up), and write
//     x into column col of the result.
//
// Behavior highlights:
//   - Partial pivoting accepts every invertible input, including matrices
//     with a zero leading pivot such as [[0,1],[1,0]].
//   - Fixed traversal orders throughout: identical inputs give identical
//     outputs bit for bit.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//
// Returns:
//   - *Dense: n×n matrix containing A⁻¹.
//   - error : validation or singularity failures wrapped with opInverse.
//
// Errors:
//   - ErrNilMatrix (validateNotNil).
//   - ErrNonSquare (validateSquare).
//   - ErrSingular  (pivot column is all zeros during factorization).
//
// Complexity:
//   - Time O(n³): factorization is O(n³); n triangular solve pairs are O(n³).
//   - Space O(n²): the working copy and the result; O(n) solve workspaces.
//
// Notes:
//   - Numerical conditioning is the caller's concern: near-singular inputs
//     factorize but amplify rounding error. Detect upstream when it matters.
//   - If you only need A⁻¹·b, a single solve is cheaper than forming A⁻¹.
//
// AI-Hints:
//   - The factorization lives in a Clone of m; reuse patterns that need L/U
//     separately should lift the factorization loop, not re-derive it.
func Inverse(m *Dense) (*Dense, error) {
	// Validate input non-nil and square.
	if err := validateNotNil(m); err != nil {
		return nil, kernelErrorf(opInverse, err)
	}
	if err := validateSquare(m); err != nil {
		return nil, kernelErrorf(opInverse, err)
	}

	// In-place LU with partial pivoting on a working copy.
	n := m.r
	lu := m.Clone()
	perm := make([]int, n) // perm[i] = original row now living at row i
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var best, cand, pivot, factor float64
	for k = 0; k < n; k++ {
		// Select the pivot row: argmax |lu[i,k]| for i >= k, first wins.
		p, best = k, math.Abs(lu.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if cand = math.Abs(lu.data[i*n+k]); cand > best {
				p, best = i, cand
			}
		}
		if best == zeroPivot {
			return nil, kernelErrorf(opInverse, ErrSingular)
		}
		if p != k {
			// Swap rows k and p in the working copy and the permutation.
			rowK, rowP := lu.data[k*n:(k+1)*n], lu.data[p*n:(p+1)*n]
			for j = 0; j < n; j++ {
				rowK[j], rowP[j] = rowP[j], rowK[j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		// Eliminate below the pivot; multipliers land in the L slots.
		pivot = lu.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = lu.data[i*n+k] / pivot
			lu.data[i*n+k] = factor
			for j = k + 1; j < n; j++ {
				lu.data[i*n+j] -= factor * lu.data[k*n+j]
			}
		}
	}

	// Solve L·y = P·e_col, then U·x = y, for every basis column.
	inv, err := New(n, n)
	if err != nil {
		return nil, kernelErrorf(opInverse, err)
	}
	var col int
	var sum float64
	y := make([]float64, n) // forward substitution workspace
	x := make([]float64, n) // backward substitution workspace
	for col = 0; col < n; col++ {
		// Forward substitution (unit diagonal on L).
		for i = 0; i < n; i++ {
			sum = zeroSum
			for k = 0; k < i; k++ {
				sum += lu.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution; diagonal pivots are nonzero by construction.
		for i = n - 1; i >= 0; i-- {
			sum = zeroSum
			for k = i + 1; k < n; k++ {
				sum += lu.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / lu.data[i*n+i]
		}
		// Write x into column col of the result.
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
