// SPDX-License-Identifier: MIT
// Package dense: central shape validators shared by the kernels.
// Keeping the checks here guarantees identical error semantics across
// entry points; kernels call these first and wrap failures with an op tag.

package dense

// validateNotNil rejects a nil operand with ErrNilMatrix.
// Complexity: O(1).
func validateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSquare rejects a non-square operand with ErrNonSquare.
// Assumes m is non-nil (call validateNotNil first).
// Complexity: O(1).
func validateSquare(m *Dense) error {
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// validateMulShapes rejects operands whose inner dimensions disagree
// (a.Cols must equal b.Rows) with ErrDimensionMismatch.
// Complexity: O(1).
func validateMulShapes(a, b *Dense) error {
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}
