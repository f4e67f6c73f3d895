// SPDX-License-Identifier: MIT
// Package dense_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package dense_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/dense"
	"gonum.org/v1/gonum/mat"
)

// tol is the comparison tolerance used by correctness assertions.
// Fixtures stay tiny and well-conditioned, so a tight bound is safe.
const tol = 1e-9

// MustNew allocates an r×c *Dense or fails the test (fatal on error).
func MustNew(t *testing.T, r, c int) *dense.Dense {
	t.Helper()
	m, err := dense.New(r, c)
	if err != nil {
		t.Fatalf("dense.New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from row data or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *dense.Dense {
	t.Helper()
	m, err := dense.FromRows(rows)
	if err != nil {
		t.Fatalf("dense.FromRows: %v", err)
	}

	return m
}

// MustAt reads one element or fails the test.
func MustAt(t *testing.T, m *dense.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes one element or fails the test.
func MustSet(t *testing.T, m *dense.Dense, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// RandInvertible fills an n×n matrix with seeded pseudo-random entries in
// (-1,1) and boosts the diagonal by n, which makes it strictly diagonally
// dominant and therefore invertible. Deterministic for a fixed seed.
func RandInvertible(t *testing.T, n int, seed int64) *dense.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustNew(t, n, n)
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			MustSet(t, m, i, j, v)
		}
	}

	return m
}

// ToGonum copies m into a gonum mat.Dense for oracle comparisons.
func ToGonum(t *testing.T, m *dense.Dense) *mat.Dense {
	t.Helper()
	r, c := m.Shape()
	data := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data[i*c+j] = MustAt(t, m, i, j)
		}
	}

	return mat.NewDense(r, c, data)
}
