// SPDX-License-Identifier: MIT
// Package matcache_test contains test helpers.
//
// Purpose:
//   - Provide deterministic matrix fixtures and an instrumented Inverter
//     double so tests can observe whether the computation path ran.

package matcache_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache"
	"github.com/katalvlaran/matcache/dense"
	"gonum.org/v1/gonum/mat"
)

// tol is the comparison tolerance used by correctness assertions.
const tol = 1e-9

// mustFromRows builds a *dense.Dense from row data or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *dense.Dense {
	t.Helper()
	m, err := dense.FromRows(rows)
	if err != nil {
		t.Fatalf("dense.FromRows: %v", err)
	}

	return m
}

// randInvertible returns a seeded, strictly diagonally dominant (hence
// invertible) n×n matrix. Deterministic for a fixed seed.
func randInvertible(t *testing.T, n int, seed int64) *dense.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := dense.New(n, n)
	if err != nil {
		t.Fatalf("dense.New(%d,%d): %v", n, n, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			if err = m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// countingInverter wraps an Inverter and counts invocations. A hit must
// leave the counter untouched; that is the observable difference between
// the hit and miss paths.
type countingInverter struct {
	calls int
	fn    matcache.Inverter
}

// newCountingInverter defaults the delegate to dense.Inverse.
func newCountingInverter(fn matcache.Inverter) *countingInverter {
	if fn == nil {
		fn = dense.Inverse
	}

	return &countingInverter{fn: fn}
}

func (ci *countingInverter) invert(m *dense.Dense) (*dense.Dense, error) {
	ci.calls++

	return ci.fn(m)
}

// gonumInverse is the independent oracle: an inversion implementation that
// shares no code with the dense package.
func gonumInverse(t *testing.T, m *dense.Dense) *dense.Dense {
	t.Helper()
	r, c := m.Shape()
	data := make([]float64, r*c)
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			data[i*c+j] = v
		}
	}

	var inv mat.Dense
	if err = inv.Inverse(mat.NewDense(r, c, data)); err != nil {
		t.Fatalf("gonum Inverse: %v", err)
	}

	out, err := dense.New(r, c)
	if err != nil {
		t.Fatalf("dense.New(%d,%d): %v", r, c, err)
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, inv.At(i, j)); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return out
}

// requireIsInverseOf asserts M·R ≈ I within tol.
func requireIsInverseOf(t *testing.T, m, r *dense.Dense) {
	t.Helper()
	prod, err := dense.Mul(m, r)
	if err != nil {
		t.Fatalf("dense.Mul: %v", err)
	}
	id, err := dense.Identity(m.Rows())
	if err != nil {
		t.Fatalf("dense.Identity: %v", err)
	}
	if !prod.EqualApprox(id, tol) {
		t.Fatalf("M·R is not the identity:\n%v", prod)
	}
}
