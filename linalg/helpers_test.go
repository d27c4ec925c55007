// Package linalg_test contains shared fixtures for the linalg tests.
//
// Purpose:
//   - Deterministic random matrices and vectors for property tests.
//   - Tolerance shorthands following the ε·2^M·N model.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/glmath/approx"
	"github.com/katalvlaran/glmath/linalg"
	"github.com/stretchr/testify/require"
)

// propertyRounds is the number of random cases per property test.
const propertyRounds = 64

// randomMat4 FILLS a Mat4[float64] with deterministic U(-1,1) values.
func randomMat4(rng *rand.Rand) linalg.Mat4[float64] {
	var m linalg.Mat4[float64]
	for i := range m {
		m[i] = rng.Float64()*2 - 1
	}

	return m
}

// randomVec4 returns a deterministic U(-1,1) Vec4.
func randomVec4(rng *rand.Rand) linalg.Vec4[float64] {
	return linalg.NewVec4(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
}

// randomIntMat4 returns small integers in [-9, 9] so products stay exact.
func randomIntMat4(rng *rand.Rand) linalg.Mat4[int64] {
	var m linalg.Mat4[int64]
	for i := range m {
		m[i] = int64(rng.Intn(19) - 9)
	}

	return m
}

// randomIntVec3 returns small integers in [-9, 9].
func randomIntVec3(rng *rand.Rand) linalg.Vec3[int64] {
	return linalg.NewVec3(int64(rng.Intn(19)-9), int64(rng.Intn(19)-9), int64(rng.Intn(19)-9))
}

// requireMat4Near FAILS the test unless every element differs by less than tol.
func requireMat4Near[T linalg.Float](t *testing.T, want, got linalg.Mat4[T], tol T) {
	t.Helper()
	require.Truef(t, approx.Mat4Eq(want, got, tol),
		"max |Δ| = %g exceeds %g\nwant:\n%vgot:\n%v", approx.MaxAbsDiff(want, got), float64(tol), want, got)
}

// requireVec4Near FAILS the test unless every component differs by less than tol.
func requireVec4Near[T linalg.Float](t *testing.T, want, got linalg.Vec4[T], tol T) {
	t.Helper()
	require.Truef(t, approx.Vec4Eq(want, got, tol), "want %v, got %v (tol %g)", want, got, float64(tol))
}

// requireVec3Near FAILS the test unless every component differs by less than tol.
func requireVec3Near[T linalg.Float](t *testing.T, want, got linalg.Vec3[T], tol T) {
	t.Helper()
	require.Truef(t, approx.Vec3Eq(want, got, tol), "want %v, got %v (tol %g)", want, got, float64(tol))
}
