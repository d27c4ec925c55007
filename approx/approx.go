// SPDX-License-Identifier: MIT

// Package approx provides approximate equality with an absolute tolerance
// for scalars, vectors and matrices, the tolerance model used to validate
// floating-point results, and bit-level dump helpers for debugging.
//
// Tolerance model:
//
//	tol = ε · 2^M · N
//
// where ε is the machine epsilon of the element type, M bounds the binary
// magnitude of the values under test and N is the number of sequential
// multiply-add steps per output element (4 for one 4×4 product).
//
// The comparison is strict: |a − b| < tol. A NaN on either side never
// compares equal.
package approx

import (
	"math"

	"github.com/katalvlaran/glmath/linalg"
)

// Epsilon returns the machine epsilon of T.
func Epsilon[T linalg.Float]() T { return linalg.MachineEpsilon[T]() }

// Tolerance returns ε(T) · 2^magnitudeBits · ops.
// Complexity: O(1).
func Tolerance[T linalg.Float](magnitudeBits, ops int) T {
	return T(math.Ldexp(float64(Epsilon[T]()), magnitudeBits) * float64(ops))
}

// Eq reports |a − b| < tol.
func Eq[T linalg.Float](a, b, tol T) bool {
	// float32 → float64 is exact, so the comparison keeps T's semantics.
	return math.Abs(float64(a)-float64(b)) < float64(tol)
}

// Vec3Eq applies Eq component-wise.
func Vec3Eq[T linalg.Float](a, b linalg.Vec3[T], tol T) bool {
	for i := range a {
		if !Eq(a[i], b[i], tol) {
			return false
		}
	}

	return true
}

// Vec4Eq applies Eq component-wise.
func Vec4Eq[T linalg.Float](a, b linalg.Vec4[T], tol T) bool {
	for i := range a {
		if !Eq(a[i], b[i], tol) {
			return false
		}
	}

	return true
}

// Mat4Eq applies Eq element-wise.
func Mat4Eq[T linalg.Float](a, b linalg.Mat4[T], tol T) bool {
	for i := range a {
		if !Eq(a[i], b[i], tol) {
			return false
		}
	}

	return true
}

// MaxAbsDiff returns the largest |a[i] − b[i]| over all 16 elements;
// useful in failure messages. NaN differences are reported as NaN.
func MaxAbsDiff[T linalg.Float](a, b linalg.Mat4[T]) float64 {
	worst := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if math.IsNaN(d) {
			return d
		}
		worst = max(worst, d)
	}

	return worst
}
