// SPDX-License-Identifier: MIT

// Package linalg - cross-type scalar arithmetic on Vec3.
//
// A float vector may be scaled by any integer or by the other float width.
// The scalar is converted to the element type with Go's numeric conversion
// T(s) first, so narrowing (float64 → float32, large int64 → float32)
// follows the usual conversion rules and is not detected.

package linalg

// MulScalar returns v·T(s).
// Implementation:
//   - Stage 1: convert s to T.
//   - Stage 2: element-wise multiply (Vec3.Mul).
//
// Complexity:
//   - Time O(1), Space O(1).
func MulScalar[T Float, S Number](v Vec3[T], s S) Vec3[T] { return v.Mul(T(s)) }

// ScalarMul returns T(s)·v; the scalar-on-the-left spelling of MulScalar.
func ScalarMul[T Float, S Number](s S, v Vec3[T]) Vec3[T] { return v.Mul(T(s)) }

// DivScalar returns v/T(s). Division by zero yields ±Inf/NaN.
func DivScalar[T Float, S Number](v Vec3[T], s S) Vec3[T] { return v.Div(T(s)) }

// MulAssignScalar performs v *= T(s) in place.
func MulAssignScalar[T Float, S Number](v *Vec3[T], s S) { v.MulAssign(T(s)) }

// DivAssignScalar performs v /= T(s) in place.
func DivAssignScalar[T Float, S Number](v *Vec3[T], s S) { v.DivAssign(T(s)) }
