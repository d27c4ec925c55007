// SPDX-License-Identifier: MIT

// Package linalg - adapters to neighbouring math libraries.
//
// Purpose:
//   - golang.org/x/image/math/f32: float32 row-major Vec3/Vec4/Mat4 with the
//     same layout as ours; conversion is an element-wise copy.
//   - gonum.org/v1/gonum/mat: hand a Mat4 to general dense routines (inverse,
//     decompositions) that this package deliberately does not provide, and
//     bring the result back.

package linalg

import (
	"fmt"

	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/mat"
)

// ToF32Mat4 converts m to an f32.Mat4 (both row-major, m[4*r+c]).
func ToF32Mat4[T Number](m Mat4[T]) f32.Mat4 {
	var out f32.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}

	return out
}

// FromF32Mat4 wraps an f32.Mat4 without reordering.
func FromF32Mat4(m f32.Mat4) Mat4[float32] { return Mat4[float32](m) }

// ToF32Vec3 converts v to an f32.Vec3.
func ToF32Vec3[T Number](v Vec3[T]) f32.Vec3 {
	return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// FromF32Vec3 wraps an f32.Vec3.
func FromF32Vec3(v f32.Vec3) Vec3[float32] { return Vec3[float32](v) }

// ToF32Vec4 converts v to an f32.Vec4.
func ToF32Vec4[T Number](v Vec4[T]) f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// FromF32Vec4 wraps an f32.Vec4.
func FromF32Vec4(v f32.Vec4) Vec4[float32] { return Vec4[float32](v) }

// ToDense copies m into a freshly allocated 4×4 *mat.Dense (float64).
// Complexity: O(16) time and space.
func ToDense[T Number](m Mat4[T]) *mat.Dense {
	data := make([]float64, len(m))
	for i := range m {
		data[i] = float64(m[i])
	}

	return mat.NewDense(4, 4, data)
}

// FromMatrix copies any 4×4 gonum matrix into a Mat4[float64].
// Returns ErrBadShape for other dimensions.
// Complexity: O(16).
func FromMatrix(src mat.Matrix) (Mat4[float64], error) {
	r, c := src.Dims()
	if r != 4 || c != 4 {
		return Mat4[float64]{}, opErrorf(ctxFromDense, fmt.Errorf("%dx%d: %w", r, c, ErrBadShape))
	}
	var out Mat4[float64]
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			out[i*4+j] = src.At(i, j)
		}
	}

	return out, nil
}
