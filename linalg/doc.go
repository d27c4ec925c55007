// SPDX-License-Identifier: MIT

// Package linalg provides the fixed-size linear-algebra primitives used by
// 3D graphics code: Vec3, Vec4 and a row-major Mat4, all generic over the
// element type.
//
// The package provides:
//
//   - Value types with array storage: Vec3[T] is [3]T, Vec4[T] is [4]T and
//     Mat4[T] is [16]T with element (r,c) at offset r*4+c. Copying a value
//     copies its components; == compares them pairwise.
//   - Arithmetic and geometric products: Add/Sub/Neg, scalar Mul/Div (also
//     across element types via MulScalar/DivScalar), Dot, Cross, Mat4·Mat4,
//     Mat4·Vec4 and Transpose.
//   - Transform constructors following the OpenGL convention (column
//     vectors, right-handed, clip-space depth in [-1,+1], angles in degrees):
//     Scale, Translation, RotationX/Y/Z, Rotation (Rodrigues), Perspective,
//     PerspectiveByDimensions, Orthographic and LookAt.
//   - Conversions between element types and interop with
//     golang.org/x/image/math/f32 and gonum.org/v1/gonum/mat.
//
// Float-only operations (Length, Normalize, rotations, projections) are
// package-level functions constrained by Float because Go methods cannot
// narrow the receiver's type parameter.
//
// Failure model:
//
//   - Index access beyond 0..2 (Vec3) or 0..3 (Vec4, Mat4 rows/cols) panics
//     like any Go array access. TryAt/TrySet return ErrOutOfRange instead.
//   - Division by zero and normalization of zero-length vectors propagate
//     IEEE-754 ±Inf/NaN; nothing is reported.
//
// Raw storage:
//
//	m := linalg.Perspective[float32](60, 16.0/9.0, 100, 0.1)
//	gl.UniformMatrix4fv(loc, 1, false, (*float32)(m.UnsafePointer()))
//
// The block is row-major. A column-major consumer reads mᵀ, which is what a
// shader multiplying row-vector style (v * M) expects; shaders written as
// M * v need transpose=true on upload (or m.Transpose()).
package linalg
