// SPDX-License-Identifier: MIT

// Package linalg - conversions between element types.
//
// Every component goes through Go's numeric conversion U(x): integer →
// float widens (rounding above 2^24 / 2^53), float → float rounds to
// nearest, float → integer truncates toward zero.

package linalg

// ConvertVec3 converts every component of v to U.
func ConvertVec3[U, T Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}

// ConvertVec4 converts every component of v to U.
func ConvertVec4[U, T Number](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v[0]), U(v[1]), U(v[2]), U(v[3])}
}

// ConvertMat4 converts every element of m to U, preserving layout.
func ConvertMat4[U, T Number](m Mat4[T]) Mat4[U] {
	var out Mat4[U]
	for i := range m {
		out[i] = U(m[i])
	}

	return out
}

// Vec4FromVec3 lifts v into a translatable point: (U(x), U(y), U(z), 1).
func Vec4FromVec3[U, T Number](v Vec3[T]) Vec4[U] {
	return Vec4[U]{U(v[0]), U(v[1]), U(v[2]), 1}
}

// Vec3FromVec4 converts x, y and z to U and drops w.
func Vec3FromVec4[U, T Number](v Vec4[T]) Vec3[U] {
	return Vec3[U]{U(v[0]), U(v[1]), U(v[2])}
}
