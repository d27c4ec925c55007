// SPDX-License-Identifier: MIT

// Package linalg - Vec3: 3-component vector.
//
// Purpose:
//   - Contiguous [3]T storage with access by name (X/Y/Z) and by index 0..2.
//   - Element-wise arithmetic, Dot and Cross for any Number.
//   - Length/Normalize for Float element types (package-level functions).
//
// Complexity quicksheet:
//   - Every operation is O(1) and allocation-free.

package linalg

import "fmt"

const vec3Name = "Vec3"

// Vec3 is an ordered triple (x, y, z). The zero value is the zero vector.
type Vec3[T Number] [3]T

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vec3[float32]{}

// NewVec3 builds (x, y, z).
func NewVec3[T Number](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// Vec3FromArray wraps a 3-element array.
func Vec3FromArray[T Number](a [3]T) Vec3[T] { return Vec3[T](a) }

// Vec3FromSlice copies the first three elements of s.
// Returns ErrBadShape unless len(s) == 3.
func Vec3FromSlice[T Number](s []T) (Vec3[T], error) {
	if len(s) != 3 {
		return Vec3[T]{}, indexErrorf(vec3Name, ctxFromSlice, len(s), ErrBadShape)
	}

	return Vec3[T]{s[0], s[1], s[2]}, nil
}

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// Components returns (x, y, z).
func (v Vec3[T]) Components() (x, y, z T) { return v[0], v[1], v[2] }

// SetX replaces the first component.
func (v *Vec3[T]) SetX(x T) { v[0] = x }

// SetY replaces the second component.
func (v *Vec3[T]) SetY(y T) { v[1] = y }

// SetZ replaces the third component.
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// PtrX yields a mutable reference to the first component.
func (v *Vec3[T]) PtrX() *T { return &v[0] }

// PtrY yields a mutable reference to the second component.
func (v *Vec3[T]) PtrY() *T { return &v[1] }

// PtrZ yields a mutable reference to the third component.
func (v *Vec3[T]) PtrZ() *T { return &v[2] }

// At returns component i. Panics when i is outside 0..2.
func (v Vec3[T]) At(i int) T { return v[i] }

// SetAt replaces component i. Panics when i is outside 0..2.
func (v *Vec3[T]) SetAt(i int, x T) { v[i] = x }

// TryAt returns component i or ErrOutOfRange.
func (v Vec3[T]) TryAt(i int) (T, error) {
	if i < 0 || i >= len(v) {
		var zero T
		return zero, indexErrorf(vec3Name, ctxAt, i, ErrOutOfRange)
	}

	return v[i], nil
}

// Equal reports pairwise equality (same as ==).
func (v Vec3[T]) Equal(o Vec3[T]) bool { return v == o }

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// AddAssign performs v += o in place.
func (v *Vec3[T]) AddAssign(o Vec3[T]) { *v = v.Add(o) }

// SubAssign performs v -= o in place.
func (v *Vec3[T]) SubAssign(o Vec3[T]) { *v = v.Sub(o) }

// Neg returns -v. Unsigned element types wrap around.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v[0], -v[1], -v[2]} }

// Mul returns v·s for a scalar of the same element type.
// For scalars of another numeric type use MulScalar.
func (v Vec3[T]) Mul(s T) Vec3[T] { return Vec3[T]{v[0] * s, v[1] * s, v[2] * s} }

// Div returns v/s. Division by zero follows T (±Inf/NaN for floats, a
// runtime panic for integers).
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v[0] / s, v[1] / s, v[2] / s} }

// MulAssign performs v *= s in place.
func (v *Vec3[T]) MulAssign(s T) { *v = v.Mul(s) }

// DivAssign performs v /= s in place.
func (v *Vec3[T]) DivAssign(s T) { *v = v.Div(s) }

// Cross returns the right-handed cross product v × o:
//
//	(y·z' − z·y', z·x' − x·z', x·y' − y·x')
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Dot returns x·x' + y·y' + z·z'.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// LengthSquared returns x² + y² + z² computed in T.
func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }

// LengthF32 squares and sums in T, converts to float32, then takes the root.
// Usable for any element type; integer overflow in the square sum is not detected.
func (v Vec3[T]) LengthF32() float32 { return sqrt(float32(v.LengthSquared())) }

// LengthF64 is LengthF32 in float64.
func (v Vec3[T]) LengthF64() float64 { return sqrt(float64(v.LengthSquared())) }

// String renders "(x, y, z)".
func (v Vec3[T]) String() string {
	return "(" + FormatScalar(v[0]) + ", " + FormatScalar(v[1]) + ", " + FormatScalar(v[2]) + ")"
}

// Length returns √(x²+y²+z²).
func Length[T Float](v Vec3[T]) T { return sqrt(v.LengthSquared()) }

// Normalize divides every component by Length(v).
// A zero-length input yields NaN components; callers must guard.
func Normalize[T Float](v Vec3[T]) Vec3[T] {
	l := Length(v)

	return Vec3[T]{v[0] / l, v[1] / l, v[2] / l}
}
