// SPDX-License-Identifier: MIT

// Package linalg - Vec4: 4-component homogeneous vector.
//
// The fourth component w tells points (w=1, moved by translations) from
// directions (w=0, unaffected). NewVec4XYZ and NewVec4Translatable build
// the two kinds from three coordinates.

package linalg

import "fmt"

const vec4Name = "Vec4"

// Vec4 is an ordered quadruple (x, y, z, w). The zero value is the zero vector.
type Vec4[T Number] [4]T

var _ fmt.Stringer = Vec4[float32]{}

// NewVec4 builds (x, y, z, w).
func NewVec4[T Number](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// NewVec4XYZ builds the direction (x, y, z, 0).
func NewVec4XYZ[T Number](x, y, z T) Vec4[T] { return Vec4[T]{x, y, z, 0} }

// NewVec4Translatable builds the point (x, y, z, 1).
func NewVec4Translatable[T Number](x, y, z T) Vec4[T] { return Vec4[T]{x, y, z, 1} }

// Vec4FromArray wraps a 4-element array.
func Vec4FromArray[T Number](a [4]T) Vec4[T] { return Vec4[T](a) }

// Vec4FromSlice copies s into a Vec4. Returns ErrBadShape unless len(s) == 4.
func Vec4FromSlice[T Number](s []T) (Vec4[T], error) {
	if len(s) != 4 {
		return Vec4[T]{}, indexErrorf(vec4Name, ctxFromSlice, len(s), ErrBadShape)
	}

	return Vec4[T]{s[0], s[1], s[2], s[3]}, nil
}

// X returns the first component.
func (v Vec4[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec4[T]) Z() T { return v[2] }

// W returns the homogeneous component.
func (v Vec4[T]) W() T { return v[3] }

// Components returns (x, y, z, w).
func (v Vec4[T]) Components() (x, y, z, w T) { return v[0], v[1], v[2], v[3] }

// SetX replaces the first component.
func (v *Vec4[T]) SetX(x T) { v[0] = x }

// SetY replaces the second component.
func (v *Vec4[T]) SetY(y T) { v[1] = y }

// SetZ replaces the third component.
func (v *Vec4[T]) SetZ(z T) { v[2] = z }

// SetW replaces the homogeneous component.
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// PtrX yields a mutable reference to the first component.
func (v *Vec4[T]) PtrX() *T { return &v[0] }

// PtrY yields a mutable reference to the second component.
func (v *Vec4[T]) PtrY() *T { return &v[1] }

// PtrZ yields a mutable reference to the third component.
func (v *Vec4[T]) PtrZ() *T { return &v[2] }

// PtrW yields a mutable reference to the homogeneous component.
func (v *Vec4[T]) PtrW() *T { return &v[3] }

// At returns component i. Panics when i is outside 0..3.
func (v Vec4[T]) At(i int) T { return v[i] }

// SetAt replaces component i. Panics when i is outside 0..3.
func (v *Vec4[T]) SetAt(i int, x T) { v[i] = x }

// TryAt returns component i or ErrOutOfRange.
func (v Vec4[T]) TryAt(i int) (T, error) {
	if i < 0 || i >= len(v) {
		var zero T
		return zero, indexErrorf(vec4Name, ctxAt, i, ErrOutOfRange)
	}

	return v[i], nil
}

// Equal reports pairwise equality over all four components (same as ==).
func (v Vec4[T]) Equal(o Vec4[T]) bool { return v == o }

// XYZ drops w.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// String renders "(x, y, z, w)".
func (v Vec4[T]) String() string {
	return "(" + FormatScalar(v[0]) + ", " + FormatScalar(v[1]) + ", " +
		FormatScalar(v[2]) + ", " + FormatScalar(v[3]) + ")"
}

// Normalize3 divides x, y and z by the length of (x, y, z) and leaves w
// untouched; used for directions stored in a homogeneous vector.
// A zero (x, y, z) yields NaN components.
func Normalize3[T Float](v Vec4[T]) Vec4[T] {
	l := Length(v.XYZ())

	return Vec4[T]{v[0] / l, v[1] / l, v[2] / l, v[3]}
}
