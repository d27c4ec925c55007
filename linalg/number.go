// SPDX-License-Identifier: MIT

// Package linalg - element-type constraints and scalar kernels.
//
// Purpose:
//   - Define the Number/Float constraints every type in the package is
//     parameterised on.
//   - Route square roots and trigonometry to the precision of the element
//     type: float32 through github.com/chewxy/math32, everything else
//     through math on float64.
//   - Render a single element as text (shared with package matfmt).

package linalg

import (
	"math"
	"strconv"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is the set of element types a vector or matrix may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts an element type to floating point; required by length,
// normalization and the rotation/projection constructors.
type Float interface {
	constraints.Float
}

// Machine epsilon (distance from 1.0 to the next representable value).
const (
	Epsilon32 = 0x1p-23 // float32
	Epsilon64 = 0x1p-52 // float64
)

const degToRad = math.Pi / 180

// MachineEpsilon returns the machine epsilon of T.
// Complexity: O(1).
func MachineEpsilon[T Float]() T {
	var v T
	if unsafe.Sizeof(v) == 4 {
		return T(Epsilon32)
	}

	return T(Epsilon64)
}

// radians converts degrees to radians in the precision of T.
func radians[T Float](deg T) T { return deg * T(degToRad) }

// sqrt computes √v; float32 stays in float32 via math32.
func sqrt[T Float](v T) T {
	if x, ok := any(v).(float32); ok {
		return T(math32.Sqrt(x))
	}

	return T(math.Sqrt(float64(v)))
}

// sincos returns (sin v, cos v) in the precision of T.
func sincos[T Float](v T) (T, T) {
	if x, ok := any(v).(float32); ok {
		return T(math32.Sin(x)), T(math32.Cos(x))
	}
	s, c := math.Sincos(float64(v))

	return T(s), T(c)
}

// tan returns tan v in the precision of T.
func tan[T Float](v T) T {
	if x, ok := any(v).(float32); ok {
		return T(math32.Tan(x))
	}

	return T(math.Tan(float64(v)))
}

// isFloat reports whether T is a floating-point type.
// Integer division truncates 1/2 to 0; float division does not.
func isFloat[T Number]() bool {
	var one T = 1

	return one/2 != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Number]() bool {
	var zero T

	return zero-1 < zero
}

// FormatScalar renders v the way the pretty-printers expect it:
//   - integers in base 10;
//   - floats as the shortest decimal that round-trips at T's precision,
//     never in exponent form, so 8.0 prints as "8" and float32(2.71) as "2.71".
//
// Complexity: O(digits).
func FormatScalar[T Number](v T) string {
	switch {
	case isFloat[T]():
		bits := int(unsafe.Sizeof(v)) * 8 // 32 or 64
		return strconv.FormatFloat(float64(v), 'f', -1, bits)
	case isSigned[T]():
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatUint(uint64(v), 10)
	}
}
