// SPDX-License-Identifier: MIT

// Package linalg - Mat4 storage (row-major) & accessors.
//
// Purpose:
//   - Provide a contiguous row-major [16]T block with the explicit index
//     formula r*4 + c.
//   - Keep value semantics: assignment copies all 16 elements, == compares them.
//   - Expose the raw block (Data, UnsafePointer) for graphics-API upload.
//   - Offer checked accessors (TryAt/TrySet) next to the panicking fast ones.
//
// Complexity quicksheet:
//   - At/Set/Ptr: O(1); Row/Col: O(1); String: O(16).

package linalg

import (
	"fmt"
	"strings"
	"unsafe"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "| "
	_fmtRowClose = " |\n"
	_fmtSep      = ", "
)

// Mat4 is a 4×4 matrix stored row-major: element (r, c) lives at m[r*4+c].
// The zero value is the zero matrix.
type Mat4[T Number] [16]T

var _ fmt.Stringer = Mat4[float32]{}

// Mat4FromRows builds a matrix from rows[r][c].
func Mat4FromRows[T Number](rows [4][4]T) Mat4[T] {
	var m Mat4[T]
	var r, c int
	for r = 0; r < 4; r++ {
		for c = 0; c < 4; c++ {
			m[r*4+c] = rows[r][c]
		}
	}

	return m
}

// Mat4FromArray wraps a row-major 16-element array.
func Mat4FromArray[T Number](a [16]T) Mat4[T] { return Mat4[T](a) }

// Mat4FromSlice copies a row-major slice. Returns ErrBadShape unless len(s) == 16.
func Mat4FromSlice[T Number](s []T) (Mat4[T], error) {
	if len(s) != 16 {
		return Mat4[T]{}, fmt.Errorf("Mat4.%s(%d): %w", ctxFromSlice, len(s), ErrBadShape)
	}
	var m Mat4[T]
	copy(m[:], s)

	return m, nil
}

// offset computes the row-major offset or returns ErrOutOfRange.
func offset(row, col int) (int, error) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return 0, ErrOutOfRange
	}

	return row*4 + col, nil
}

// At returns element (row, col). Panics when an index is outside 0..3.
func (m Mat4[T]) At(row, col int) T {
	checkIndex(row, col)
	return m[row*4+col]
}

// Set writes element (row, col). Panics when an index is outside 0..3.
func (m *Mat4[T]) Set(row, col int, v T) {
	checkIndex(row, col)
	m[row*4+col] = v
}

// Ptr yields a mutable reference to element (row, col).
// Panics when an index is outside 0..3.
func (m *Mat4[T]) Ptr(row, col int) *T {
	checkIndex(row, col)
	return &m[row*4+col]
}

// checkIndex rejects (row, col) pairs whose flat offset would still land
// inside the block, e.g. (0, 5); the array access alone would not catch those.
func checkIndex(row, col int) {
	if _, err := offset(row, col); err != nil {
		panic(mat4Errorf(ctxAt, row, col, err))
	}
}

// TryAt returns element (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m Mat4[T]) TryAt(row, col int) (T, error) {
	off, err := offset(row, col)
	if err != nil {
		var zero T
		return zero, mat4Errorf(ctxAt, row, col, err)
	}

	return m[off], nil
}

// TrySet writes element (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Mat4[T]) TrySet(row, col int, v T) error {
	off, err := offset(row, col)
	if err != nil {
		return mat4Errorf(ctxSet, row, col, err)
	}
	m[off] = v

	return nil
}

// Row returns row r as a Vec4. Panics when r is outside 0..3.
func (m Mat4[T]) Row(r int) Vec4[T] {
	checkIndex(r, 0)
	return Vec4[T]{m[r*4], m[r*4+1], m[r*4+2], m[r*4+3]}
}

// Col returns column c as a Vec4. Panics when c is outside 0..3.
func (m Mat4[T]) Col(c int) Vec4[T] {
	checkIndex(0, c)
	return Vec4[T]{m[c], m[4+c], m[8+c], m[12+c]}
}

// Equal reports pairwise element equality (same as ==).
func (m Mat4[T]) Equal(o Mat4[T]) bool { return m == o }

// Data returns the backing row-major block. Writes through the pointer
// mutate m; treat it as read-only when handing it to external code.
func (m *Mat4[T]) Data() *[16]T { return (*[16]T)(m) }

// UnsafePointer returns the address of element (0,0) for direct upload to a
// graphics API. The 16 elements are contiguous and row-major; a consumer
// reading them column-major sees mᵀ. The pointer is valid while m is alive.
func (m *Mat4[T]) UnsafePointer() unsafe.Pointer { return unsafe.Pointer(&m[0]) }

// SizeOfRaw returns the byte size of the 16-element block.
func (m Mat4[T]) SizeOfRaw() uintptr { return unsafe.Sizeof(m) }

// String renders one line per row: "| a, b, c, d |".
// Intended for debugging; see package matfmt for aligned output.
func (m Mat4[T]) String() string {
	var b strings.Builder
	var r, c int
	for r = 0; r < 4; r++ {
		b.WriteString(_fmtRowOpen)
		for c = 0; c < 4; c++ {
			b.WriteString(FormatScalar(m[r*4+c]))
			if c < 3 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
