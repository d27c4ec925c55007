// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Only the checked accessors, slice constructors, interop adapters and
// LookAtChecked return errors; every other operation is total and surfaces
// numeric degeneracy as IEEE-754 ±Inf/NaN.

package linalg

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "linalg: ..." for easy grepping. Callers
// match with errors.Is; context is attached with %w wrapping.
var (
	// ErrOutOfRange indicates that an index is outside 0..2 (Vec3) or
	// 0..3 (Vec4, Mat4 row/column).
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrBadShape is returned when a slice or foreign matrix does not have
	// exactly the element count / dimensions of the target type.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrDegenerateBasis is returned by LookAtChecked when the view
	// direction is zero or the up vector is zero or parallel to it.
	ErrDegenerateBasis = errors.New("linalg: degenerate look-at basis")
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxFromSlice = "FromSlice"
	ctxLookAt    = "LookAtChecked"
	ctxFromDense = "FromMatrix"
)

// indexErrorf wraps err with the owning type, method and index.
// Complexity: O(1).
func indexErrorf(typ, method string, idx int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, idx, err)
}

// mat4Errorf wraps err with Mat4 method context and (row, col) coordinates.
// Complexity: O(1).
func mat4Errorf(method string, row, col int, err error) error {
	return fmt.Errorf("Mat4.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps err with an operation tag, keeping the sentinel for errors.Is.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
