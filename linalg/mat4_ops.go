// SPDX-License-Identifier: MIT

// Package linalg - Mat4 arithmetic kernels.
//
// Purpose:
//   - Element-wise Add, the 4×4 product, matrix·vector and Transpose.
//
// Notes:
//   - Every kernel writes all 16 (or 4) outputs into a fresh value; operands
//     are passed by value, so the result never aliases an input.
//   - Accumulation order for products is fixed (i = 0,1,2,3) so floating
//     point results are reproducible bit for bit.

package linalg

// Add returns the element-wise sum m + o.
// Complexity: O(16).
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for i := range m {
		out[i] = m[i] + o[i]
	}

	return out
}

// Mul performs the standard product C = m · o.
// Implementation:
//   - Stage 1: for every (r, c), start the accumulator at zero.
//   - Stage 2: add m[r,i]·o[i,c] for i = 0,1,2,3 in that order.
//
// Behavior highlights:
//   - Exact in the ring of T for integer element types (modulo overflow).
//   - For floats, each output element carries at most four rounded
//     multiply-add steps; tests budget ε·2^M·4 absolute error.
//
// Inputs:
//   - m: left operand; o: right operand (both copied).
//
// Returns:
//   - Mat4[T]: freshly constructed product.
//
// Determinism:
//   - Fixed r→c→i loop order.
//
// Complexity:
//   - Time O(64) multiply-adds, Space O(1).
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	var r, c, i int
	var acc T
	for r = 0; r < 4; r++ {
		for c = 0; c < 4; c++ {
			acc = 0
			for i = 0; i < 4; i++ {
				acc += m[r*4+i] * o[i*4+c]
			}
			out[r*4+c] = acc
		}
	}

	return out
}

// MulAssign replaces m with m · o.
func (m *Mat4[T]) MulAssign(o Mat4[T]) { *m = m.Mul(o) }

// MulVec4 returns the column vector m · v, component r = Σ_c m[r,c]·v[c]
// accumulated in c order.
// Complexity: O(16).
func (m Mat4[T]) MulVec4(v Vec4[T]) Vec4[T] {
	var out Vec4[T]
	var r, c int
	var acc T
	for r = 0; r < 4; r++ {
		acc = 0
		for c = 0; c < 4; c++ {
			acc += m[r*4+c] * v[c]
		}
		out[r] = acc
	}

	return out
}

// Transpose returns a new matrix with rows and columns exchanged; m is untouched.
// Complexity: O(16).
func (m Mat4[T]) Transpose() Mat4[T] {
	var out Mat4[T]
	var r, c int
	for r = 0; r < 4; r++ {
		for c = 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}

	return out
}
