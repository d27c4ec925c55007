// SPDX-License-Identifier: MIT

// Package linalg - function-style facade over the Mat4 methods.
// Handy when passing operations around as values (e.g. func(a, b Mat4[T]) Mat4[T]).

package linalg

// Sum returns a + b.
func Sum[T Number](a, b Mat4[T]) Mat4[T] { return a.Add(b) }

// Product returns a · b.
func Product[T Number](a, b Mat4[T]) Mat4[T] { return a.Mul(b) }

// T returns mᵀ.
func T[E Number](m Mat4[E]) Mat4[E] { return m.Transpose() }

// MatVecMul returns m · v.
func MatVecMul[T Number](m Mat4[T], v Vec4[T]) Vec4[T] { return m.MulVec4(v) }

// Chain multiplies left to right: Chain(a, b, c) = a · b · c.
// An empty chain yields the identity.
func Chain[T Number](ms ...Mat4[T]) Mat4[T] {
	out := Identity[T]()
	for _, m := range ms {
		out = out.Mul(m)
	}

	return out
}
