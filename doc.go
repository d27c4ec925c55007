// Package glmath is a small, allocation-free toolkit of 3D graphics math:
// generic 3- and 4-component vectors and a row-major 4×4 matrix with the
// transform constructors a rasterizing renderer needs.
//
// What is inside?
//
//	• Vectors: Vec3[T], Vec4[T] with arithmetic, dot & cross products,
//	  length and normalization
//	• Matrices: Mat4[T] with element access, product, matrix·vector and
//	  transpose, plus raw storage for graphics-API upload
//	• Transforms: identity, scale, translation, axis and arbitrary-axis
//	  rotation, perspective & orthographic projection, look-at view
//	• Pretty-printing: aligned text renderings of a Mat4
//	• Tolerance checks: approximate equality under the ε·2^M·N model
//
// Conventions (OpenGL style): column vectors (p' = M·p), right-handed
// coordinates, clip-space depth in [-1, +1], angles in degrees.
//
// Everything is organized under three subpackages:
//
//	linalg/ — Vec3, Vec4, Mat4, conversions, transforms, gonum & x/image interop
//	matfmt/ — uniform, per-column and fraction-aligned Mat4 printers
//	approx/ — tolerance model, approximate equality and bit dumps
//
// Quick example:
//
//	proj := linalg.Perspective[float32](60, 16.0/9, 100, 0.1)
//	view := linalg.LookAt(eye, dir, linalg.NewVec3[float32](0, 1, 0))
//	mvp := linalg.Chain(proj, view, model)
//	gl.UniformMatrix4fv(loc, 1, true, (*float32)(mvp.UnsafePointer())) // M * v shaders
//
//	go get github.com/katalvlaran/glmath
package glmath
