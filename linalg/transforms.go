// SPDX-License-Identifier: MIT

// Package linalg - named transform constructors.
//
// Conventions (OpenGL style):
//   - column vectors: a point p is transformed as M · p;
//   - right-handed coordinates;
//   - clip-space depth mapped to [-1, +1];
//   - every angle is in DEGREES and converted to radians internally.
//
// Every constructor writes all 16 elements; slots that must be zero are
// zero because construction starts from Zero or Identity.
// Constructors targeting a [0, 1] depth range (Vulkan/Direct3D) are not
// provided; do not reuse these for that convention.

package linalg

// Zero returns the all-zero matrix.
func Zero[T Number]() Mat4[T] { return Mat4[T]{} }

// Identity returns 1 on the diagonal and 0 elsewhere.
func Identity[T Number]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale returns diag(sx, sy, sz, 1). Valid for integer element types.
func Scale[T Number](sx, sy, sz T) Mat4[T] {
	m := Zero[T]()
	m[0] = sx
	m[5] = sy
	m[10] = sz
	m[15] = 1

	return m
}

// UniformScale returns Scale(s, s, s).
func UniformScale[T Number](s T) Mat4[T] { return Scale(s, s, s) }

// Translation returns the identity with column 3, rows 0..2 set to (tx, ty, tz).
func Translation[T Number](tx, ty, tz T) Mat4[T] {
	m := Identity[T]()
	m[3] = tx
	m[7] = ty
	m[11] = tz

	return m
}

// RotationX returns the right-handed rotation about the x axis:
//
//	| 1  0     0    0 |
//	| 0  cosθ −sinθ 0 |
//	| 0  sinθ  cosθ 0 |
//	| 0  0     0    1 |
func RotationX[T Float](degrees T) Mat4[T] {
	s, c := sincos(radians(degrees))
	m := Identity[T]()
	m[5], m[6] = c, -s
	m[9], m[10] = s, c

	return m
}

// RotationY returns the right-handed rotation about the y axis
// (cos at (0,0),(2,2); sin at (0,2); −sin at (2,0)).
func RotationY[T Float](degrees T) Mat4[T] {
	s, c := sincos(radians(degrees))
	m := Identity[T]()
	m[0], m[2] = c, s
	m[8], m[10] = -s, c

	return m
}

// RotationZ returns the right-handed rotation about the z axis.
func RotationZ[T Float](degrees T) Mat4[T] {
	s, c := sincos(radians(degrees))
	m := Identity[T]()
	m[0], m[1] = c, -s
	m[4], m[5] = s, c

	return m
}

// Rotation returns the rotation by degrees about axis (Rodrigues' formula).
// Implementation:
//   - Stage 1: c = cosθ, s = sinθ, k = 1 − c, (x, y, z) = axis.
//   - Stage 2: fill the 3×3 block
//     [ c+x²k   xyk−zs  zxk+ys ]
//     [ xyk+zs  c+y²k   yzk−xs ]
//     [ zxk−ys  yzk+xs  c+z²k  ]
//   - Stage 3: last row and column = [0 0 0 1].
//
// Inputs:
//   - degrees: rotation angle (counter-clockwise looking down the axis).
//   - axis: MUST already be unit length; it is not normalized here.
//
// Returns:
//   - Mat4[T]: rotation matrix; equals RotationX/Y/Z for the unit axes
//     within rounding.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - A non-unit axis produces a matrix that also scales/shears.
//     Call Normalize(axis) first when in doubt.
func Rotation[T Float](degrees T, axis Vec3[T]) Mat4[T] {
	x, y, z := axis.Components()
	s, c := sincos(radians(degrees))
	k := 1 - c
	xs, ys, zs := x*s, y*s, z*s

	m := Zero[T]()
	m[0], m[1], m[2] = c+x*x*k, x*y*k-zs, z*x*k+ys
	m[4], m[5], m[6] = x*y*k+zs, c+y*y*k, y*z*k-xs
	m[8], m[9], m[10] = z*x*k-ys, y*z*k+xs, c+z*z*k
	m[15] = 1

	return m
}

// Perspective returns a symmetric-frustum projection.
// With f = 1/tan(fov/2):
//
//	| f/aspect 0  0                 0                  |
//	| 0        f  0                 0                  |
//	| 0        0  −(zf+zn)/(zf−zn)  −2·zf·zn/(zf−zn)   |
//	| 0        0  −1                0                  |
//
// Inputs:
//   - fovDegrees: vertical field of view.
//   - aspect: width / height.
//   - zFar, zNear: positive distances to the clip planes (note the order).
//
// Complexity:
//   - Time O(1), Space O(1).
func Perspective[T Float](fovDegrees, aspect, zFar, zNear T) Mat4[T] {
	f := 1 / tan(radians(fovDegrees/2))
	depth := zFar - zNear

	m := Zero[T]()
	m[0] = f / aspect
	m[5] = f
	m[10] = -(zFar + zNear) / depth
	m[11] = -2 * zFar * zNear / depth
	m[14] = -1

	return m
}

// PerspectiveByDimensions returns a general (possibly off-axis) frustum from
// the near-plane extents right, left, top and bottom.
// Entries: 2zn/(r−l) at (0,0), (r+l)/(r−l) at (0,2), 2zn/(t−b) at (1,1),
// (t+b)/(t−b) at (1,2); third and fourth rows as in Perspective.
func PerspectiveByDimensions[T Float](right, left, top, bottom, zFar, zNear T) Mat4[T] {
	width := right - left
	height := top - bottom
	depth := zFar - zNear

	m := Zero[T]()
	m[0] = 2 * zNear / width
	m[2] = (right + left) / width
	m[5] = 2 * zNear / height
	m[6] = (top + bottom) / height
	m[10] = -(zFar + zNear) / depth
	m[11] = -2 * zFar * zNear / depth
	m[14] = -1

	return m
}

// Orthographic returns a centred orthographic projection of a width×height
// view volume: 2/w at (0,0), 2/h at (1,1), −2/(zf−zn) at (2,2),
// −(zf+zn)/(zf−zn) at (2,3) and 1 at (3,3).
func Orthographic[T Float](width, height, zFar, zNear T) Mat4[T] {
	depth := zFar - zNear

	m := Zero[T]()
	m[0] = 2 / width
	m[5] = 2 / height
	m[10] = -2 / depth
	m[11] = -(zFar + zNear) / depth
	m[15] = 1

	return m
}

// lookAtBasis derives the camera basis (right, up, back).
func lookAtBasis[T Float](viewDir, worldUp Vec3[T]) (r, u, f Vec3[T]) {
	f = Normalize(viewDir.Neg())
	r = Normalize(worldUp.Cross(f))
	u = Normalize(f.Cross(r))

	return r, u, f
}

// lookAtFromBasis assembles rotation(rows r, u, f) · Translation(−eye).
func lookAtFromBasis[T Float](eye, r, u, f Vec3[T]) Mat4[T] {
	rot := Mat4[T]{
		r[0], r[1], r[2], 0,
		u[0], u[1], u[2], 0,
		f[0], f[1], f[2], 0,
		0, 0, 0, 1,
	}

	return rot.Mul(Translation(-eye[0], -eye[1], -eye[2]))
}

// LookAt returns the view matrix of a camera at eye looking along viewDir.
// Implementation:
//   - Stage 1: f = −normalize(viewDir) (camera looks down −z).
//   - Stage 2: r = normalize(worldUp × f), u = normalize(f × r).
//   - Stage 3: rotation with rows (r, u, f) times Translation(−eye).
//
// Inputs:
//   - eye: camera position.
//   - viewDir: viewing direction (any non-zero length).
//   - worldUp: non-zero and not parallel to viewDir.
//
// Returns:
//   - Mat4[T]: world → view transform.
//
// Notes:
//   - Degenerate inputs are not detected: the zero cross product is
//     normalized and NaNs propagate. Use LookAtChecked to get an error instead.
func LookAt[T Float](eye, viewDir, worldUp Vec3[T]) Mat4[T] {
	r, u, f := lookAtBasis(viewDir, worldUp)

	return lookAtFromBasis(eye, r, u, f)
}

// LookAtChecked is LookAt with input validation.
// Returns ErrDegenerateBasis when viewDir or worldUp is zero (or not finite),
// or when worldUp is parallel to viewDir within the machine epsilon of T.
func LookAtChecked[T Float](eye, viewDir, worldUp Vec3[T]) (Mat4[T], error) {
	dirLen := Length(viewDir)
	upLen := Length(worldUp)
	if !(dirLen > 0) || !(upLen > 0) || isInf(dirLen) || isInf(upLen) {
		return Mat4[T]{}, opErrorf(ctxLookAt, ErrDegenerateBasis)
	}

	f := viewDir.Neg().Div(dirLen)
	side := worldUp.Cross(f)
	// |up × f| = |up|·sinφ for unit f; parallel inputs leave only rounding noise.
	if Length(side) <= 4*MachineEpsilon[T]()*upLen {
		return Mat4[T]{}, opErrorf(ctxLookAt, ErrDegenerateBasis)
	}
	r := Normalize(side)
	u := Normalize(f.Cross(r))

	return lookAtFromBasis(eye, r, u, f), nil
}

// isInf reports whether v is ±Inf.
func isInf[T Float](v T) bool { return v-v != 0 && v == v }
