// Package linalg_test contains unit tests for Vec3 storage, arithmetic and products.
package linalg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/glmath/linalg"
	"github.com/stretchr/testify/require"
)

func TestVec3_Accessors(t *testing.T) {
	v := linalg.NewVec3(1, -2, 3)
	require.Equal(t, 1, v.X())
	require.Equal(t, -2, v.Y())
	require.Equal(t, 3, v.Z())

	x, y, z := v.Components()
	require.Equal(t, [3]int{1, -2, 3}, [3]int{x, y, z})

	v.SetX(10)
	v.SetY(20)
	v.SetZ(30)
	require.Equal(t, linalg.NewVec3(10, 20, 30), v)

	*v.PtrX() += 1
	*v.PtrY() -= 1
	*v.PtrZ() *= 2
	require.Equal(t, linalg.NewVec3(11, 19, 60), v)

	v.SetAt(1, 7)
	require.Equal(t, 7, v.At(1))
	require.Equal(t, linalg.Vec3FromArray([3]int{11, 7, 60}), v)
}

func TestVec3_TryAt(t *testing.T) {
	v := linalg.NewVec3(1.5, 2.5, 3.5)
	for i, want := range []float64{1.5, 2.5, 3.5} {
		got, err := v.TryAt(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	for _, idx := range []int{-1, 3, 100} {
		_, err := v.TryAt(idx)
		require.ErrorIs(t, err, linalg.ErrOutOfRange)
	}

	require.Panics(t, func() { _ = v.At(3) })
}

func TestVec3_FromSlice(t *testing.T) {
	v, err := linalg.Vec3FromSlice([]float32{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, linalg.NewVec3[float32](1, 2, 3), v)

	for _, s := range [][]float32{nil, {1, 2}, {1, 2, 3, 4}} {
		_, err = linalg.Vec3FromSlice(s)
		require.ErrorIs(t, err, linalg.ErrBadShape)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := linalg.NewVec3(1, 2, 3)
	b := linalg.NewVec3(4, -5, 6)

	require.Equal(t, linalg.NewVec3(5, -3, 9), a.Add(b))
	require.Equal(t, linalg.NewVec3(-3, 7, -3), a.Sub(b))
	require.Equal(t, linalg.NewVec3(-1, -2, -3), a.Neg())
	require.Equal(t, linalg.NewVec3(3, 6, 9), a.Mul(3))
	require.Equal(t, linalg.NewVec3(2, -2, 3), b.Div(2)) // integer division truncates

	c := a
	c.AddAssign(b)
	require.Equal(t, a.Add(b), c)
	c.SubAssign(b)
	require.Equal(t, a, c)
	c.MulAssign(4)
	require.Equal(t, linalg.NewVec3(4, 8, 12), c)
	c.DivAssign(4)
	require.Equal(t, a, c)

	require.True(t, a.Equal(linalg.NewVec3(1, 2, 3)))
	require.False(t, a.Equal(b))
}

func TestVec3_CrossDot(t *testing.T) {
	ex := linalg.NewVec3(1, 0, 0)
	ey := linalg.NewVec3(0, 1, 0)
	ez := linalg.NewVec3(0, 0, 1)
	require.Equal(t, ez, ex.Cross(ey))
	require.Equal(t, ex, ey.Cross(ez))
	require.Equal(t, ey, ez.Cross(ex))

	a := linalg.NewVec3(2, 3, 4)
	b := linalg.NewVec3(5, 6, 7)
	require.Equal(t, linalg.NewVec3(-3, 6, -3), a.Cross(b))
	require.Equal(t, 56, a.Dot(b))
	require.Equal(t, 29, a.LengthSquared())
}

func TestVec3_CrossProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	var i int
	for i = 0; i < propertyRounds; i++ {
		a, b := randomIntVec3(rng), randomIntVec3(rng)
		require.Equal(t, b.Cross(a).Neg(), a.Cross(b), "anti-commutativity for %v, %v", a, b)
		require.Zero(t, a.Dot(a.Cross(b)), "a · (a × b) for %v, %v", a, b)
		require.Zero(t, b.Dot(a.Cross(b)), "b · (a × b) for %v, %v", a, b)
	}
}

func TestVec3_ScalarDistributes(t *testing.T) {
	rng := rand.New(rand.NewSource(4242))
	var i int
	for i = 0; i < propertyRounds; i++ {
		v, w := randomIntVec3(rng), randomIntVec3(rng)
		a, b := int64(rng.Intn(11)-5), int64(rng.Intn(11)-5)
		require.Equal(t, v.Mul(a).Add(v.Mul(b)), v.Mul(a+b))
		require.Equal(t, v.Mul(a).Add(w.Mul(a)), v.Add(w).Mul(a))
	}
}

func TestVec3_Length(t *testing.T) {
	v := linalg.NewVec3(3, 4, 12)
	require.Equal(t, float32(13), v.LengthF32())
	require.Equal(t, 13.0, v.LengthF64())

	f := linalg.NewVec3(2.0, -3.0, 6.0)
	require.Equal(t, 7.0, linalg.Length(f))
	require.Equal(t, float32(7), linalg.Length(linalg.NewVec3[float32](2, -3, 6)))
}

func TestVec3_Normalize(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tol := 4 * linalg.Epsilon64
	var i int
	for i = 0; i < propertyRounds; i++ {
		v := linalg.NewVec3(rng.Float64()*20-10, rng.Float64()*20-10, rng.Float64()*20-10)
		n := linalg.Normalize(v)
		require.InDelta(t, 1.0, linalg.Length(n), tol, "‖normalize(%v)‖", v)
		// direction is preserved
		require.InDelta(t, linalg.Length(v), v.Dot(n), 1e-12)
	}

	n32 := linalg.Normalize(linalg.NewVec3[float32](0, 3, 4))
	requireVec3Near(t, linalg.NewVec3[float32](0, 0.6, 0.8), n32, 4*linalg.Epsilon32)
}

func TestVec3_NormalizeZero(t *testing.T) {
	n := linalg.Normalize(linalg.Vec3[float64]{})
	for _, c := range n {
		require.True(t, math.IsNaN(c))
	}
}

func TestVec3_CrossTypeScalar(t *testing.T) {
	v32 := linalg.NewVec3[float32](2.75, -1.5, 3.25)
	v64 := linalg.NewVec3(2.75, -1.5, 3.25)

	// every value below is exactly representable, so == is safe
	require.Equal(t, linalg.NewVec3[float32](-5.5, 3, -6.5), linalg.MulScalar(v32, int32(-2)))
	require.Equal(t, linalg.NewVec3(-5.5, 3, -6.5), linalg.MulScalar(v64, int32(-2)))
	require.Equal(t, linalg.NewVec3[float32](8.25, -4.5, 9.75), linalg.MulScalar(v32, int64(3)))
	require.Equal(t, linalg.NewVec3(8.25, -4.5, 9.75), linalg.MulScalar(v64, int64(3)))
	require.Equal(t, linalg.NewVec3[float32](11, -6, 13), linalg.MulScalar(v32, uint32(4)))
	require.Equal(t, linalg.NewVec3[float64](11, -6, 13), linalg.MulScalar(v64, uint32(4)))
	require.Equal(t, linalg.NewVec3[float32](13.75, -7.5, 16.25), linalg.MulScalar(v32, uint64(5)))
	require.Equal(t, linalg.NewVec3(13.75, -7.5, 16.25), linalg.MulScalar(v64, uint64(5)))
	require.Equal(t, linalg.NewVec3[float32](-4.8125, 2.625, -5.6875), linalg.MulScalar(v32, -1.75))
	require.Equal(t, linalg.NewVec3(-4.8125, 2.625, -5.6875), linalg.MulScalar(v64, float32(-1.75)))

	require.Equal(t, linalg.NewVec3[float32](-4.8125, 2.625, -5.6875), linalg.ScalarMul(float32(-1.75), v32))
	require.Equal(t, linalg.NewVec3(-4.8125, 2.625, -5.6875), linalg.ScalarMul(float32(-1.75), v64))
	require.Equal(t, linalg.NewVec3[float32](-5.5, 3, -6.5), linalg.ScalarMul(int32(-2), v32))
	require.Equal(t, linalg.NewVec3(13.75, -7.5, 16.25), linalg.ScalarMul(uint64(5), v64))

	require.Equal(t, linalg.NewVec3(1.375, -0.75, 1.625), linalg.DivScalar(v64, 2))
	require.Equal(t, linalg.NewVec3[float32](-1.375, 0.75, -1.625), linalg.DivScalar(v32, int8(-2)))

	w := v64
	linalg.MulAssignScalar(&w, uint8(4))
	require.Equal(t, linalg.NewVec3[float64](11, -6, 13), w)
	linalg.DivAssignScalar(&w, int16(4))
	require.Equal(t, v64, w)
}

func TestVec3_String(t *testing.T) {
	require.Equal(t, "(1, -2, 3)", linalg.NewVec3(1, -2, 3).String())
	require.Equal(t, "(0.5, 2, -1.25)", linalg.NewVec3(0.5, 2, -1.25).String())
	require.Equal(t, "(7, 8, 9)", linalg.NewVec3[uint8](7, 8, 9).String())
}
