// Package vector_test contains unit tests for the geometric utilities.
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linal/vector"
)

// floatTol is the absolute tolerance for floating-point geometry checks.
const floatTol = 1e-9

func TestDot(t *testing.T) {
	a := vector.Vec3(1.0, 2.0, 3.0)
	b := vector.Vec3(4.0, -5.0, 6.0)

	got, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got, "1*4 + 2*(-5) + 3*6")
}

func TestDotCommutative(t *testing.T) {
	// a·b == b·a for all same-dimension a, b.
	a := vector.Vec4(1.5, -2.0, 3.25, 0.5)
	b := vector.Vec4(-1.0, 4.0, 2.0, 8.0)

	ab, err := a.Dot(b)
	require.NoError(t, err)
	ba, err := b.Dot(a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba, "dot product must be commutative")
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 5.0, vector.Vec2(3.0, 4.0).Magnitude(), "3-4-5 triangle")
	assert.Equal(t, 0.0, vector.Vec3(0.0, 0.0, 0.0).Magnitude(), "zero vector")
	// Integer instantiation: floored root.
	assert.Equal(t, 3, vector.Vec3(1, 2, 2).Magnitude(), "sqrt(9) == 3 exactly")
	assert.Equal(t, 3, vector.Vec2(3, 1).Magnitude(), "sqrt(10) floors to 3")
}

func TestNormalized(t *testing.T) {
	v := vector.Vec3(3.0, 0.0, 4.0)

	unit := v.Normalized()
	assert.InDelta(t, 1.0, unit.Magnitude(), floatTol, "normalized magnitude must be ~1")
	assert.True(t, v.Equal(vector.Vec3(3.0, 0.0, 4.0)), "Normalized is pure")

	// Normalizing the zero vector returns the zero vector unchanged.
	zero := vector.Vec3(0.0, 0.0, 0.0)
	assert.True(t, zero.Normalized().Equal(zero), "division-by-zero guard")
}

func TestNormalizeInPlace(t *testing.T) {
	v := vector.Vec2(0.0, 5.0)
	ret := v.Normalize()
	assert.True(t, v.Equal(vector.Vec2(0.0, 1.0)), "receiver must be normalized in place")
	// Returned value aliases the receiver.
	ret.ScaleInPlace(2)
	assert.True(t, v.Equal(vector.Vec2(0.0, 2.0)))

	zero := vector.Vec2(0.0, 0.0)
	zero.Normalize()
	assert.True(t, zero.Equal(vector.Vec2(0.0, 0.0)), "zero vector stays zero")
}

func TestNormalizedMagnitudeProperty(t *testing.T) {
	for _, v := range []vector.Vector[float64]{
		vector.Vec2(1.0, 1.0),
		vector.Vec3(-3.0, 2.5, 0.1),
		vector.Vec4(10.0, -20.0, 30.0, -40.0),
	} {
		assert.InDelta(t, 1.0, v.Normalized().Magnitude(), floatTol, "non-zero %v", v)
	}
}

func TestDistance(t *testing.T) {
	a := vector.Vec2(1.0, 1.0)
	b := vector.Vec2(4.0, 5.0)

	d, err := vector.Distance(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	// Distance is symmetric.
	dRev, err := vector.Distance(b, a)
	require.NoError(t, err)
	assert.Equal(t, d, dRev)

	_, err = vector.Distance(a, vector.Vec3(0.0, 0.0, 0.0))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestCrossBasis(t *testing.T) {
	// (1,0,0) × (0,1,0) == (0,0,1): right-handed basis.
	x := vector.Vec3(1.0, 0.0, 0.0)
	y := vector.Vec3(0.0, 1.0, 0.0)

	z, err := x.Cross(y)
	require.NoError(t, err)
	assert.True(t, z.Equal(vector.Vec3(0.0, 0.0, 1.0)))

	// Anticommutative: y × x == -(x × y).
	zRev, err := y.Cross(x)
	require.NoError(t, err)
	assert.True(t, zRev.Equal(z.Neg()))
}

func TestCrossOrthogonality(t *testing.T) {
	a := vector.Vec3(2.0, -1.0, 3.0)
	b := vector.Vec3(0.5, 4.0, -2.0)

	c, err := a.Cross(b)
	require.NoError(t, err)
	// The cross product is orthogonal to both operands.
	da, err := c.Dot(a)
	require.NoError(t, err)
	db, err := c.Dot(b)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, da, floatTol)
	assert.InDelta(t, 0.0, db, floatTol)
}

func TestCrossDimensionGuard(t *testing.T) {
	_, err := vector.Vec2(1.0, 2.0).Cross(vector.Vec2(3.0, 4.0))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch, "cross is 3-D only")

	_, err = vector.Vec3(1.0, 2.0, 3.0).Cross(vector.Vec4(1.0, 2.0, 3.0, 4.0))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestClamp(t *testing.T) {
	v := vector.Vec4(-5.0, 0.5, 2.0, 99.0)

	got := v.Clamp(0.0, 1.0)
	assert.True(t, got.Equal(vector.Vec4(0.0, 0.5, 1.0, 1.0)))
	assert.True(t, v.Equal(vector.Vec4(-5.0, 0.5, 2.0, 99.0)), "Clamp is pure")

	// Swapped bounds are normalized.
	swapped := v.Clamp(1.0, 0.0)
	assert.True(t, swapped.Equal(got))
}

func TestLerpEndpoints(t *testing.T) {
	a := vector.Vec3(1.0, 2.0, 3.0)
	b := vector.Vec3(5.0, 6.0, 7.0)

	at0, err := vector.Lerp(a, b, 0.0)
	require.NoError(t, err)
	assert.True(t, at0.Equal(a), "lerp(a, b, 0) == a")

	at1, err := vector.Lerp(a, b, 1.0)
	require.NoError(t, err)
	assert.True(t, at1.Equal(b), "lerp(a, b, 1) == b")

	mid, err := vector.Lerp(a, b, 0.5)
	require.NoError(t, err)
	assert.True(t, mid.Equal(vector.Vec3(3.0, 4.0, 5.0)))

	_, err = vector.Lerp(a, vector.Vec2(0.0, 0.0), 0.5)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestReflect(t *testing.T) {
	// A falling vector reflected off the ground plane (normal pointing up).
	v := vector.Vec3(1.0, -1.0, 0.0)
	n := vector.Vec3(0.0, 1.0, 0.0)

	r, err := v.Reflect(n)
	require.NoError(t, err)
	assert.True(t, r.Equal(vector.Vec3(1.0, 1.0, 0.0)))

	// Reflecting twice about the same unit normal restores the input.
	rr, err := r.Reflect(n)
	require.NoError(t, err)
	assert.True(t, rr.Equal(v))

	_, err = v.Reflect(vector.Vec2(0.0, 1.0))
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}
