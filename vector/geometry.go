// SPDX-License-Identifier: MIT

// Package vector - geometric utilities over Vector[T].
//
// Purpose:
//   - Provide the classic geometry kernel set: dot product, magnitude,
//     normalization, distance, cross product, clamp, lerp and reflection.
//   - Keep every kernel pure except Normalize, the single documented
//     in-place variant.
//
// Determinism & Performance:
//   - Fixed ascending loops, no allocations beyond the result vector.
//   - Magnitude goes through numeric.Sqrt (float64 path); integer
//     instantiations receive the floored root.

package vector

import "github.com/katalvlaran/linal/numeric"

// Operation tags for unified error wrapping.
const (
	opDot      = "Dot"
	opCross    = "Cross"
	opReflect  = "Reflect"
	opDistance = "Distance"
	opLerp     = "Lerp"
)

// reflectGain is the factor in the reflection formula v - 2*(v·n)*n.
const reflectGain = 2

// Dot returns the sum of element-wise products Σ v[i]*w[i].
//
// Errors:
//   - ErrDimensionMismatch when dimensions differ.
//
// Complexity: O(n).
func (v Vector[T]) Dot(w Vector[T]) (T, error) {
	var acc T
	if err := ValidateSameDim(v, w); err != nil {
		return acc, vecErrorf(opDot, err)
	}
	for i := range v { // fixed ascending accumulation order
		acc += v[i] * w[i]
	}

	return acc, nil
}

// Magnitude returns the Euclidean length sqrt(v·v).
// Self-dot never fails the dimension guard, so there is no error path.
// Complexity: O(n).
func (v Vector[T]) Magnitude() T {
	var acc T
	for i := range v {
		acc += v[i] * v[i]
	}

	return numeric.Sqrt(acc)
}

// Normalized returns v scaled to unit length. When the magnitude is exactly
// zero the vector is returned unchanged (as an independent copy) — the
// division-by-zero guard is a policy choice, not an error.
// Complexity: O(n).
func (v Vector[T]) Normalized() Vector[T] {
	mag := v.Magnitude()
	if mag == 0 {
		return v.Clone() // zero vector stays zero; avoid Inf/NaN
	}

	return v.DivScalar(mag)
}

// Normalize scales the receiver to unit length in place and returns it for
// chaining. Same zero-magnitude policy as Normalized.
// Complexity: O(n).
func (v Vector[T]) Normalize() Vector[T] {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}

	return v.DivScalarInPlace(mag)
}

// Distance returns the Euclidean distance |a - b|.
//
// Errors:
//   - ErrDimensionMismatch when dimensions differ.
//
// Complexity: O(n).
func Distance[T numeric.Number](a, b Vector[T]) (T, error) {
	diff, err := a.Sub(b)
	if err != nil {
		var zero T
		return zero, vecErrorf(opDistance, ErrDimensionMismatch)
	}

	return diff.Magnitude(), nil
}

// Cross returns the 3-D cross product v × w:
//
//	out[0] = v[1]*w[2] - v[2]*w[1]
//	out[1] = v[2]*w[0] - v[0]*w[2]
//	out[2] = v[0]*w[1] - v[1]*w[0]
//
// The operation is defined only for 3-dimensional operands; any other
// shape fails fast.
//
// Errors:
//   - ErrDimensionMismatch unless both operands have dimension 3.
//
// Complexity: O(1).
func (v Vector[T]) Cross(w Vector[T]) (Vector[T], error) {
	if err := ValidateCross(v, w); err != nil {
		return nil, vecErrorf(opCross, err)
	}

	return Vector[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}, nil
}

// Clamp returns a copy of v with each element confined to [lo, hi].
// Bounds are normalized first, so callers may pass them in either order.
// Complexity: O(n).
func (v Vector[T]) Clamp(lo, hi T) Vector[T] {
	if lo > hi {
		lo, hi = hi, lo // normalize bound order
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = numeric.Clamp(v[i], lo, hi)
	}

	return out
}

// Lerp returns the component-wise linear interpolation
// start + (end - start) * t. t is unclamped: values outside [0,1]
// extrapolate along the segment.
//
// Errors:
//   - ErrDimensionMismatch when dimensions differ.
//
// Complexity: O(n).
func Lerp[T numeric.Number](start, end Vector[T], t T) (Vector[T], error) {
	if err := ValidateSameDim(start, end); err != nil {
		return nil, vecErrorf(opLerp, err)
	}
	out := make(Vector[T], len(start))
	for i := range start {
		out[i] = start[i] + (end[i]-start[i])*t
	}

	return out, nil
}

// Reflect returns v reflected about the plane with the given normal:
// v - normal * (2 * v·normal). Geometric correctness requires a unit
// normal; that precondition is the caller's responsibility and is not
// enforced here.
//
// Errors:
//   - ErrDimensionMismatch when dimensions differ.
//
// Complexity: O(n).
func (v Vector[T]) Reflect(normal Vector[T]) (Vector[T], error) {
	d, err := v.Dot(normal)
	if err != nil {
		return nil, vecErrorf(opReflect, ErrDimensionMismatch)
	}
	out := make(Vector[T], len(v))
	gain := reflectGain * d
	for i := range v {
		out[i] = v[i] - normal[i]*gain
	}

	return out, nil
}
