// SPDX-License-Identifier: MIT

// Package vector - generic fixed-dimension tuple & arithmetic kernels.
//
// Purpose:
//   - Define Vector[T] as a thin named slice whose length IS the dimension.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking; binary operations validate dimensions first.
//   - Route every element-wise loop through two private kernels (apply,
//     applyScalar) so pure and in-place variants share one implementation.
//
// Complexity quicksheet:
//   - New/NewFrom/Clone: O(n); At/Set/Dim: O(1); all arithmetic: O(n).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linal/numeric"
)

// ---------- error context tags ----------

const (
	opAt  = "At"  // method tag used in error wrappers
	opSet = "Set" // method tag used in error wrappers
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
	opDiv = "Div"
)

// ---------- formatting literals ----------

const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// vecErrorf wraps a sentinel with a uniform operation context.
// Use only when err != nil; the %w verb preserves errors.Is matching.
// Complexity: O(1).
func vecErrorf(op string, err error) error {
	return fmt.Errorf("Vector.%s: %w", op, err)
}

// Vector is an ordered fixed-dimension tuple of numeric values.
// The dimension is fixed at construction (len never changes through this
// API). The zero-dimension nil Vector is inert: every binary operation on
// it fails with ErrDimensionMismatch against a non-empty operand.
type Vector[T numeric.Number] []T

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector[float64]{}

// New returns a zero-filled vector of the given dimension.
//
// Inputs:
//   - dim: positive dimension.
//
// Returns:
//   - Vector[T]: newly allocated, all elements zero.
//
// Errors:
//   - ErrInvalidDimension when dim <= 0.
//
// Complexity: O(dim).
func New[T numeric.Number](dim int) (Vector[T], error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}

	// make() zero-fills deterministically; zero value is the additive identity.
	return make(Vector[T], dim), nil
}

// NewFrom returns a vector of the given dimension initialized from vals.
// Fewer values than dim leave the remaining elements zero; values beyond
// dim are ignored. Both fill policies are part of the construction
// contract, not errors.
//
// Errors:
//   - ErrInvalidDimension when dim <= 0.
//
// Complexity: O(dim).
func NewFrom[T numeric.Number](dim int, vals ...T) (Vector[T], error) {
	v, err := New[T](dim)
	if err != nil {
		return nil, err
	}
	// copy() stops at min(dim, len(vals)): short input pads with zeros,
	// long input truncates.
	copy(v, vals)

	return v, nil
}

// Vec2 builds a 2-dimensional vector. Canonical fixed-arity constructor.
// Complexity: O(1).
func Vec2[T numeric.Number](x, y T) Vector[T] { return Vector[T]{x, y} }

// Vec3 builds a 3-dimensional vector. Canonical fixed-arity constructor.
// Complexity: O(1).
func Vec3[T numeric.Number](x, y, z T) Vector[T] { return Vector[T]{x, y, z} }

// Vec4 builds a 4-dimensional vector. Canonical fixed-arity constructor.
// Complexity: O(1).
func Vec4[T numeric.Number](x, y, z, w T) Vector[T] { return Vector[T]{x, y, z, w} }

// Dim returns the vector dimension. Complexity: O(1).
func (v Vector[T]) Dim() int { return len(v) }

// At returns the element at index i or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel instead.
// Complexity: O(1).
func (v Vector[T]) At(i int) (T, error) {
	if err := validateIndex(v, i); err != nil {
		var zero T
		return zero, vecErrorf(opAt, err)
	}

	return v[i], nil
}

// Set stores val at index i or returns ErrOutOfRange.
// Complexity: O(1).
func (v Vector[T]) Set(i int, val T) error {
	if err := validateIndex(v, i); err != nil {
		return vecErrorf(opSet, err)
	}
	v[i] = val

	return nil
}

// Clone returns an independent deep copy of v.
// Complexity: O(n).
func (v Vector[T]) Clone() Vector[T] {
	cp := make(Vector[T], len(v))
	copy(cp, v)

	return cp
}

// Equal reports element-wise structural equality. Vectors of different
// dimensions are never equal.
// Complexity: O(n).
func (v Vector[T]) Equal(w Vector[T]) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}

// ---------- element-wise kernels ----------

// apply returns a new vector with out[i] = op(v[i], w[i]).
// Single source of truth for all pure element-wise operations.
// Complexity: O(n).
func (v Vector[T]) apply(w Vector[T], tag string, op func(a, b T) T) (Vector[T], error) {
	if err := ValidateSameDim(v, w); err != nil {
		return nil, vecErrorf(tag, err)
	}
	out := make(Vector[T], len(v))
	for i := range v { // fixed ascending order
		out[i] = op(v[i], w[i])
	}

	return out, nil
}

// applyInPlace overwrites v[i] with op(v[i], w[i]) and returns the receiver
// for chaining. Mutates only the receiver.
// Complexity: O(n).
func (v Vector[T]) applyInPlace(w Vector[T], tag string, op func(a, b T) T) (Vector[T], error) {
	if err := ValidateSameDim(v, w); err != nil {
		return nil, vecErrorf(tag, err)
	}
	for i := range v {
		v[i] = op(v[i], w[i])
	}

	return v, nil
}

// applyScalar returns a new vector with out[i] = op(v[i], s).
// Scalar operations carry no shape to violate, hence no error path.
// Complexity: O(n).
func (v Vector[T]) applyScalar(s T, op func(a, b T) T) Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = op(v[i], s)
	}

	return out
}

// applyScalarInPlace overwrites v[i] with op(v[i], s), returns the receiver.
// Complexity: O(n).
func (v Vector[T]) applyScalarInPlace(s T, op func(a, b T) T) Vector[T] {
	for i := range v {
		v[i] = op(v[i], s)
	}

	return v
}

// ---------- element-wise vector operations ----------

// Add returns v + w element-wise.
// Errors: ErrDimensionMismatch. Complexity: O(n).
func (v Vector[T]) Add(w Vector[T]) (Vector[T], error) {
	return v.apply(w, opAdd, func(a, b T) T { return a + b })
}

// Sub returns v - w element-wise.
// Errors: ErrDimensionMismatch. Complexity: O(n).
func (v Vector[T]) Sub(w Vector[T]) (Vector[T], error) {
	return v.apply(w, opSub, func(a, b T) T { return a - b })
}

// Mul returns the element-wise (Hadamard) product v ∘ w.
// Errors: ErrDimensionMismatch. Complexity: O(n).
func (v Vector[T]) Mul(w Vector[T]) (Vector[T], error) {
	return v.apply(w, opMul, func(a, b T) T { return a * b })
}

// Div returns the element-wise quotient v / w. Division by a zero element
// follows the native semantics of T (integer division panics, floats yield
// ±Inf/NaN); the shape contract is the only guarded condition.
// Errors: ErrDimensionMismatch. Complexity: O(n).
func (v Vector[T]) Div(w Vector[T]) (Vector[T], error) {
	return v.apply(w, opDiv, func(a, b T) T { return a / b })
}

// AddInPlace adds w into the receiver and returns it for chaining.
// Errors: ErrDimensionMismatch. Complexity: O(n).
func (v Vector[T]) AddInPlace(w Vector[T]) (Vector[T], error) {
	return v.applyInPlace(w, opAdd, func(a, b T) T { return a + b })
}

// SubInPlace subtracts w from the receiver and returns it for chaining.
// Errors: ErrDimensionMismatch. Complexity: O(n).
func (v Vector[T]) SubInPlace(w Vector[T]) (Vector[T], error) {
	return v.applyInPlace(w, opSub, func(a, b T) T { return a - b })
}

// MulInPlace multiplies the receiver element-wise by w and returns it.
// Errors: ErrDimensionMismatch. Complexity: O(n).
func (v Vector[T]) MulInPlace(w Vector[T]) (Vector[T], error) {
	return v.applyInPlace(w, opMul, func(a, b T) T { return a * b })
}

// DivInPlace divides the receiver element-wise by w and returns it.
// Errors: ErrDimensionMismatch. Complexity: O(n).
func (v Vector[T]) DivInPlace(w Vector[T]) (Vector[T], error) {
	return v.applyInPlace(w, opDiv, func(a, b T) T { return a / b })
}

// ---------- scalar operations ----------

// AddScalar returns a copy of v with s added to every element.
// Complexity: O(n).
func (v Vector[T]) AddScalar(s T) Vector[T] {
	return v.applyScalar(s, func(a, b T) T { return a + b })
}

// SubScalar returns a copy of v with s subtracted from every element.
// Complexity: O(n).
func (v Vector[T]) SubScalar(s T) Vector[T] {
	return v.applyScalar(s, func(a, b T) T { return a - b })
}

// Scale returns a copy of v with every element multiplied by s.
// Complexity: O(n).
func (v Vector[T]) Scale(s T) Vector[T] {
	return v.applyScalar(s, func(a, b T) T { return a * b })
}

// DivScalar returns a copy of v with every element divided by s.
// Division by zero follows the native semantics of T.
// Complexity: O(n).
func (v Vector[T]) DivScalar(s T) Vector[T] {
	return v.applyScalar(s, func(a, b T) T { return a / b })
}

// AddScalarInPlace adds s to every element of the receiver, returns it.
// Complexity: O(n).
func (v Vector[T]) AddScalarInPlace(s T) Vector[T] {
	return v.applyScalarInPlace(s, func(a, b T) T { return a + b })
}

// SubScalarInPlace subtracts s from every element of the receiver, returns it.
// Complexity: O(n).
func (v Vector[T]) SubScalarInPlace(s T) Vector[T] {
	return v.applyScalarInPlace(s, func(a, b T) T { return a - b })
}

// ScaleInPlace multiplies every element of the receiver by s, returns it.
// Complexity: O(n).
func (v Vector[T]) ScaleInPlace(s T) Vector[T] {
	return v.applyScalarInPlace(s, func(a, b T) T { return a * b })
}

// DivScalarInPlace divides every element of the receiver by s, returns it.
// Complexity: O(n).
func (v Vector[T]) DivScalarInPlace(s T) Vector[T] {
	return v.applyScalarInPlace(s, func(a, b T) T { return a / b })
}

// Neg returns -v, i.e. v scaled by -1.
// Complexity: O(n).
func (v Vector[T]) Neg() Vector[T] {
	return v.Scale(-1)
}

// ---------- diagnostics ----------

// String renders "(v0, v1, ..., vN-1)". Diagnostic only; the format is not
// a stable data contract.
// Complexity: O(n).
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := range v { // fixed ascending order
		fmt.Fprintf(&b, "%v", v[i])
		if i+1 < len(v) {
			b.WriteString(_fmtSep)
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Print writes the String form plus a trailing newline to standard output.
// Complexity: O(n).
func (v Vector[T]) Print() {
	fmt.Println(v.String())
}
