// SPDX-License-Identifier: MIT

// Package matrix - universal algebra kernels over any Matrix implementation.
//
// Purpose:
//   - Provide the canonical linear-algebra kernels: element-wise Add/Sub,
//     matrix product Mul, Transpose, scalar broadcast ops and the
//     matrix-vector Transform.
//   - Fast-path on *Dense (single flat row-major buffer), fall back to the
//     At/Set interface for foreign implementations.
//   - Perform strict fail-fast validation through the central validators and
//     wrap sentinels with a uniform operation tag.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j, accumulation over k).
//   - No hidden allocations beyond the output; O(r*c) or O(r*c*p) time.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linal/numeric"
	"github.com/katalvlaran/linal/vector"
)

// Operation name constants for unified error wrapping and reducing magic
// strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opTransform = "Transform"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil to avoid wrapping a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ewCombine computes out[i,j] = op(a[i,j], b[i,j]) for identical shapes.
// Single source of truth for Add/Sub; kept unexported as an internal
// micro-kernel per the package design.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewCombine[T numeric.Number](a, b Matrix[T], tag string, op func(x, y T) T) (Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := a.Rows(), a.Cols()
	out, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path: single pass over the flat row-major buffers.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			n := r * c
			for idx := 0; idx < n; idx++ {
				out.data[idx] = op(da.data[idx], db.data[idx])
			}

			return out, nil
		}
	}

	// Generic fallback via At/Set (still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, e := a.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, e)
			}
			bv, e := b.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, e)
			}
			_ = out.Set(i, j, op(av, bv)) // bounds-safe write
		}
	}

	return out, nil
}

// ewScalar computes out[i,j] = op(m[i,j], s).
// Single source of truth for the scalar broadcast kernels.
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewScalar[T numeric.Number](m Matrix[T], s T, tag string, op func(x, y T) T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Dense fast-path.
	if d, ok := m.(*Dense[T]); ok {
		n := r * c
		for idx := 0; idx < n; idx++ {
			out.data[idx] = op(d.data[idx], s)
		}

		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := m.At(i, j)
			if e != nil {
				return nil, matrixErrorf(tag, e)
			}
			_ = out.Set(i, j, op(v, s))
		}
	}

	return out, nil
}

// Add returns the element-wise sum a + b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T numeric.Number](a, b Matrix[T]) (Matrix[T], error) {
	return ewCombine(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference a - b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T numeric.Number](a, b Matrix[T]) (Matrix[T], error) {
	return ewCombine(a, b, opSub, func(x, y T) T { return x - y })
}

// Mul returns the algebraic matrix product a × b.
// The general rectangular rule applies: a.Cols must equal b.Rows and the
// result is a.Rows × b.Cols with out[i,j] = Σ_k a[i,k]*b[k,j].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c*p), Space O(r*p).
func Mul[T numeric.Number](a, b Matrix[T]) (Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, c, p := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense[T](r, p)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Dense fast-path: flat offsets, fixed i→j→k accumulation order.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			var acc T
			for i := 0; i < r; i++ {
				aBase := i * c
				oBase := i * p
				for j := 0; j < p; j++ {
					acc = 0
					for k := 0; k < c; k++ {
						acc += da.data[aBase+k] * db.data[k*p+j]
					}
					out.data[oBase+j] = acc
				}
			}

			return out, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv, acc T
	var e error
	for i := 0; i < r; i++ {
		for j := 0; j < p; j++ {
			acc = 0
			for k := 0; k < c; k++ {
				if av, e = a.At(i, k); e != nil {
					return nil, matrixErrorf(opMul, e)
				}
				if bv, e = b.At(k, j); e != nil {
					return nil, matrixErrorf(opMul, e)
				}
				acc += av * bv
			}
			_ = out.Set(i, j, acc)
		}
	}

	return out, nil
}

// Transpose returns the Cols×Rows matrix with out[j,i] = m[i,j].
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose[T numeric.Number](m Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense[T](c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Dense fast-path: read row-major, scatter column-major.
	if d, ok := m.(*Dense[T]); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[j*r+i] = d.data[base+j]
			}
		}

		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := m.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opTranspose, e)
			}
			_ = out.Set(j, i, v)
		}
	}

	return out, nil
}

// AddScalar returns a copy of m with s added to every element.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func AddScalar[T numeric.Number](m Matrix[T], s T) (Matrix[T], error) {
	return ewScalar(m, s, opAddScalar, func(x, y T) T { return x + y })
}

// SubScalar returns a copy of m with s subtracted from every element.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func SubScalar[T numeric.Number](m Matrix[T], s T) (Matrix[T], error) {
	return ewScalar(m, s, opSubScalar, func(x, y T) T { return x - y })
}

// Scale returns a copy of m with every element multiplied by s.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale[T numeric.Number](m Matrix[T], s T) (Matrix[T], error) {
	return ewScalar(m, s, opScale, func(x, y T) T { return x * y })
}

// DivScalar returns a copy of m with every element divided by s.
// Division by zero follows the native semantics of T.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func DivScalar[T numeric.Number](m Matrix[T], s T) (Matrix[T], error) {
	return ewScalar(m, s, opDivScalar, func(x, y T) T { return x / y })
}

// Transform multiplies m by the column vector v: out[i] = Σ_j m[i,j]*v[j].
// Requires m.Cols == v.Dim(); the result has length m.Rows.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func Transform[T numeric.Number](m Matrix[T], v vector.Vector[T]) (vector.Vector[T], error) {
	if err := ValidateTransformCompatible(m, v); err != nil {
		return nil, matrixErrorf(opTransform, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make(vector.Vector[T], r)

	// Dense fast-path: each output component is a row·vector dot product.
	if d, ok := m.(*Dense[T]); ok {
		var acc T
		for i := 0; i < r; i++ {
			base := i * c
			acc = 0
			for j := 0; j < c; j++ {
				acc += d.data[base+j] * v[j]
			}
			out[i] = acc
		}

		return out, nil
	}

	// Generic fallback.
	var mv, acc T
	var e error
	for i := 0; i < r; i++ {
		acc = 0
		for j := 0; j < c; j++ {
			if mv, e = m.At(i, j); e != nil {
				return nil, matrixErrorf(opTransform, e)
			}
			acc += mv * v[j]
		}
		out[i] = acc
	}

	return out, nil
}

// Equal reports element-wise structural equality. Matrices of different
// shapes are never equal; two nil references are considered equal.
// Complexity: O(r*c).
func Equal[T numeric.Number](a, b Matrix[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Dense fast-path: compare the flat buffers directly.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	// Generic fallback; shape is already validated, so At cannot fail.
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}
