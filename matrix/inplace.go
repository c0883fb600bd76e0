// SPDX-License-Identifier: MIT

// Package matrix - in-place Dense variants of the algebra kernels.
//
// Purpose:
//   - Mirror every pure kernel with a receiver-mutating method so callers
//     can avoid the output allocation in hot loops and chain scalar ops.
//   - Mutate ONLY the receiver; operands are never touched. In-place
//     methods are not safe for concurrent use on the same instance.

package matrix

// combineInPlace overwrites m[i,j] with op(m[i,j], other[i,j]).
// Shared implementation for AddInPlace/SubInPlace.
// Time: O(r*c). Space: O(1) on the Dense fast path.
func (m *Dense[T]) combineInPlace(other Matrix[T], tag string, op func(x, y T) T) error {
	if err := ValidateBinarySameShape[T](m, other); err != nil {
		return matrixErrorf(tag, err)
	}

	// Dense fast-path: single pass over both flat buffers.
	if d, ok := other.(*Dense[T]); ok {
		for idx := range m.data {
			m.data[idx] = op(m.data[idx], d.data[idx])
		}

		return nil
	}

	// Generic fallback; shape is already validated, so At cannot fail.
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			ov, _ := other.At(i, j)
			m.data[base+j] = op(m.data[base+j], ov)
		}
	}

	return nil
}

// AddInPlace adds other into the receiver element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense[T]) AddInPlace(other Matrix[T]) error {
	return m.combineInPlace(other, opAdd, func(x, y T) T { return x + y })
}

// SubInPlace subtracts other from the receiver element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func (m *Dense[T]) SubInPlace(other Matrix[T]) error {
	return m.combineInPlace(other, opSub, func(x, y T) T { return x - y })
}

// MulInPlace replaces the receiver with the product m × other.
// The receiver is reshaped to m.Rows × other.Cols; the product is computed
// into a fresh buffer first, so the operands are read consistently.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c*p).
func (m *Dense[T]) MulInPlace(other Matrix[T]) error {
	prod, err := Mul[T](m, other)
	if err != nil {
		return err
	}
	res := prod.(*Dense[T]) // Mul always returns *Dense
	m.r, m.c, m.data = res.r, res.c, res.data

	return nil
}

// scalarInPlace overwrites every element with op(element, s) and returns
// the receiver for chaining. No error path: scalar broadcasts carry no
// shape to violate.
// Time: O(r*c). Space: O(1).
func (m *Dense[T]) scalarInPlace(s T, op func(x, y T) T) *Dense[T] {
	for idx := range m.data {
		m.data[idx] = op(m.data[idx], s)
	}

	return m
}

// AddScalarInPlace adds s to every element, returns the receiver.
// Complexity: O(r*c).
func (m *Dense[T]) AddScalarInPlace(s T) *Dense[T] {
	return m.scalarInPlace(s, func(x, y T) T { return x + y })
}

// SubScalarInPlace subtracts s from every element, returns the receiver.
// Complexity: O(r*c).
func (m *Dense[T]) SubScalarInPlace(s T) *Dense[T] {
	return m.scalarInPlace(s, func(x, y T) T { return x - y })
}

// ScaleInPlace multiplies every element by s, returns the receiver.
// Complexity: O(r*c).
func (m *Dense[T]) ScaleInPlace(s T) *Dense[T] {
	return m.scalarInPlace(s, func(x, y T) T { return x * y })
}

// DivScalarInPlace divides every element by s, returns the receiver.
// Division by zero follows the native semantics of T.
// Complexity: O(r*c).
func (m *Dense[T]) DivScalarInPlace(s T) *Dense[T] {
	return m.scalarInPlace(s, func(x, y T) T { return x / y })
}
