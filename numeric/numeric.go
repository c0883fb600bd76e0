// SPDX-License-Identifier: MIT

// Package numeric: shared constraint + scalar micro-helpers.
// This file intentionally contains ONLY the Number type set and pure scalar
// functions. Container types and their validators live in vector/ and
// matrix/ per the module conventions.

package numeric

import "math"

// Number is the type set accepted by every linal container.
// Signed integers and floats only: the container contracts include unary
// negation and multiplication by -1, which unsigned types cannot express.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Abs returns |x|.
// Complexity: O(1).
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Min returns the smaller of x and y.
// Complexity: O(1).
func Min[T Number](x, y T) T {
	if x < y {
		return x
	}

	return y
}

// Max returns the larger of x and y.
// Complexity: O(1).
func Max[T Number](x, y T) T {
	if x > y {
		return x
	}

	return y
}

// Clamp confines x into [lo, hi]. Bounds are normalized first, so callers
// may pass them in either order.
// Complexity: O(1).
func Clamp[T Number](x, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo // normalize bound order
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// Sqrt returns the square root of x computed through float64 and converted
// back to T. Integer instantiations therefore receive the floored root;
// negative inputs propagate the NaN conversion semantics of the target type.
// Complexity: O(1).
func Sqrt[T Number](x T) T {
	return T(math.Sqrt(float64(x)))
}
