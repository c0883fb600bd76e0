// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide a single, canonical source of truth for dimension checks.
//   - Keep kernels minimal by delegating shape guards here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package vector

import "github.com/katalvlaran/linal/numeric"

// crossDim is the only dimension for which the cross product is defined.
const crossDim = 3

// ValidateSameDim ensures vectors a and b have equal dimension.
//
// Inputs: two Vector values.
// Returns: nil or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameDim[T numeric.Number](a, b Vector[T]) error {
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateCross ensures both operands are 3-dimensional, the only shape for
// which the cross product is defined.
//
// Returns: nil or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateCross[T numeric.Number](a, b Vector[T]) error {
	if len(a) != crossDim || len(b) != crossDim {
		return ErrDimensionMismatch
	}

	return nil
}

// validateIndex bounds-checks i against the vector dimension.
// Kept unexported: public accessors (At/Set) wrap the sentinel with context.
// Complexity: O(1).
func validateIndex[T numeric.Number](v Vector[T], i int) error {
	if i < 0 || i >= len(v) {
		return ErrOutOfRange
	}

	return nil
}
