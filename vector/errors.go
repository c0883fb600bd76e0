// SPDX-License-Identifier: MIT
// Package vector: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// vector package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimension is returned when a requested dimension is invalid
	// (dim <= 0). Constructors must validate before allocation.
	ErrInvalidDimension = errors.New("vector: dimension must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub/Dot on vectors of different length, or Cross
	// on operands that are not both 3-dimensional.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates that an element index is outside [0, Dim).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("vector: index out of range")
)
