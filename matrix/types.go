// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix surface.
// This file intentionally contains ONLY the interface; the concrete Dense
// implementation lives in dense.go and the algebra kernels in linalg.go per
// the module conventions.
package matrix

import "github.com/katalvlaran/linal/numeric"

// Matrix represents a two-dimensional mutable grid of numeric values.
// Kernels accept any implementation and fast-path on *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T numeric.Number] interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
