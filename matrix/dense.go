// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense/FromRows/Identity: O(r*c) init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linal/numeric"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for FromRows
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "[ "
	_fmtRowClose = " ]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite
// indices. Keeps stable, human-friendly messages while preserving the
// sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
type Dense[T numeric.Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer (make() zero-fills
//     deterministically; zero is the additive identity).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T numeric.Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{
		r:    rows,
		c:    cols,
		data: make([]T, rows*cols),
	}, nil
}

// FromRows builds a Dense from a nested row literal, validating the shape
// strictly: the outer slice must be non-empty and every row must have the
// same non-zero length. A ragged or short literal is a reported error, never
// an out-of-bounds read.
//
// Implementation:
//   - Stage 1: validate outer length and first-row length.
//   - Stage 2: validate every row length against the first.
//   - Stage 3: copy row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or rows[0] is empty.
//   - ErrDimensionMismatch when any row length differs from rows[0].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T numeric.Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d: %w", ctxFromRows, i, ErrDimensionMismatch)
		}
	}

	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		copy(m.data[i*cols:(i+1)*cols], rows[i]) // row-major fill
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Identity[T numeric.Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1 // diagonal ones, everything else stays zero
	}

	return m, nil
}

// Mat2 builds a 2×2 matrix from fixed-size row arrays. The array arguments
// make the shape a compile-time property, so there is no error path.
// Complexity: O(1).
func Mat2[T numeric.Number](r0, r1 [2]T) *Dense[T] {
	return &Dense[T]{r: 2, c: 2, data: []T{r0[0], r0[1], r1[0], r1[1]}}
}

// Mat3 builds a 3×3 matrix from fixed-size row arrays.
// Complexity: O(1).
func Mat3[T numeric.Number](r0, r1, r2 [3]T) *Dense[T] {
	return &Dense[T]{r: 3, c: 3, data: []T{
		r0[0], r0[1], r0[2],
		r1[0], r1[1], r1[2],
		r2[0], r2[1], r2[2],
	}}
}

// Mat4 builds a 4×4 matrix from fixed-size row arrays.
// Complexity: O(1).
func Mat4[T numeric.Number](r0, r1, r2, r3 [4]T) *Dense[T] {
	return &Dense[T]{r: 4, c: 4, data: []T{
		r0[0], r0[1], r0[2], r0[3],
		r1[0], r1[1], r1[2], r1[3],
		r2[0], r2[1], r2[2], r2[3],
		r3[0], r3[1], r3[2], r3[3],
	}}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods (At/Set) wrap with coordinates
// and method name. Kept unexported to avoid accidental panics at the
// public surface.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel wrapped with context.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns an independent copy of row i.
// The copy keeps two-level reads (m.Row(i)[j]) safe without exposing the
// internal buffer.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows).
//
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String renders one "[ v0, v1, ..., vC-1 ]" line per row, each terminated
// by a newline. Diagnostic only; the format is not a stable data contract.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Print writes the String form to standard output. Every row already ends
// with a newline, so no extra terminator is added.
// Complexity: O(r*c).
func (m *Dense[T]) Print() {
	fmt.Print(m.String())
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v);
// iteration stops early when f returns false. Read-only with respect to the
// callback, no allocations, deterministic i→j order.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, deterministic
// row-major order, no extra allocations.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
