// Package matrix implements a generic fixed-size numeric matrix with
// element-wise and scalar arithmetic, multiplication, transposition and
// matrix-vector transformation.
//
// The matrix package provides:
//
//   - Matrix[T]: the public read/write surface (Rows, Cols, At, Set, Clone).
//   - Dense[T]: the concrete row-major implementation backed by a single
//     flat buffer with the explicit index formula i*cols + j.
//   - Free-function kernels (Add, Sub, Mul, Transpose, Scale, Transform and
//     friends) that fast-path on *Dense and fall back to the interface.
//   - In-place Dense methods mirroring every pure kernel.
//
// Shape rules follow general linear algebra: Add/Sub need identical shapes,
// Mul(a, b) needs a.Cols == b.Rows and yields a.Rows × b.Cols, and
// Transform(m, v) needs m.Cols == v.Dim() and yields a vector of length
// m.Rows. Violations surface as ErrDimensionMismatch via errors.Is; public
// accessors report ErrOutOfRange instead of panicking.
//
// The canonical fixed-size constructors are Mat2, Mat3 and Mat4.
//
// See the examples in this package and vector for usage patterns.
package matrix
