// Package vector implements a generic fixed-dimension numeric vector with
// element-wise arithmetic, scalar arithmetic and geometric utilities.
//
// The vector package provides:
//
//   - Vector[T]: an ordered tuple of numeric.Number values whose dimension
//     is fixed at construction and validated at every public entry point.
//   - Element-wise Add/Sub/Mul/Div and scalar AddScalar/SubScalar/Scale/
//     DivScalar, each with an ...InPlace variant that mutates the receiver
//     and returns it for chaining.
//   - Geometry helpers: Dot, Magnitude, Normalized/Normalize, Distance,
//     Cross (3-D only), Clamp, Lerp and Reflect.
//
// Shape violations never panic: operations return sentinel errors
// (ErrDimensionMismatch, ErrOutOfRange, ErrInvalidDimension) that callers
// match with errors.Is. Values are plain Go values — copy freely, but
// serialize concurrent mutation of a single instance yourself.
//
// The canonical fixed-dimension constructors are Vec2, Vec3 and Vec4.
//
// See the examples in this package for usage patterns.
package vector
