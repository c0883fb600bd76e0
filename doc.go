// Package linal is a small, dependency-free linear-algebra toolkit for
// fixed-small-dimension vectors and matrices over any signed numeric type.
//
// 🚀 What is linal?
//
//	A compact, value-semantics library that brings together:
//		• Generic vectors: element-wise & scalar arithmetic, in-place variants
//		• Geometry helpers: dot, cross, magnitude, normalize, lerp, reflect, clamp
//		• Generic matrices: row-major Dense storage with safe At/Set accessors
//		• Linear algebra: multiply, transpose, scalar ops, matrix-vector transform
//
// ✨ Why choose linal?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Generic – one implementation for int, float32, float64 and friends
//
// Everything is organized under three subpackages:
//
//	numeric/ — shared Number constraint & tiny generic helpers
//	vector/  — Vector[T] with arithmetic and geometric utilities
//	matrix/  — Matrix[T] interface + Dense[T] with algebra kernels
//
// Dimensions are runtime-checked invariants: every public entry point
// validates shapes and reports ErrDimensionMismatch / ErrOutOfRange via
// errors.Is-matchable sentinels instead of panicking. The canonical
// convenience constructors cover the common 2/3/4-dimensional cases:
//
//	v := vector.Vec3(1.0, 2.0, 3.0)
//	m, _ := matrix.Identity[float64](3)
//	w, _ := matrix.Transform(m, v) // w == v
//
//	go get github.com/katalvlaran/linal
package linal
