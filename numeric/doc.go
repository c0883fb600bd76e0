// Package numeric declares the shared Number constraint and a handful of
// generic scalar helpers used by the vector and matrix packages.
//
// The numeric package provides:
//
//   - Number: the type set accepted by every container in this module —
//     signed integers and floating-point types. Unsigned integers are
//     excluded because unary negation and Scale(-1) are part of the
//     container contracts.
//   - Tiny pure helpers (Abs, Min, Max, Clamp, Sqrt) shared by the
//     geometric kernels so the hot loops never duplicate scalar logic.
//
// All helpers are pure, deterministic and allocation-free. Overflow and
// rounding follow the native semantics of the instantiated type; the only
// intentional deviation is Sqrt on integer types, which returns the floored
// root (the computation goes through float64).
package numeric
